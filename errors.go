package cycles

import "errors"

var (
	// ErrHostCall indicates that a waPC host invocation failed.
	ErrHostCall = errors.New("host call failed")

	// ErrHostResponseInvalid signals that the host returned an invalid or unexpected payload.
	ErrHostResponseInvalid = errors.New("host response is invalid or unexpected")

	// ErrTransportUnavailable is raised when a report is attempted without a real VM backend.
	ErrTransportUnavailable = errors.New("cycle transport unavailable: no zkvm backend configured")
)
