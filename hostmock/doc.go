/*
Package hostmock provides a pretend waPC host for guest-side tests.

It validates that a component routes its host calls to the expected
namespace, capability and function, lets a PayloadValidator inspect the raw
bytes on the wire, scripts responses or failures, and records every call so
tests can assert what a tracker actually sent.

Quick start

	m, _ := hostmock.New(hostmock.Config{
	  ExpectedNamespace:  "zkvm",
	  ExpectedCapability: "cycles",
	  ExpectedFunction:   "cycle_metrics",
	  PayloadValidator: func(p []byte) error {
	    _, err := wire.DecodeTerminated(p)
	    return err
	  },
	})

	b, _ := backend.NewSyscall(backend.SyscallConfig{HostCall: m.HostCall})

Behavior

  - If Fail is true, HostCall returns Error, or ErrOperationFailed when Error is nil.
  - Otherwise HostCall enforces the expected routing fields that are set and
    runs PayloadValidator when provided. Response (when set) provides the
    returned bytes; otherwise it returns nil.
  - Every call is recorded, including failed ones, and can be read with Calls.

Leave a routing field blank to accept any value for it.
*/
package hostmock
