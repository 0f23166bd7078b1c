package backend

import "errors"

// Backend is the capability set a tracker needs from the VM.
type Backend interface {
	// CycleCount returns the current value of the monotonic cycle counter.
	CycleCount() uint64

	// Report sends one named measurement to the host.
	Report(name string, cycles, freeHeap uint64) error

	// AvailableHeap returns the free heap in bytes. Implementations may approximate.
	AvailableHeap() uint64
}

// HostCall defines the waPC host function signature used by the syscall transport.
type HostCall func(string, string, string, []byte) ([]byte, error)

var (
	// ErrPrimitiveMissing is returned when a hook transport is built without its I/O primitives.
	ErrPrimitiveMissing = errors.New("hook read and write primitives are required")
)

// Ensure every variant satisfies Backend at compile time.
var (
	_ Backend = (*Syscall)(nil)
	_ Backend = (*Hook)(nil)
	_ Backend = Facade{}
)
