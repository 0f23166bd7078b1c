package backend

import cycles "github.com/tarmac-project/cycles"

// Facade is the transport used when no VM is present.
type Facade struct{}

// CycleCount always returns zero.
func (Facade) CycleCount() uint64 { return 0 }

// AvailableHeap returns PlaceholderHeap.
func (Facade) AvailableHeap() uint64 { return PlaceholderHeap }

// Report panics with cycles.ErrTransportUnavailable. Reaching it is a build
// error, not a runtime condition.
func (Facade) Report(string, uint64, uint64) error {
	panic(cycles.ErrTransportUnavailable)
}
