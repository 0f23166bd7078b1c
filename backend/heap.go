package backend

import "unsafe"

const (
	// DefaultHeapTop is the top-of-heap address of the guest memory layout.
	DefaultHeapTop uintptr = 0x0C00_0000

	// PlaceholderHeap is reported by transports that cannot measure the heap.
	PlaceholderHeap uint64 = 0x0C00_0000
)

// BumpHeap returns a heap estimator for guests running a bump (leaking)
// allocator whose addresses grow monotonically towards top.
//
// The estimate is top minus the address of a freshly allocated probe. It is an
// approximation, not a free-byte count: it is only meaningful when the
// allocator never reuses memory, and it is wrong for any collecting allocator.
// Inject an exact estimator where the allocator exposes one.
func BumpHeap(top uintptr) func() uint64 {
	return func() uint64 {
		return bumpEstimate(top, uintptr(unsafe.Pointer(probe())))
	}
}

func bumpEstimate(top, addr uintptr) uint64 {
	if addr >= top {
		return 0
	}
	return uint64(top - addr)
}

// probe allocates on the heap. A zero-size value would share the runtime's
// zero-base address, so the probe is one byte.
//
//go:noinline
func probe() *byte {
	return new(byte)
}
