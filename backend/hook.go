package backend

import (
	"encoding/binary"
	"errors"
	"fmt"

	cycles "github.com/tarmac-project/cycles"
	"github.com/tarmac-project/cycles/wire"
)

// HookConfig provides the numbered channel primitives of the VM.
type HookConfig struct {
	// Write writes p to the output channel fd.
	Write func(fd uint32, p []byte) error

	// Read reads the next message from the input channel fd.
	Read func(fd uint32) ([]byte, error)

	// FreeHeap is returned by AvailableHeap. Zero means PlaceholderHeap.
	FreeHeap uint64
}

// Hook reports measurements over file-descriptor style hooks.
type Hook struct {
	write    func(uint32, []byte) error
	read     func(uint32) ([]byte, error)
	freeHeap uint64
}

// NewHook creates a hook transport.
func NewHook(config HookConfig) (*Hook, error) {
	if config.Write == nil || config.Read == nil {
		return nil, ErrPrimitiveMissing
	}

	h := &Hook{write: config.Write, read: config.Read, freeHeap: config.FreeHeap}
	if h.freeHeap == 0 {
		h.freeHeap = PlaceholderHeap
	}

	return h, nil
}

// CycleCount triggers the cycle count hook and blocks for the 8-byte answer.
// Any other answer panics: a wrong length means the guest and host disagree
// on the protocol.
func (h *Hook) CycleCount() uint64 {
	// An empty write is dropped by the VM, so the trigger is a single zero byte.
	if err := h.write(cycles.FDCycleCountHook, []byte{0}); err != nil {
		panic(errors.Join(cycles.ErrHostCall, err))
	}

	resp, err := h.read(cycles.FDHookInput)
	if err != nil {
		panic(errors.Join(cycles.ErrHostCall, err))
	}

	if len(resp) != wire.CountSize {
		panic(fmt.Errorf("%w: cycle count is %d bytes, want %d", cycles.ErrHostResponseInvalid, len(resp), wire.CountSize))
	}

	return binary.LittleEndian.Uint64(resp)
}

// AvailableHeap returns the configured placeholder.
func (h *Hook) AvailableHeap() uint64 { return h.freeHeap }

// Report writes a count-prefixed record to the metrics hook without waiting
// for an answer. The prefixed layout has no heap field, so freeHeap is dropped.
func (h *Hook) Report(name string, count, _ uint64) error {
	buf, err := wire.EncodePrefixed(wire.Record{Name: name, Cycles: count})
	if err != nil {
		return err
	}

	if err := h.write(cycles.FDMetricsHook, buf); err != nil {
		return errors.Join(cycles.ErrHostCall, err)
	}

	return nil
}
