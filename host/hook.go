package host

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/tarmac-project/cycles/wire"
)

var (
	// ErrNoInput is returned by Hook.Read when nothing is queued for the guest.
	ErrNoInput = errors.New("no input queued for guest")
)

// Hook is the host side of the hook transport. Write and Read match the
// primitives backend.HookConfig expects.
type Hook struct {
	session *Session
	counter func() uint64
	trigger uint32
	metrics uint32
	input   uint32

	mu      sync.Mutex
	pending [][]byte
}

// Write handles a guest write to an output channel. A write on the trigger
// channel queues the current cycle count; a write on the metrics channel is
// decoded as a count-prefixed record.
func (h *Hook) Write(fd uint32, p []byte) error {
	switch fd {
	case h.trigger:
		answer := binary.LittleEndian.AppendUint64(make([]byte, 0, wire.CountSize), h.counter())
		h.mu.Lock()
		h.pending = append(h.pending, answer)
		h.mu.Unlock()
		return nil
	case h.metrics:
		_, err := h.session.Ingest(wire.LayoutPrefixed, p)
		return err
	default:
		return fmt.Errorf("%w: output fd %d", ErrChannelMismatch, fd)
	}
}

// Read pops the next queued answer from the input channel.
func (h *Hook) Read(fd uint32) ([]byte, error) {
	if fd != h.input {
		return nil, fmt.Errorf("%w: input fd %d", ErrChannelMismatch, fd)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.pending) == 0 {
		return nil, ErrNoInput
	}

	next := h.pending[0]
	h.pending = h.pending[1:]
	return next, nil
}

// Pending returns the number of queued answers.
func (h *Hook) Pending() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.pending)
}
