package backend

import (
	"encoding/binary"
	"errors"
	"fmt"

	cycles "github.com/tarmac-project/cycles"
	"github.com/tarmac-project/cycles/wire"
	wapc "github.com/wapc/wapc-guest-tinygo"
)

// SyscallConfig controls how a Syscall transport interacts with the host runtime.
type SyscallConfig struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig cycles.RuntimeConfig

	// HostCall overrides the waPC host function used for reports.
	HostCall HostCall

	// CycleCounter reads the VM cycle register. If nil, the counter is
	// queried from the host over the cycle count channel.
	CycleCounter func() uint64

	// Heap estimates the free heap. If nil, BumpHeap(DefaultHeapTop) is used.
	Heap func() uint64
}

// Syscall reports measurements with one request/response host call each.
type Syscall struct {
	runtime  cycles.RuntimeConfig
	hostCall HostCall
	counter  func() uint64
	heap     func() uint64
}

// NewSyscall creates a syscall transport with namespace defaults and optional overrides.
func NewSyscall(config SyscallConfig) (*Syscall, error) {
	s := &Syscall{
		runtime:  config.SDKConfig.WithDefaults(),
		hostCall: config.HostCall,
		counter:  config.CycleCounter,
		heap:     config.Heap,
	}

	if s.hostCall == nil {
		s.hostCall = wapc.HostCall
	}

	if s.counter == nil {
		s.counter = s.hostCycleCount
	}

	if s.heap == nil {
		s.heap = BumpHeap(DefaultHeapTop)
	}

	return s, nil
}

// CycleCount reads the cycle counter.
func (s *Syscall) CycleCount() uint64 { return s.counter() }

// AvailableHeap returns the configured heap estimate.
func (s *Syscall) AvailableHeap() uint64 { return s.heap() }

// Report sends a name-terminated record on the metrics channel and discards
// the (empty) response.
func (s *Syscall) Report(name string, count, freeHeap uint64) error {
	payload, err := wire.EncodeTerminated(wire.Record{Name: name, Cycles: count, FreeHeap: freeHeap})
	if err != nil {
		return err
	}

	if _, err := s.hostCall(s.runtime.Namespace, cycles.CapabilityName, cycles.ChannelMetrics, payload); err != nil {
		return errors.Join(cycles.ErrHostCall, err)
	}

	return nil
}

// hostCycleCount asks the host for the counter. Any failure panics; there is
// no sensible fallback value for a cycle counter.
func (s *Syscall) hostCycleCount() uint64 {
	resp, err := s.hostCall(s.runtime.Namespace, cycles.CapabilityName, cycles.ChannelCycleCount, nil)
	if err != nil {
		panic(errors.Join(cycles.ErrHostCall, err))
	}

	if len(resp) != wire.CountSize {
		panic(fmt.Errorf("%w: cycle count is %d bytes, want %d", cycles.ErrHostResponseInvalid, len(resp), wire.CountSize))
	}

	return binary.LittleEndian.Uint64(resp)
}
