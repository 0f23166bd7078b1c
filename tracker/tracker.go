package tracker

import (
	"errors"
	"fmt"

	"github.com/tarmac-project/cycles/backend"
)

var (
	// ErrBackendNil is returned when no backend is configured.
	ErrBackendNil = errors.New("cycle backend cannot be nil")
)

// Observer receives every measurement after it was reported.
type Observer interface {
	Observe(name string, cycles, freeHeap uint64)
}

// Logger receives a debug trace line per measurement.
type Logger interface {
	Debug(message string)
}

// Config controls how a Tracker measures and reports.
type Config struct {
	// Backend is the transport measurements are read from and reported to.
	Backend backend.Backend

	// Observer optionally mirrors measurements elsewhere.
	Observer Observer

	// Logger optionally traces measurements.
	Logger Logger
}

// Tracker brackets operations with cycle counter reads.
type Tracker struct {
	backend  backend.Backend
	observer Observer
	logger   Logger
}

// New creates a Tracker.
func New(config Config) (*Tracker, error) {
	if config.Backend == nil {
		return nil, ErrBackendNil
	}

	return &Tracker{
		backend:  config.Backend,
		observer: config.Observer,
		logger:   config.Logger,
	}, nil
}

// Delta returns after - before, or zero if the counter went backwards.
func Delta(before, after uint64) uint64 {
	if after < before {
		return 0
	}
	return after - before
}

// Track runs op once and reports its cycle cost under name.
func Track[T any](t *Tracker, name string, op func() T) T {
	before := t.backend.CycleCount()
	result := op()
	t.report(name, before)
	return result
}

// TrackErr runs op once and reports its cycle cost under name, whether or
// not op returned an error.
func TrackErr[T any](t *Tracker, name string, op func() (T, error)) (T, error) {
	before := t.backend.CycleCount()
	result, err := op()
	t.report(name, before)
	return result, err
}

// Run runs op once and reports its cycle cost under name.
func (t *Tracker) Run(name string, op func()) {
	before := t.backend.CycleCount()
	op()
	t.report(name, before)
}

// Handler wraps a waPC guest handler so every invocation is measured under name.
func (t *Tracker) Handler(name string, h func([]byte) ([]byte, error)) func([]byte) ([]byte, error) {
	return func(payload []byte) ([]byte, error) {
		return TrackErr(t, name, func() ([]byte, error) {
			return h(payload)
		})
	}
}

// report closes a measurement window opened at before.
func (t *Tracker) report(name string, before uint64) {
	after := t.backend.CycleCount()
	freeHeap := t.backend.AvailableHeap()
	spent := Delta(before, after)

	if err := t.backend.Report(name, spent, freeHeap); err != nil {
		panic(fmt.Errorf("reporting cycles for %q: %w", name, err))
	}

	if t.logger != nil {
		t.logger.Debug(fmt.Sprintf("cycles name=%s count=%d free_heap=%d", name, spent, freeHeap))
	}

	if t.observer != nil {
		t.observer.Observe(name, spent, freeHeap)
	}
}
