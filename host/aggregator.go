package host

import (
	"sort"
	"sync"
)

// Entry is the running total for one measurement name.
type Entry struct {
	Sum   uint64
	Count uint64
}

// Mean returns Sum/Count, or zero for an empty entry.
func (e Entry) Mean() float64 {
	if e.Count == 0 {
		return 0
	}
	return float64(e.Sum) / float64(e.Count)
}

// Aggregator accumulates measurements by name. The zero value is ready to
// use. Entries are never evicted.
type Aggregator struct {
	mu      sync.Mutex
	entries map[string]Entry
}

// NewAggregator creates an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{entries: make(map[string]Entry)}
}

// Increment adds value to the entry for name, creating it on first use.
func (a *Aggregator) Increment(name string, value uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.entries == nil {
		a.entries = make(map[string]Entry)
	}

	e := a.entries[name]
	e.Sum += value
	e.Count++
	a.entries[name] = e
}

// Get returns the entry for name.
func (a *Aggregator) Get(name string) (Entry, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	e, ok := a.entries[name]
	return e, ok
}

// Snapshot returns a copy of every entry.
func (a *Aggregator) Snapshot() map[string]Entry {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make(map[string]Entry, len(a.entries))
	for k, v := range a.entries {
		out[k] = v
	}
	return out
}

// Names returns the known measurement names in sorted order.
func (a *Aggregator) Names() []string {
	a.mu.Lock()
	names := make([]string, 0, len(a.entries))
	for k := range a.entries {
		names = append(names, k)
	}
	a.mu.Unlock()

	sort.Strings(names)
	return names
}

// Len returns the number of distinct names.
func (a *Aggregator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.entries)
}
