package host

import (
	"context"
	"encoding/binary"
	"log/slog"

	"github.com/google/uuid"
	"github.com/tarmac-project/cycles/wire"
)

// Stat is one row of a session summary.
type Stat struct {
	Name  string
	Sum   uint64
	Count uint64
	Mean  float64
}

// Session receives the measurements of one proving session.
type Session struct {
	id     uuid.UUID
	cfg    Config
	logger *slog.Logger
	agg    *Aggregator
}

// NewSession creates a Session. A nil aggregator gives the session its own
// table; pass a shared one to fold several sessions into one view. A nil
// logger is built from cfg.
func NewSession(cfg Config, agg *Aggregator, logger *slog.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if agg == nil {
		agg = NewAggregator()
	}

	id := uuid.New()
	if logger == nil {
		logger = BuildLogger(cfg)
	}

	return &Session{
		id:     id,
		cfg:    cfg,
		logger: logger.With("session", id.String()),
		agg:    agg,
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Aggregator returns the table the session folds measurements into.
func (s *Session) Aggregator() *Aggregator { return s.agg }

// Record folds one decoded measurement into the aggregator.
func (s *Session) Record(rec wire.Record) {
	s.logger.Debug("cycle metric", "name", rec.Name, "cycles", rec.Cycles, "free_heap", rec.FreeHeap)
	s.agg.Increment(rec.Name, rec.Cycles)
}

// Decode parses a name-terminated record as received on the metrics channel.
func (s *Session) Decode(payload []byte) (wire.Record, error) {
	return wire.DecodeTerminated(payload)
}

// Ingest decodes payload with layout and records it. Decode failures are
// logged and returned; nothing is recorded for them.
func (s *Session) Ingest(layout wire.Layout, payload []byte) (wire.Record, error) {
	rec, err := layout.Decode(payload)
	if err != nil {
		s.logger.Warn("dropping undecodable cycle metric", "layout", layout.String(), "bytes", len(payload), "error", err)
		return wire.Record{}, err
	}

	s.Record(rec)
	return rec, nil
}

// Router returns a router serving the syscall channels of this session.
func (s *Session) Router(counter func() uint64) (*Router, error) {
	r := NewRouter()

	if err := r.Register(s.cfg.Namespace, s.cfg.Capability, s.cfg.MetricsChannel, MetricsHandler(s)); err != nil {
		return nil, err
	}

	if err := r.Register(s.cfg.Namespace, s.cfg.Capability, s.cfg.CycleCountChannel, CycleCountHandler(counter)); err != nil {
		return nil, err
	}

	return r, nil
}

// Hook returns the host side of the hook transport for this session.
func (s *Session) Hook(counter func() uint64) *Hook {
	return &Hook{
		session: s,
		counter: counter,
		trigger: s.cfg.CycleCountHook,
		metrics: s.cfg.MetricsHook,
		input:   s.cfg.InputHook,
	}
}

// Summary returns one row per measurement name, sorted by name.
func (s *Session) Summary() []Stat {
	snap := s.agg.Snapshot()
	names := s.agg.Names()

	stats := make([]Stat, 0, len(names))
	for _, name := range names {
		e, ok := snap[name]
		if !ok {
			continue
		}
		stats = append(stats, Stat{Name: name, Sum: e.Sum, Count: e.Count, Mean: e.Mean()})
	}
	return stats
}

// LogSummary writes the summary at info level.
func (s *Session) LogSummary(ctx context.Context) {
	for _, st := range s.Summary() {
		s.logger.Log(ctx, slog.LevelInfo, "cycle summary", "name", st.Name, "sum", st.Sum, "count", st.Count, "mean", st.Mean)
	}
}

// MetricsHandler decodes name-terminated records and records them in s.
// The guest discards the response, so it is always empty.
func MetricsHandler(s *Session) Handler {
	return func(payload []byte) ([]byte, error) {
		if _, err := s.Ingest(wire.LayoutTerminated, payload); err != nil {
			return nil, err
		}
		return nil, nil
	}
}

// CycleCountHandler answers with the current counter as 8 little-endian bytes.
func CycleCountHandler(counter func() uint64) Handler {
	return func([]byte) ([]byte, error) {
		return binary.LittleEndian.AppendUint64(make([]byte, 0, wire.CountSize), counter()), nil
	}
}
