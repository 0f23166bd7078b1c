package metrics

import (
	"errors"
	"regexp"

	cycles "github.com/tarmac-project/cycles"
	proto "github.com/tarmac-project/protobuf-go/sdk/metrics"
	wapc "github.com/wapc/wapc-guest-tinygo"
)

const (
	capabilityName = "metrics"
	fnCounter      = "counter"
	fnHistogram    = "histogram"

	suffixCalls    = "_calls_total"
	suffixCycles   = "_cycles"
	suffixFreeHeap = "_free_heap_bytes"
)

var (
	// ErrInvalidMetricName indicates a metric name that does not match the supported format.
	ErrInvalidMetricName = errors.New("metric name is invalid")

	// isMetricNameValid validates metric names using the host callback pattern.
	isMetricNameValid = regexp.MustCompile(`^[a-zA-Z0-9_:][a-zA-Z0-9_:]*$`)
)

// HostCall defines the waPC host function signature used by metrics operations.
type HostCall func(string, string, string, []byte) ([]byte, error)

// Config controls how a Mirror interacts with the host runtime.
type Config struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig cycles.RuntimeConfig

	// HostCall overrides the waPC host function used for metrics operations.
	HostCall HostCall

	// Prefix is prepended to every mirrored metric name.
	Prefix string
}

// Counter is a named counter metric handle.
type Counter struct {
	name      string
	namespace string
	hostCall  HostCall
}

// Histogram is a named histogram metric handle.
type Histogram struct {
	name      string
	namespace string
	hostCall  HostCall
}

// series holds the handles mirrored for one measurement name.
type series struct {
	calls    *Counter
	cycles   *Histogram
	freeHeap *Histogram
}

// Mirror forwards measurements to the host metrics capability. It is not safe
// for concurrent use; guests are single-threaded.
type Mirror struct {
	runtime  cycles.RuntimeConfig
	hostCall HostCall
	prefix   string
	series   map[string]series
}

// New creates a Mirror with namespace defaults and optional host-call override.
func New(config Config) (*Mirror, error) {
	hostCall := config.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	if config.Prefix != "" && !isMetricNameValid.MatchString(config.Prefix) {
		return nil, ErrInvalidMetricName
	}

	return &Mirror{
		runtime:  config.SDKConfig.WithDefaults(),
		hostCall: hostCall,
		prefix:   config.Prefix,
		series:   make(map[string]series),
	}, nil
}

// Observe mirrors one measurement.
func (m *Mirror) Observe(name string, count, freeHeap uint64) {
	s, ok := m.series[name]
	if !ok {
		base := m.prefix + Sanitize(name)
		s = series{
			calls:    m.NewCounter(base + suffixCalls),
			cycles:   m.NewHistogram(base + suffixCycles),
			freeHeap: m.NewHistogram(base + suffixFreeHeap),
		}
		m.series[name] = s
	}

	s.calls.Inc()
	s.cycles.Observe(float64(count))
	s.freeHeap.Observe(float64(freeHeap))
}

// NewCounter creates a counter handle. The name must already be valid.
func (m *Mirror) NewCounter(name string) *Counter {
	return &Counter{name: name, namespace: m.runtime.Namespace, hostCall: m.hostCall}
}

// NewHistogram creates a histogram handle. The name must already be valid.
func (m *Mirror) NewHistogram(name string) *Histogram {
	return &Histogram{name: name, namespace: m.runtime.Namespace, hostCall: m.hostCall}
}

// Inc increments the counter by one.
func (c *Counter) Inc() {
	payload, err := (&proto.MetricsCounter{Name: c.name}).MarshalVT()
	if err != nil {
		return
	}
	_, _ = c.hostCall(c.namespace, capabilityName, fnCounter, payload)
}

// Observe records a value for the histogram.
func (h *Histogram) Observe(value float64) {
	payload, err := (&proto.MetricsHistogram{Name: h.name, Value: value}).MarshalVT()
	if err != nil {
		return
	}
	_, _ = h.hostCall(h.namespace, capabilityName, fnHistogram, payload)
}

// Sanitize maps a measurement name onto the metric name charset by replacing
// every unsupported byte with '_'. An empty name becomes "_".
func Sanitize(name string) string {
	if name == "" {
		return "_"
	}

	b := []byte(name)
	for i, c := range b {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_', c == ':':
		default:
			b[i] = '_'
		}
	}
	return string(b)
}
