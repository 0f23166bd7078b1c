package cycles

import (
	"fmt"

	wapc "github.com/wapc/wapc-guest-tinygo"
)

// DefaultNamespace is used when no explicit namespace is provided.
const DefaultNamespace = "zkvm"

// CapabilityName scopes the cycle channels within the namespace.
const CapabilityName = "cycles"

// Syscall channel identifiers. These are waPC function names under CapabilityName.
const (
	// ChannelCycleCount answers a bare cycle counter query with 8 little-endian bytes.
	ChannelCycleCount = "cycle_count"

	// ChannelMetrics receives name-terminated metric records.
	ChannelMetrics = "cycle_metrics"
)

// Hook channel identifiers. Any number works as long as it does not conflict
// with the default or other hooks of the VM.
const (
	// FDCycleCountHook is written to request the current cycle count.
	FDCycleCountHook uint32 = 1000

	// FDMetricsHook receives count-prefixed metric records.
	FDMetricsHook uint32 = 1001

	// FDHookInput is the input channel the host answers hook requests on.
	FDHookInput uint32 = 0
)

var (
	// ErrHandlerNil is returned when the provided function handler is nil.
	ErrHandlerNil = fmt.Errorf("function handler cannot be nil")
)

// Config provides configuration options for guest initialization.
type Config struct {
	// Namespace controls the namespace to use for host callbacks.
	// If empty, DefaultNamespace is used.
	Namespace string

	// Handler is the function to be registered as the main WebAssembly entry point.
	Handler func([]byte) ([]byte, error)
}

// RuntimeConfig carries configuration that is used during creation of guest components.
type RuntimeConfig struct {
	// Namespace is the namespace used to scope host interactions.
	Namespace string
}

// Guest represents the initialized runtime with a registered waPC handler.
type Guest struct {
	runtime RuntimeConfig
	handler func([]byte) ([]byte, error)
}

// New initializes the guest and registers the handler with waPC.
func New(config Config) (*Guest, error) {
	if config.Handler == nil {
		return nil, ErrHandlerNil
	}

	cfg := RuntimeConfig{Namespace: DefaultNamespace}
	if config.Namespace != "" {
		cfg.Namespace = config.Namespace
	}

	g := &Guest{
		runtime: cfg,
		handler: config.Handler,
	}

	wapc.RegisterFunction("handler", g.handler)

	return g, nil
}

// Config returns the current runtime configuration snapshot.
func (g *Guest) Config() RuntimeConfig { return g.runtime }

// WithDefaults returns a copy of the runtime configuration with empty fields
// set to their defaults.
func (r RuntimeConfig) WithDefaults() RuntimeConfig {
	if r.Namespace == "" {
		r.Namespace = DefaultNamespace
	}
	return r
}
