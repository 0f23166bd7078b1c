package host

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"
	cycles "github.com/tarmac-project/cycles"
)

var (
	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = errors.New("invalid host configuration")
)

// Config identifies the channels a host listens on. The defaults match
// guests built from this module; override them only to serve guests built
// with different identifiers.
type Config struct {
	// Namespace scopes syscall channels.
	Namespace string `yaml:"namespace"`

	// Capability groups the syscall channels within the namespace.
	Capability string `yaml:"capability"`

	// CycleCountChannel answers bare cycle counter queries.
	CycleCountChannel string `yaml:"cycle_count_channel"`

	// MetricsChannel receives name-terminated records.
	MetricsChannel string `yaml:"metrics_channel"`

	// CycleCountHook is the output fd that triggers a cycle count answer.
	CycleCountHook uint32 `yaml:"cycle_count_hook"`

	// MetricsHook is the output fd that carries count-prefixed records.
	MetricsHook uint32 `yaml:"metrics_hook"`

	// InputHook is the input fd answers are queued on.
	InputHook uint32 `yaml:"input_hook"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the identifiers compiled into this module's guests.
func DefaultConfig() Config {
	return Config{
		Namespace:         cycles.DefaultNamespace,
		Capability:        cycles.CapabilityName,
		CycleCountChannel: cycles.ChannelCycleCount,
		MetricsChannel:    cycles.ChannelMetrics,
		CycleCountHook:    cycles.FDCycleCountHook,
		MetricsHook:       cycles.FDMetricsHook,
		InputHook:         cycles.FDHookInput,
		LogLevel:          "info",
	}
}

// LoadConfig reads a YAML file over the defaults and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading host config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that every identifier is set and unique. Colliding
// identifiers would route records to the wrong handler.
func (c Config) Validate() error {
	switch {
	case c.Namespace == "":
		return fmt.Errorf("%w: namespace is empty", ErrInvalidConfig)
	case c.Capability == "":
		return fmt.Errorf("%w: capability is empty", ErrInvalidConfig)
	case c.CycleCountChannel == "" || c.MetricsChannel == "":
		return fmt.Errorf("%w: channel names must be set", ErrInvalidConfig)
	case c.CycleCountChannel == c.MetricsChannel:
		return fmt.Errorf("%w: cycle count and metrics channels are both %q", ErrInvalidConfig, c.MetricsChannel)
	case c.CycleCountHook == c.MetricsHook:
		return fmt.Errorf("%w: cycle count and metrics hooks are both fd %d", ErrInvalidConfig, c.MetricsHook)
	}

	if _, ok := parseLevel(c.LogLevel); !ok {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}

	return nil
}

// BuildLogger returns a text logger at the configured level.
func BuildLogger(cfg Config) *slog.Logger {
	level, _ := parseLevel(cfg.LogLevel)
	hOpts := &slog.HandlerOptions{Level: level}
	return slog.New(slog.NewTextHandler(os.Stderr, hOpts))
}

func parseLevel(s string) (slog.Level, bool) {
	switch s {
	case "debug":
		return slog.LevelDebug, true
	case "", "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}
