package logging

import (
	cycles "github.com/tarmac-project/cycles"
	wapc "github.com/wapc/wapc-guest-tinygo"
)

const capabilityName = "logging"

// Level orders log severities from most to least verbose.
type Level uint8

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// function returns the host function name for the level.
func (l Level) function() string {
	switch l {
	case LevelTrace:
		return "Trace"
	case LevelDebug:
		return "Debug"
	case LevelInfo:
		return "Info"
	case LevelWarn:
		return "Warn"
	default:
		return "Error"
	}
}

// Client exposes convenience helpers for sending log entries to the host runtime.
type Client interface {
	Info(message string)
	Warn(message string)
	Error(message string)
	Debug(message string)
	Trace(message string)
}

// Config controls how a Client instance interacts with the host runtime.
type Config struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig cycles.RuntimeConfig

	// HostCall overrides the waPC host function used for logging operations.
	HostCall func(string, string, string, []byte) ([]byte, error)

	// MinLevel drops entries below this level. The zero value keeps everything.
	MinLevel Level
}

// client implements Client using the configured host call entrypoint.
type client struct {
	runtime  cycles.RuntimeConfig
	hostCall func(string, string, string, []byte) ([]byte, error)
	min      Level
}

// New creates a Client that emits logs through the configured host capability.
func New(cfg Config) (Client, error) {
	hostCall := cfg.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	return &client{
		runtime:  cfg.SDKConfig.WithDefaults(),
		hostCall: hostCall,
		min:      cfg.MinLevel,
	}, nil
}

func (c *client) Info(message string)  { c.log(LevelInfo, message) }
func (c *client) Warn(message string)  { c.log(LevelWarn, message) }
func (c *client) Error(message string) { c.log(LevelError, message) }
func (c *client) Debug(message string) { c.log(LevelDebug, message) }
func (c *client) Trace(message string) { c.log(LevelTrace, message) }

func (c *client) log(level Level, message string) {
	if level < c.min {
		return
	}
	_, _ = c.hostCall(c.runtime.Namespace, capabilityName, level.function(), []byte(message))
}
