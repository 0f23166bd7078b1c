package host

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrChannelMismatch is returned for a call on a channel nothing is registered for.
	ErrChannelMismatch = errors.New("no handler registered for channel")

	// ErrChannelTaken is returned when registering a second handler on one channel.
	ErrChannelTaken = errors.New("channel already has a handler")

	// ErrHandlerNil is returned when registering a nil handler.
	ErrHandlerNil = errors.New("channel handler cannot be nil")
)

// Handler serves one channel. The returned bytes go back to the guest.
type Handler func(payload []byte) ([]byte, error)

type route struct {
	namespace  string
	capability string
	function   string
}

func (r route) String() string {
	return r.namespace + "/" + r.capability + "/" + r.function
}

// Router dispatches guest host calls to registered handlers.
type Router struct {
	mu     sync.RWMutex
	routes map[route]Handler
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{routes: make(map[route]Handler)}
}

// Register binds h to a channel. Each channel takes exactly one handler.
func (r *Router) Register(namespace, capability, function string, h Handler) error {
	if h == nil {
		return ErrHandlerNil
	}

	key := route{namespace: namespace, capability: capability, function: function}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.routes[key]; ok {
		return fmt.Errorf("%w: %s", ErrChannelTaken, key)
	}
	r.routes[key] = h
	return nil
}

// HostCall dispatches one guest call. It has the waPC host call signature so
// it can be handed to a guest transport directly.
func (r *Router) HostCall(namespace, capability, function string, payload []byte) ([]byte, error) {
	key := route{namespace: namespace, capability: capability, function: function}

	r.mu.RLock()
	h, ok := r.routes[key]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrChannelMismatch, key)
	}
	return h(payload)
}
