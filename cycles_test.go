package cycles

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tt := []struct {
		name      string
		namespace string
		handler   func(b []byte) ([]byte, error)
		wantErr   error
		wantNs    string
	}{
		{
			name:      "Valid Config",
			namespace: "risc0",
			handler:   func(b []byte) ([]byte, error) { return b, nil },
			wantNs:    "risc0",
		},
		{
			name:    "Empty Namespace",
			handler: func(b []byte) ([]byte, error) { return b, nil },
			wantNs:  DefaultNamespace,
		},
		{
			name:      "Nil Handler",
			namespace: "invalid",
			wantErr:   ErrHandlerNil,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			g, err := New(Config{Namespace: tc.namespace, Handler: tc.handler})
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if err != nil {
				return
			}

			if g.Config().Namespace != tc.wantNs {
				t.Errorf("expected namespace %q, got %q", tc.wantNs, g.Config().Namespace)
			}
		})
	}
}

func TestGuestConfigImmutability(t *testing.T) {
	g, err := New(Config{Namespace: "one", Handler: func(b []byte) ([]byte, error) { return b, nil }})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	got := g.Config()
	got.Namespace = "mutated"
	if g.Config().Namespace != "one" {
		t.Fatalf("expected namespace to remain 'one', got %q", g.Config().Namespace)
	}
}

func TestRuntimeConfigWithDefaults(t *testing.T) {
	if got := (RuntimeConfig{}).WithDefaults().Namespace; got != DefaultNamespace {
		t.Fatalf("expected %q, got %q", DefaultNamespace, got)
	}
	if got := (RuntimeConfig{Namespace: "sp1"}).WithDefaults().Namespace; got != "sp1" {
		t.Fatalf("expected %q, got %q", "sp1", got)
	}
}

func TestChannelIdentifiersUnique(t *testing.T) {
	if ChannelCycleCount == ChannelMetrics {
		t.Fatalf("syscall channels collide: %q", ChannelMetrics)
	}

	fds := map[uint32]string{}
	for name, fd := range map[string]uint32{
		"cycle count hook": FDCycleCountHook,
		"metrics hook":     FDMetricsHook,
		"hook input":       FDHookInput,
	} {
		if other, ok := fds[fd]; ok {
			t.Fatalf("%s and %s share fd %d", name, other, fd)
		}
		fds[fd] = name
	}
}
