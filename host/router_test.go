package host

import (
	"bytes"
	"errors"
	"testing"
)

func TestRouter(t *testing.T) {
	t.Parallel()

	r := NewRouter()
	echo := func(p []byte) ([]byte, error) { return append([]byte("re:"), p...), nil }

	if err := r.Register("zkvm", "cycles", "cycle_metrics", echo); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	tt := []struct {
		name     string
		register func() error
		call     [3]string
		want     []byte
		wantErr  error
	}{
		{
			name: "registered channel",
			call: [3]string{"zkvm", "cycles", "cycle_metrics"},
			want: []byte("re:payload"),
		},
		{
			name:    "wrong function",
			call:    [3]string{"zkvm", "cycles", "cycle_count"},
			wantErr: ErrChannelMismatch,
		},
		{
			name:    "wrong namespace",
			call:    [3]string{"other", "cycles", "cycle_metrics"},
			wantErr: ErrChannelMismatch,
		},
		{
			name:     "duplicate registration",
			register: func() error { return r.Register("zkvm", "cycles", "cycle_metrics", echo) },
			wantErr:  ErrChannelTaken,
		},
		{
			name:     "nil handler",
			register: func() error { return r.Register("zkvm", "cycles", "other", nil) },
			wantErr:  ErrHandlerNil,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if tc.register != nil {
				if err := tc.register(); !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected error %v, got %v", tc.wantErr, err)
				}
				return
			}

			got, err := r.HostCall(tc.call[0], tc.call[1], tc.call[2], []byte("payload"))
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if !bytes.Equal(got, tc.want) {
				t.Fatalf("unexpected response %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRouterHandlerErrorPropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r := NewRouter()
	_ = r.Register("a", "b", "c", func([]byte) ([]byte, error) { return nil, boom })

	if _, err := r.HostCall("a", "b", "c", nil); !errors.Is(err, boom) {
		t.Fatalf("expected handler error, got %v", err)
	}
}
