package wire

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestEncodeTerminatedExactBytes(t *testing.T) {
	got, err := EncodeTerminated(Record{Name: "hash_merkle_root", Cycles: 4096, FreeHeap: 8388608})
	if err != nil {
		t.Fatalf("EncodeTerminated returned error: %v", err)
	}

	want := append([]byte("hash_merkle_root"), 0x00)
	want = append(want, 0x00, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00)
	want = append(want, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00)

	if len(got) != 33 {
		t.Fatalf("expected 33 bytes, got %d", len(got))
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("unexpected encoding:\n got %x\nwant %x", got, want)
	}

	rec, err := DecodeTerminated(got)
	if err != nil {
		t.Fatalf("DecodeTerminated returned error: %v", err)
	}
	if rec != (Record{Name: "hash_merkle_root", Cycles: 4096, FreeHeap: 8388608}) {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestEncodePrefixedExactBytes(t *testing.T) {
	got, err := EncodePrefixed(Record{Name: "verify", Cycles: 0x0102030405060708, FreeHeap: 99})
	if err != nil {
		t.Fatalf("EncodePrefixed returned error: %v", err)
	}

	want := []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01, 'v', 'e', 'r', 'i', 'f', 'y'}
	if !bytes.Equal(got, want) {
		t.Fatalf("unexpected encoding:\n got %x\nwant %x", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	records := []Record{
		{Name: "", Cycles: 0, FreeHeap: 0},
		{Name: "a", Cycles: 1, FreeHeap: 2},
		{Name: "process_block", Cycles: math.MaxUint64, FreeHeap: math.MaxUint64},
		{Name: "ünïcødé_名前", Cycles: 123456789, FreeHeap: 0x0C00_0000},
		{Name: "with space\tand\nnewline", Cycles: 42, FreeHeap: 7},
	}

	for _, layout := range []Layout{LayoutTerminated, LayoutPrefixed} {
		for _, r := range records {
			t.Run(layout.String()+"/"+r.Name, func(t *testing.T) {
				t.Parallel()

				b, err := layout.Encode(r)
				if err != nil {
					t.Fatalf("Encode returned error: %v", err)
				}

				got, err := layout.Decode(b)
				if err != nil {
					t.Fatalf("Decode returned error: %v", err)
				}

				want := r
				if layout == LayoutPrefixed {
					want.FreeHeap = 0
				}
				if got != want {
					t.Fatalf("round trip mismatch: want %+v, got %+v", want, got)
				}
			})
		}
	}
}

func TestDecodeTerminatedErrors(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name    string
		input   []byte
		wantErr error
	}{
		{
			name:    "no NUL",
			input:   []byte("hash_merkle_root_without_terminator"),
			wantErr: ErrMissingTerminator,
		},
		{
			name:    "empty",
			input:   nil,
			wantErr: ErrMissingTerminator,
		},
		{
			name:    "five bytes after NUL",
			input:   append([]byte("name\x00"), 1, 2, 3, 4, 5),
			wantErr: ErrTruncated,
		},
		{
			name:    "only the cycle count",
			input:   append([]byte("name\x00"), make([]byte, CountSize)...),
			wantErr: ErrTruncated,
		},
		{
			name:    "terminator only",
			input:   []byte{0x00},
			wantErr: ErrTruncated,
		},
		{
			name:    "trailing bytes",
			input:   append([]byte("name\x00"), make([]byte, tailSize+1)...),
			wantErr: ErrTrailingData,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeTerminated(tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if !errors.Is(err, ErrDecode) {
				t.Fatalf("expected error to belong to ErrDecode, got %v", err)
			}
		})
	}
}

func TestDecodeTerminatedSplitsAtFirstNUL(t *testing.T) {
	// The zeroed tail holds more NUL bytes; only the first one splits.
	b := append([]byte("a\x00"), make([]byte, tailSize)...)
	rec, err := DecodeTerminated(b)
	if err != nil {
		t.Fatalf("DecodeTerminated returned error: %v", err)
	}
	if rec.Name != "a" {
		t.Fatalf("expected name %q, got %q", "a", rec.Name)
	}
}

func TestDecodePrefixedErrors(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name    string
		input   []byte
		wantErr error
	}{
		{name: "empty", input: []byte{}, wantErr: ErrEmpty},
		{name: "short", input: []byte{1, 2, 3}, wantErr: ErrTruncated},
		{name: "count only", input: make([]byte, CountSize), wantErr: nil},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodePrefixed(tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestEncodeRejectsNUL(t *testing.T) {
	for _, layout := range []Layout{LayoutTerminated, LayoutPrefixed} {
		if _, err := layout.Encode(Record{Name: "bad\x00name"}); !errors.Is(err, ErrNameContainsNUL) {
			t.Fatalf("%s: expected ErrNameContainsNUL, got %v", layout, err)
		}
	}
}

func TestUnknownLayout(t *testing.T) {
	var l Layout
	if _, err := l.Encode(Record{Name: "x"}); err == nil {
		t.Fatalf("expected error for unknown layout")
	}
	if _, err := l.Decode([]byte("x")); !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
	if l.String() != "layout(0)" {
		t.Fatalf("unexpected layout string %q", l.String())
	}
}

func BenchmarkCodec(b *testing.B) {
	r := Record{Name: "hash_merkle_root", Cycles: 4096, FreeHeap: 8388608}

	for _, layout := range []Layout{LayoutTerminated, LayoutPrefixed} {
		b.Run(layout.String(), func(b *testing.B) {
			b.ReportAllocs()
			for range b.N {
				buf, err := layout.Encode(r)
				if err != nil {
					b.Fatalf("Encode failed: %v", err)
				}
				if _, err := layout.Decode(buf); err != nil {
					b.Fatalf("Decode failed: %v", err)
				}
			}
		})
	}
}
