package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

const (
	// CountSize is the width of the cycle count field.
	CountSize = 8

	// HeapSize is the width of the free heap field.
	HeapSize = 8

	terminator = byte(0)
	tailSize   = CountSize + HeapSize
)

var (
	// ErrDecode is the family every decode failure belongs to.
	ErrDecode = errors.New("failed to decode metric record")

	// ErrMissingTerminator means no NUL byte separates the name from the numeric tail.
	ErrMissingTerminator = fmt.Errorf("%w: missing name terminator", ErrDecode)

	// ErrTruncated means fewer bytes than the fixed numeric fields require.
	ErrTruncated = fmt.Errorf("%w: record truncated", ErrDecode)

	// ErrTrailingData means bytes follow the fixed numeric tail.
	ErrTrailingData = fmt.Errorf("%w: trailing data after record", ErrDecode)

	// ErrEmpty means the buffer holds no bytes at all.
	ErrEmpty = fmt.Errorf("%w: empty buffer", ErrDecode)

	// ErrNameContainsNUL is returned by encoders for names that would break the layout.
	ErrNameContainsNUL = errors.New("metric name contains a NUL byte")
)

// Record is a single named cycle measurement.
type Record struct {
	// Name identifies the measured function.
	Name string

	// Cycles is the number of cycles spent in the measured window.
	Cycles uint64

	// FreeHeap is the estimated free heap in bytes at the end of the window.
	// LayoutPrefixed does not carry it and always decodes it as zero.
	FreeHeap uint64
}

// Layout selects one of the two wire layouts.
type Layout uint8

const (
	// LayoutTerminated is name ++ NUL ++ cycles ++ free heap.
	LayoutTerminated Layout = iota + 1

	// LayoutPrefixed is cycles ++ name.
	LayoutPrefixed
)

// String implements fmt.Stringer.
func (l Layout) String() string {
	switch l {
	case LayoutTerminated:
		return "terminated"
	case LayoutPrefixed:
		return "prefixed"
	default:
		return fmt.Sprintf("layout(%d)", uint8(l))
	}
}

// Encode encodes r using the layout.
func (l Layout) Encode(r Record) ([]byte, error) {
	switch l {
	case LayoutTerminated:
		return EncodeTerminated(r)
	case LayoutPrefixed:
		return EncodePrefixed(r)
	default:
		return nil, fmt.Errorf("unknown wire layout %s", l)
	}
}

// Decode decodes b using the layout.
func (l Layout) Decode(b []byte) (Record, error) {
	switch l {
	case LayoutTerminated:
		return DecodeTerminated(b)
	case LayoutPrefixed:
		return DecodePrefixed(b)
	default:
		return Record{}, fmt.Errorf("%w: unknown wire layout %s", ErrDecode, l)
	}
}

// EncodeTerminated encodes r as name ++ 0x00 ++ LE64(cycles) ++ LE64(free heap).
func EncodeTerminated(r Record) ([]byte, error) {
	if strings.IndexByte(r.Name, terminator) >= 0 {
		return nil, ErrNameContainsNUL
	}

	buf := make([]byte, 0, len(r.Name)+1+tailSize)
	buf = append(buf, r.Name...)
	buf = append(buf, terminator)
	buf = binary.LittleEndian.AppendUint64(buf, r.Cycles)
	buf = binary.LittleEndian.AppendUint64(buf, r.FreeHeap)
	return buf, nil
}

// DecodeTerminated splits b at the first NUL byte into a name and the fixed
// 16-byte numeric tail.
func DecodeTerminated(b []byte) (Record, error) {
	idx := bytes.IndexByte(b, terminator)
	if idx < 0 {
		return Record{}, ErrMissingTerminator
	}

	tail := b[idx+1:]
	switch {
	case len(tail) < tailSize:
		return Record{}, fmt.Errorf("%w: want %d bytes after terminator, got %d", ErrTruncated, tailSize, len(tail))
	case len(tail) > tailSize:
		return Record{}, fmt.Errorf("%w: %d extra bytes", ErrTrailingData, len(tail)-tailSize)
	}

	return Record{
		Name:     string(b[:idx]),
		Cycles:   binary.LittleEndian.Uint64(tail[:CountSize]),
		FreeHeap: binary.LittleEndian.Uint64(tail[CountSize:]),
	}, nil
}

// EncodePrefixed encodes r as LE64(cycles) ++ name. FreeHeap is not carried.
func EncodePrefixed(r Record) ([]byte, error) {
	if strings.IndexByte(r.Name, terminator) >= 0 {
		return nil, ErrNameContainsNUL
	}

	buf := make([]byte, 0, CountSize+len(r.Name))
	buf = binary.LittleEndian.AppendUint64(buf, r.Cycles)
	buf = append(buf, r.Name...)
	return buf, nil
}

// DecodePrefixed reads the leading cycle count; the name is everything after byte 8.
func DecodePrefixed(b []byte) (Record, error) {
	switch {
	case len(b) == 0:
		return Record{}, ErrEmpty
	case len(b) < CountSize:
		return Record{}, fmt.Errorf("%w: want at least %d bytes, got %d", ErrTruncated, CountSize, len(b))
	}

	return Record{
		Name:   string(b[CountSize:]),
		Cycles: binary.LittleEndian.Uint64(b[:CountSize]),
	}, nil
}
