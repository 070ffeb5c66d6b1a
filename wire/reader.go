package wire

import (
	"fmt"
	"math"

	"github.com/x448/float16"

	"github.com/telwire/senmlcbor/errs"
)

// Head is one decoded data-item head: the major type, the raw
// additional-information bits, and the fully widened argument.
//
// For immediate and multi-byte arguments Arg holds the argument value. For
// floats under major type 7 it holds the raw bit pattern at the encoded
// width; FloatFromHead widens it.
type Head struct {
	Major byte
	AI    byte
	Arg   uint64
}

// Reader decodes CBOR heads and payloads from a byte slice.
//
// It performs structural validation only: truncation, reserved
// additional-information values and indefinite lengths. Every error wraps
// errs.ErrMalformedEncoding. The reader never retains or mutates the input
// slice, and the payloads it returns are copies.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// ReadHead decodes the head of the next data item and advances past it.
func (r *Reader) ReadHead() (Head, error) {
	if r.pos >= len(r.data) {
		return Head{}, fmt.Errorf("%w: truncated head at offset %d", errs.ErrMalformedEncoding, r.pos)
	}

	initial := r.data[r.pos]
	r.pos++

	h := Head{Major: initial >> 5, AI: initial & 0x1f}
	switch {
	case h.AI <= AIImmediateMax:
		h.Arg = uint64(h.AI)
	case h.AI <= AIUint64:
		width := 1 << (h.AI - AIUint8)
		if len(r.data)-r.pos < width {
			return Head{}, fmt.Errorf("%w: truncated %d-byte argument at offset %d",
				errs.ErrMalformedEncoding, width, r.pos)
		}
		for _, b := range r.data[r.pos : r.pos+width] {
			h.Arg = h.Arg<<8 | uint64(b)
		}
		r.pos += width
	case h.AI <= AIReservedMax:
		return Head{}, fmt.Errorf("%w: reserved additional information %d at offset %d",
			errs.ErrMalformedEncoding, h.AI, r.pos-1)
	default:
		return Head{}, fmt.Errorf("%w: indefinite-length item at offset %d",
			errs.ErrMalformedEncoding, r.pos-1)
	}

	return h, nil
}

// ReadText reads a text-string payload of the given length and returns it
// as an independent string.
func (r *Reader) ReadText(length uint64) (string, error) {
	b, err := r.take(length)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// ReadBytes reads a byte-string payload of the given length. The returned
// slice is a copy and stays valid after the input buffer is reused.
func (r *Reader) ReadBytes(length uint64) ([]byte, error) {
	b, err := r.take(length)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(b))
	copy(out, b)

	return out, nil
}

// take consumes length payload bytes, failing on truncation before moving
// the read position.
func (r *Reader) take(length uint64) ([]byte, error) {
	if length > uint64(len(r.data)-r.pos) {
		return nil, fmt.Errorf("%w: payload of %d bytes with only %d remaining",
			errs.ErrMalformedEncoding, length, len(r.data)-r.pos)
	}

	start := r.pos
	r.pos += int(length)

	return r.data[start:r.pos], nil
}

// Pos returns the current byte offset from the start of the input.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// FloatFromHead widens the float bits carried by a major-type-7 head into a
// float64. It reports false when the head's additional information is not a
// floating-point width, which is how the codec tells floats apart from
// simple values.
func FloatFromHead(h Head) (float64, bool) {
	switch h.AI {
	case AIUint16:
		return float64(float16.Frombits(uint16(h.Arg)).Float32()), true
	case AIUint32:
		return float64(math.Float32frombits(uint32(h.Arg))), true
	case AIUint64:
		return math.Float64frombits(h.Arg), true
	}

	return 0, false
}
