package wire

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/x448/float16"

	"github.com/telwire/senmlcbor/internal/pool"
)

// Writer appends canonical CBOR items to a pooled byte buffer.
//
// Writer methods never fail: every Go value they accept has exactly one
// canonical encoding. Schema-level validation happens before anything is
// written, in the codec package.
//
// The zero value is not usable; create writers with NewWriter and call
// Reset when finished to return the buffer to the pool.
type Writer struct {
	buf *pool.ByteBuffer
}

// NewWriter creates a Writer backed by a pooled buffer sized for a typical
// encoded pack.
func NewWriter() *Writer {
	return &Writer{buf: pool.GetPackBuffer()}
}

// WriteHead appends the head of one data item: the major type plus the
// argument in the smallest width that can carry it.
func (w *Writer) WriteHead(major byte, arg uint64) {
	start := w.buf.Len()
	w.buf.ExtendOrGrow(9)
	b := w.buf.B[start:]

	var n int
	switch {
	case arg <= uint64(AIImmediateMax):
		b[0] = major<<5 | byte(arg)
		n = 1
	case arg <= math.MaxUint8:
		b[0] = major<<5 | AIUint8
		b[1] = byte(arg)
		n = 2
	case arg <= math.MaxUint16:
		b[0] = major<<5 | AIUint16
		binary.BigEndian.PutUint16(b[1:], uint16(arg))
		n = 3
	case arg <= math.MaxUint32:
		b[0] = major<<5 | AIUint32
		binary.BigEndian.PutUint32(b[1:], uint32(arg))
		n = 5
	default:
		b[0] = major<<5 | AIUint64
		binary.BigEndian.PutUint64(b[1:], arg)
		n = 9
	}

	w.buf.SetLength(start + n)
}

// WriteInt appends a signed integer, choosing between the unsigned and
// negative major types. Negative values are carried as -1 - argument, so
// the full int64 range encodes without loss.
func (w *Writer) WriteInt(v int64) {
	if v >= 0 {
		w.WriteHead(MajorUnsigned, uint64(v))
		return
	}

	w.WriteHead(MajorNegative, ^uint64(v))
}

// WriteText appends a definite-length text string.
func (w *Writer) WriteText(s string) {
	w.WriteHead(MajorText, uint64(len(s)))
	w.buf.MustWrite([]byte(s))
}

// WriteBytes appends a definite-length byte string.
func (w *Writer) WriteBytes(data []byte) {
	w.WriteHead(MajorBytes, uint64(len(data)))
	w.buf.MustWrite(data)
}

// WriteBool appends a boolean simple value.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.buf.MustWriteByte(MajorSimple<<5 | SimpleTrue)
		return
	}

	w.buf.MustWriteByte(MajorSimple<<5 | SimpleFalse)
}

// WriteArrayHead appends the head of a definite-length array of n elements.
func (w *Writer) WriteArrayHead(n int) {
	w.WriteHead(MajorArray, uint64(n))
}

// WriteMapHead appends the head of a definite-length map of n pairs.
func (w *Writer) WriteMapHead(n int) {
	w.WriteHead(MajorMap, uint64(n))
}

// WriteFloat appends v in the shortest floating-point form that round-trips
// it exactly, trying float16, then float32, then float64. Every NaN
// collapses to CanonicalNaN16 regardless of its payload bits; infinities
// always fit in sixteen bits.
func (w *Writer) WriteFloat(v float64) {
	if math.IsNaN(v) {
		w.writeFloat16(CanonicalNaN16)
		return
	}

	if f32 := float32(v); float64(f32) == v {
		switch float16.PrecisionFromfloat32(f32) {
		case float16.PrecisionExact:
			w.writeFloat16(float16.Fromfloat32(f32).Bits())
			return
		case float16.PrecisionUnknown:
			// Subnormal halves; narrow only when the round trip is lossless.
			if f16 := float16.Fromfloat32(f32); f16.Float32() == f32 {
				w.writeFloat16(f16.Bits())
				return
			}
		}

		w.writeFloat32(f32)

		return
	}

	w.writeFloat64(v)
}

func (w *Writer) writeFloat16(bits uint16) {
	start := w.buf.Len()
	w.buf.ExtendOrGrow(3)
	b := w.buf.B[start:]

	b[0] = MajorSimple<<5 | AIUint16
	binary.BigEndian.PutUint16(b[1:], bits)
}

func (w *Writer) writeFloat32(v float32) {
	start := w.buf.Len()
	w.buf.ExtendOrGrow(5)
	b := w.buf.B[start:]

	b[0] = MajorSimple<<5 | AIUint32
	binary.BigEndian.PutUint32(b[1:], math.Float32bits(v))
}

func (w *Writer) writeFloat64(v float64) {
	start := w.buf.Len()
	w.buf.ExtendOrGrow(9)
	b := w.buf.B[start:]

	b[0] = MajorSimple<<5 | AIUint64
	binary.BigEndian.PutUint64(b[1:], math.Float64bits(v))
}

// Bytes returns the encoded data written so far.
//
// The returned slice shares the underlying buffer with the writer.
// Do not modify the returned slice or use it after Reset.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// WriteTo writes the encoded data to out.
func (w *Writer) WriteTo(out io.Writer) (int64, error) {
	return w.buf.WriteTo(out)
}

// Reset returns the buffer to the pool.
//
// After calling Reset, the writer should not be used again.
func (w *Writer) Reset() {
	if w.buf != nil {
		pool.PutPackBuffer(w.buf)
		w.buf = nil
	}
}
