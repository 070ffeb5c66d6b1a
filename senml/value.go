package senml

import (
	"bytes"
	"math"
)

// Value is one telemetry reading. It is a closed sum over six variants:
// Integer, Float, Text, Boolean, Opaque and ObjectLink. No other type can
// implement it.
//
// A nil Value on a Record means the record carries no reading at all, which
// is distinct from every variant including Boolean(false) and Text("").
type Value interface {
	// Equal reports whether the receiver and other hold the same variant
	// with the same payload. Values of different variants are never equal,
	// even when numerically alike.
	Equal(other Value) bool

	isValue()
}

// ExtensionValue is the value set permitted inside extension attributes.
// It covers every Value variant except ObjectLink; the restriction is part
// of the wire contract and enforced by the type system.
type ExtensionValue interface {
	Value

	isExtensionValue()
}

// Integer is a signed 64-bit integer reading.
type Integer int64

// Float is an IEEE-754 binary64 reading.
type Float float64

// Text is a UTF-8 string reading.
type Text string

// Boolean is a true/false reading.
type Boolean bool

// Opaque is a raw byte-string reading. A nil slice and an empty slice are
// the same reading.
type Opaque []byte

// ObjectLink is an object-link reading, carried on the wire as text. It is
// a distinct variant: ObjectLink("3303/0") never equals Text("3303/0").
type ObjectLink string

func (Integer) isValue()    {}
func (Float) isValue()      {}
func (Text) isValue()       {}
func (Boolean) isValue()    {}
func (Opaque) isValue()     {}
func (ObjectLink) isValue() {}

func (Integer) isExtensionValue() {}
func (Float) isExtensionValue()   {}
func (Text) isExtensionValue()    {}
func (Boolean) isExtensionValue() {}
func (Opaque) isExtensionValue()  {}

// Equal reports whether other is an Integer with the same value.
func (v Integer) Equal(other Value) bool {
	o, ok := other.(Integer)
	return ok && v == o
}

// Equal reports whether other is a Float with the same value. Two NaN
// readings compare equal so that packs survive round trips; the payload bits
// of a NaN are not preserved and do not participate in equality.
func (v Float) Equal(other Value) bool {
	o, ok := other.(Float)
	if !ok {
		return false
	}
	if math.IsNaN(float64(v)) && math.IsNaN(float64(o)) {
		return true
	}
	return v == o
}

// Equal reports whether other is a Text with the same string.
func (v Text) Equal(other Value) bool {
	o, ok := other.(Text)
	return ok && v == o
}

// Equal reports whether other is a Boolean with the same truth value.
func (v Boolean) Equal(other Value) bool {
	o, ok := other.(Boolean)
	return ok && v == o
}

// Equal reports whether other is an Opaque with the same bytes.
func (v Opaque) Equal(other Value) bool {
	o, ok := other.(Opaque)
	return ok && bytes.Equal(v, o)
}

// Equal reports whether other is an ObjectLink with the same path.
func (v ObjectLink) Equal(other Value) bool {
	o, ok := other.(ObjectLink)
	return ok && v == o
}

// ValueEqual reports whether a and b are both absent or hold equal readings.
// It is the nil-safe form of Value.Equal.
func ValueEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}
