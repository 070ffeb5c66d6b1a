package senml

import (
	"fmt"

	"github.com/telwire/senmlcbor/errs"
)

// Extension is one vendor extension attribute on a record: an application
// chosen integer key paired with an ExtensionValue payload.
//
// Keys outside the standard SenML label range are free for applications to
// assign. The codec preserves extension order, and repeated keys within one
// record are legal; the sequence is the unit of meaning, not a key set.
type Extension struct {
	Key   int32
	Value ExtensionValue
}

// Record is a single SenML record. Every field is independently optional;
// pointer fields distinguish absent from zero-valued.
//
// BaseName and BaseTime establish inheritance context for this record and
// every record after it in the pack (see Pack.Resolve). Name and Time apply
// to this record alone. Value holds the reading, if any.
type Record struct {
	// BaseName, when present, replaces the inherited base name from this
	// record onward.
	BaseName *string

	// BaseTime, when present, replaces the inherited base time from this
	// record onward.
	BaseTime *int64

	// Name is this record's own name component.
	Name *string

	// Time is this record's time offset, added to the effective base time.
	Time *int64

	// Value is the reading carried by this record, or nil when the record
	// has none.
	Value Value

	// Extensions holds up to MaxRecordExtensions vendor attributes in
	// application order. Prefer AddExtension, which enforces the bound.
	Extensions []Extension
}

// AddExtension appends one extension attribute to the record.
//
// Parameters:
//   - key: application-chosen extension key.
//   - value: the attribute payload; must be non-nil.
//
// Returns:
//   - error: errs.ErrCapacityExceeded when the record already holds
//     MaxRecordExtensions attributes, a plain error for a nil value,
//     nil otherwise.
func (r *Record) AddExtension(key int32, value ExtensionValue) error {
	if len(r.Extensions) >= MaxRecordExtensions {
		return fmt.Errorf("%w: record already holds %d extension attributes",
			errs.ErrCapacityExceeded, MaxRecordExtensions)
	}
	if value == nil {
		return fmt.Errorf("extension %d: nil value", key)
	}

	r.Extensions = append(r.Extensions, Extension{Key: key, Value: value})

	return nil
}

// Validate checks the record against the wire-format bounds. It returns
// errs.ErrCapacityExceeded when the record holds more than
// MaxRecordExtensions attributes and a plain error when an extension carries
// a nil value.
func (r Record) Validate() error {
	if len(r.Extensions) > MaxRecordExtensions {
		return fmt.Errorf("%w: record holds %d extension attributes, limit is %d",
			errs.ErrCapacityExceeded, len(r.Extensions), MaxRecordExtensions)
	}
	for _, ext := range r.Extensions {
		if ext.Value == nil {
			return fmt.Errorf("extension %d: nil value", ext.Key)
		}
	}

	return nil
}

// Equal reports whether two records are structurally identical: the same
// fields present, equal readings, and the same extension sequence.
func (r Record) Equal(other Record) bool {
	if !ptrEqual(r.BaseName, other.BaseName) ||
		!ptrEqual(r.BaseTime, other.BaseTime) ||
		!ptrEqual(r.Name, other.Name) ||
		!ptrEqual(r.Time, other.Time) {
		return false
	}
	if !ValueEqual(r.Value, other.Value) {
		return false
	}
	if len(r.Extensions) != len(other.Extensions) {
		return false
	}
	for i := range r.Extensions {
		if r.Extensions[i].Key != other.Extensions[i].Key {
			return false
		}
		if !ValueEqual(r.Extensions[i].Value, other.Extensions[i].Value) {
			return false
		}
	}

	return true
}

// String returns a pointer to s, for populating a Record's optional string
// fields inline.
func String(s string) *string { return &s }

// Int64 returns a pointer to v, for populating a Record's optional time
// fields inline.
func Int64(v int64) *int64 { return &v }

func ptrEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
