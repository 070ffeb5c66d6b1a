// Package errs defines the sentinel errors shared by the senml model and the
// codec packages.
//
// Call sites wrap these sentinels with fmt.Errorf("%w: ...") to attach record
// indexes, keys, and byte offsets, so callers can classify failures with
// errors.Is while still seeing where a stream went wrong.
package errs

import "errors"

var (
	// ErrCapacityExceeded indicates a hard format bound was violated:
	// more than MaxPackRecords records in a pack, or more than
	// MaxRecordExtensions extension attributes in one record.
	// It is reported at construction, before encoding emits any byte,
	// and during decoding before the oversized container is read.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrDuplicateField indicates the same standard field key appeared
	// twice within one record map, or a second value-bearing key was
	// seen after the record's value was already set.
	ErrDuplicateField = errors.New("duplicate field")

	// ErrUnsupportedField indicates a key inside the standard SenML label
	// window that this schema does not model (for example unit or sum),
	// or a key that cannot be represented as an extension key.
	ErrUnsupportedField = errors.New("unsupported field")

	// ErrTypeMismatch indicates a well-formed item whose type disagrees
	// with the type defined for its position: a non-integer map key, an
	// integer payload under a text key, a nested container or null where
	// a scalar is required, or an integer outside the int64 range.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrMalformedEncoding indicates a structurally broken stream: a
	// truncated item head or body, a reserved or indefinite-length head,
	// a declared length exceeding the remaining input, a top-level item
	// that is not an array, or trailing bytes after the pack.
	ErrMalformedEncoding = errors.New("malformed encoding")
)
