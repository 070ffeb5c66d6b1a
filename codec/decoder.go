package codec

import (
	"fmt"
	"math"

	"github.com/telwire/senmlcbor/errs"
	"github.com/telwire/senmlcbor/senml"
	"github.com/telwire/senmlcbor/wire"
)

// Decode parses one encoded pack out of data.
//
// The decoder makes a single forward pass and validates as it goes:
// declared lengths are checked against the capacity bounds before their
// elements are read, payload lengths against the remaining input before
// anything is allocated. It accepts non-minimal integer widths from
// non-canonical peers but never indefinite lengths.
//
// All strings and byte payloads in the returned pack are copies; data is
// borrowed only for the duration of the call and may be reused afterwards.
//
// Parameters:
//   - data: A byte slice holding exactly one encoded pack.
//
// Returns:
//   - senml.Pack: The decoded pack; the zero Pack on error.
//   - error: One of the errs sentinels wrapped with position context, nil
//     on success.
func Decode(data []byte) (senml.Pack, error) {
	r := wire.NewReader(data)

	h, err := r.ReadHead()
	if err != nil {
		return senml.Pack{}, err
	}
	if h.Major != wire.MajorArray {
		return senml.Pack{}, fmt.Errorf("%w: pack must be an array, got major type %d",
			errs.ErrMalformedEncoding, h.Major)
	}
	if h.Arg > senml.MaxPackRecords {
		return senml.Pack{}, fmt.Errorf("%w: pack declares %d records, limit is %d",
			errs.ErrCapacityExceeded, h.Arg, senml.MaxPackRecords)
	}

	count := int(h.Arg)
	var records []senml.Record
	if count > 0 {
		records = make([]senml.Record, 0, count)
	}
	for i := range count {
		rec, err := decodeRecord(r)
		if err != nil {
			return senml.Pack{}, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, rec)
	}

	if r.Remaining() != 0 {
		return senml.Pack{}, fmt.Errorf("%w: %d trailing bytes after pack",
			errs.ErrMalformedEncoding, r.Remaining())
	}

	return senml.Pack{Records: records}, nil
}

func decodeRecord(r *wire.Reader) (senml.Record, error) {
	h, err := r.ReadHead()
	if err != nil {
		return senml.Record{}, err
	}
	if h.Major != wire.MajorMap {
		return senml.Record{}, fmt.Errorf("%w: record must be a map, got major type %d",
			errs.ErrMalformedEncoding, h.Major)
	}
	if h.Arg > maxRecordPairs {
		return senml.Record{}, fmt.Errorf("%w: record map declares %d pairs, limit is %d",
			errs.ErrCapacityExceeded, h.Arg, maxRecordPairs)
	}

	var rec senml.Record
	for range int(h.Arg) {
		if err := decodePair(r, &rec); err != nil {
			return senml.Record{}, err
		}
	}

	return rec, nil
}

// decodePair reads one key/payload pair and assigns it to its record field.
func decodePair(r *wire.Reader, rec *senml.Record) error {
	keyHead, err := r.ReadHead()
	if err != nil {
		return err
	}
	key, err := intFromHead(keyHead, "map key")
	if err != nil {
		return err
	}

	switch key {
	case LabelBaseName:
		if rec.BaseName != nil {
			return duplicateErr(key, "base name")
		}
		s, err := decodeText(r, "base name")
		if err != nil {
			return err
		}
		rec.BaseName = &s

	case LabelBaseTime:
		if rec.BaseTime != nil {
			return duplicateErr(key, "base time")
		}
		v, err := decodeInt(r, "base time")
		if err != nil {
			return err
		}
		rec.BaseTime = &v

	case LabelName:
		if rec.Name != nil {
			return duplicateErr(key, "name")
		}
		s, err := decodeText(r, "name")
		if err != nil {
			return err
		}
		rec.Name = &s

	case LabelTime:
		if rec.Time != nil {
			return duplicateErr(key, "time")
		}
		v, err := decodeInt(r, "time")
		if err != nil {
			return err
		}
		rec.Time = &v

	case LabelValueNumeric, LabelValueText, LabelValueBoolean, LabelValueOpaque, LabelValueObjectLink:
		if rec.Value != nil {
			return duplicateErr(key, "value")
		}
		v, err := decodeValuePayload(r, key)
		if err != nil {
			return err
		}
		rec.Value = v

	default:
		return decodeExtension(r, rec, key)
	}

	return nil
}

// decodeValuePayload reads the payload for one of the value-bearing labels.
func decodeValuePayload(r *wire.Reader, key int64) (senml.Value, error) {
	switch key {
	case LabelValueNumeric:
		h, err := r.ReadHead()
		if err != nil {
			return nil, err
		}
		switch h.Major {
		case wire.MajorUnsigned, wire.MajorNegative:
			v, err := intFromHead(h, "numeric value")
			if err != nil {
				return nil, err
			}

			return senml.Integer(v), nil
		case wire.MajorSimple:
			if f, ok := wire.FloatFromHead(h); ok {
				return senml.Float(f), nil
			}
		}

		return nil, fmt.Errorf("%w: numeric value has major type %d, want integer or float",
			errs.ErrTypeMismatch, h.Major)

	case LabelValueText:
		s, err := decodeText(r, "text value")
		if err != nil {
			return nil, err
		}

		return senml.Text(s), nil

	case LabelValueBoolean:
		b, err := decodeBool(r, "boolean value")
		if err != nil {
			return nil, err
		}

		return senml.Boolean(b), nil

	case LabelValueOpaque:
		b, err := decodeOpaque(r, "opaque value")
		if err != nil {
			return nil, err
		}

		return senml.Opaque(b), nil

	default: // LabelValueObjectLink
		s, err := decodeText(r, "object link value")
		if err != nil {
			return nil, err
		}

		return senml.ObjectLink(s), nil
	}
}

// decodeExtension handles keys outside the modeled label set: standard
// labels this schema does not carry are unsupported, everything else in
// int32 range lands in the extension list.
func decodeExtension(r *wire.Reader, rec *senml.Record, key int64) error {
	if key >= stdLabelMin && key <= stdLabelMax {
		return fmt.Errorf("%w: standard label %d is not part of the schema",
			errs.ErrUnsupportedField, key)
	}
	if key < math.MinInt32 || key > math.MaxInt32 {
		return fmt.Errorf("%w: extension key %d outside the 32-bit key space",
			errs.ErrUnsupportedField, key)
	}
	if len(rec.Extensions) >= senml.MaxRecordExtensions {
		return fmt.Errorf("%w: record already holds %d extension attributes",
			errs.ErrCapacityExceeded, senml.MaxRecordExtensions)
	}

	v, err := decodeExtensionPayload(r, key)
	if err != nil {
		return err
	}

	rec.Extensions = append(rec.Extensions, senml.Extension{Key: int32(key), Value: v})

	return nil
}

// decodeExtensionPayload reads an extension payload, dispatching on the
// encoded type alone since vendor keys carry no schema. Text payloads
// always become Text: the extension value set has no ObjectLink variant.
func decodeExtensionPayload(r *wire.Reader, key int64) (senml.ExtensionValue, error) {
	h, err := r.ReadHead()
	if err != nil {
		return nil, err
	}

	switch h.Major {
	case wire.MajorUnsigned, wire.MajorNegative:
		v, err := intFromHead(h, fmt.Sprintf("extension %d", key))
		if err != nil {
			return nil, err
		}

		return senml.Integer(v), nil

	case wire.MajorBytes:
		b, err := r.ReadBytes(h.Arg)
		if err != nil {
			return nil, err
		}

		return senml.Opaque(b), nil

	case wire.MajorText:
		s, err := r.ReadText(h.Arg)
		if err != nil {
			return nil, err
		}

		return senml.Text(s), nil

	case wire.MajorSimple:
		if f, ok := wire.FloatFromHead(h); ok {
			return senml.Float(f), nil
		}
		if h.AI <= wire.AIImmediateMax {
			switch byte(h.Arg) {
			case wire.SimpleFalse:
				return senml.Boolean(false), nil
			case wire.SimpleTrue:
				return senml.Boolean(true), nil
			}
		}

		return nil, fmt.Errorf("%w: extension %d carries an unsupported simple value",
			errs.ErrTypeMismatch, key)
	}

	return nil, fmt.Errorf("%w: extension %d has major type %d, want scalar",
		errs.ErrTypeMismatch, key, h.Major)
}

func decodeText(r *wire.Reader, what string) (string, error) {
	h, err := r.ReadHead()
	if err != nil {
		return "", err
	}
	if h.Major != wire.MajorText {
		return "", fmt.Errorf("%w: %s has major type %d, want text",
			errs.ErrTypeMismatch, what, h.Major)
	}

	return r.ReadText(h.Arg)
}

func decodeOpaque(r *wire.Reader, what string) ([]byte, error) {
	h, err := r.ReadHead()
	if err != nil {
		return nil, err
	}
	if h.Major != wire.MajorBytes {
		return nil, fmt.Errorf("%w: %s has major type %d, want bytes",
			errs.ErrTypeMismatch, what, h.Major)
	}

	return r.ReadBytes(h.Arg)
}

func decodeInt(r *wire.Reader, what string) (int64, error) {
	h, err := r.ReadHead()
	if err != nil {
		return 0, err
	}

	return intFromHead(h, what)
}

func decodeBool(r *wire.Reader, what string) (bool, error) {
	h, err := r.ReadHead()
	if err != nil {
		return false, err
	}
	if h.Major == wire.MajorSimple && h.AI <= wire.AIImmediateMax {
		switch byte(h.Arg) {
		case wire.SimpleFalse:
			return false, nil
		case wire.SimpleTrue:
			return true, nil
		}
	}

	return false, fmt.Errorf("%w: %s is not a boolean", errs.ErrTypeMismatch, what)
}

// intFromHead converts an integer head into int64, rejecting arguments the
// signed range cannot carry.
func intFromHead(h wire.Head, what string) (int64, error) {
	switch h.Major {
	case wire.MajorUnsigned:
		if h.Arg > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %s %d overflows int64", errs.ErrTypeMismatch, what, h.Arg)
		}

		return int64(h.Arg), nil

	case wire.MajorNegative:
		if h.Arg > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %s with negative argument %d overflows int64",
				errs.ErrTypeMismatch, what, h.Arg)
		}

		return -1 - int64(h.Arg), nil

	default:
		return 0, fmt.Errorf("%w: %s has major type %d, want integer",
			errs.ErrTypeMismatch, what, h.Major)
	}
}

func duplicateErr(key int64, what string) error {
	return fmt.Errorf("%w: %s (label %d) appears more than once", errs.ErrDuplicateField, what, key)
}
