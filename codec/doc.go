// Package codec encodes SenML packs to canonical CBOR and decodes them
// back, enforcing the wire format's structure, bounds and typing.
//
// # Wire layout
//
// A pack is one definite-length CBOR array of up to 99 record maps. Each
// record map carries only the fields that are present, keyed by the SenML
// label numbers:
//
//	base name  -2  text      base time  -3  integer
//	name        0  text      time        6  integer
//	value       2  integer or float
//	value       3  text (vs) 4  boolean (vb)
//	value       8  bytes (vd)    9  object link (vlo, text)
//	extensions     vendor keys outside the standard label window
//
// Fields are written in that order, extensions last in list order, so a
// given pack has exactly one encoding. Integers and lengths use minimal-
// width heads and floats the shortest exact form, which makes encoded
// packs byte-comparable and content-addressable (see Fingerprint).
//
// # Decoding discipline
//
// Decode is a single forward pass that fails before reading what a hostile
// length field promises: an outer array claiming more than 99 records or a
// record map claiming more than 10 pairs is rejected on the spot. Errors
// are classified by the errs sentinels:
//
//   - errs.ErrCapacityExceeded: pack, map or extension bound violated
//   - errs.ErrDuplicateField: a standard field present twice, including a
//     second value-bearing label
//   - errs.ErrUnsupportedField: a standard SenML label this schema does not
//     model, or an extension key outside int32
//   - errs.ErrTypeMismatch: payload type disagrees with the label, map keys
//     that are not integers, nested containers, tags, nulls
//   - errs.ErrMalformedEncoding: truncation, reserved or indefinite heads,
//     non-map records, trailing bytes
//
// On any error the partial pack is discarded and the zero Pack returned.
// The decoder copies every string and byte payload, so the caller's buffer
// can be reused immediately after Decode returns.
//
// # Example
//
//	pack := senml.Pack{Records: []senml.Record{{
//	    Name:  senml.String("temp"),
//	    Time:  senml.Int64(5),
//	    Value: senml.Float(21.5),
//	}}}
//
//	data, err := codec.Encode(pack)
//	if err != nil {
//	    return err
//	}
//
//	decoded, err := codec.Decode(data)
//	if err != nil {
//	    return err
//	}
//	// decoded.Equal(pack) == true
package codec
