package codec

import (
	"io"

	"github.com/telwire/senmlcbor/senml"
	"github.com/telwire/senmlcbor/wire"
)

// Encode serializes pack into its canonical CBOR form.
//
// Encoding is deterministic: two packs that compare equal produce
// byte-identical output, because fields are written in schema order with
// minimal-width integers and shortest-form floats. The pack is validated
// against the capacity bounds before any byte is produced, so a failed
// encode emits nothing.
//
// Parameters:
//   - pack: The pack to serialize; at most senml.MaxPackRecords records,
//     each with at most senml.MaxRecordExtensions extension attributes.
//
// Returns:
//   - []byte: The encoded pack, owned by the caller.
//   - error: errs.ErrCapacityExceeded when a bound is violated, a plain
//     error for structurally broken records (nil extension values).
func Encode(pack senml.Pack) ([]byte, error) {
	if err := pack.Validate(); err != nil {
		return nil, err
	}

	w := wire.NewWriter()
	defer w.Reset()

	encodePack(w, pack)

	out := make([]byte, w.Len())
	copy(out, w.Bytes())

	return out, nil
}

// EncodeTo serializes pack into out, avoiding the intermediate copy Encode
// makes. It returns the number of bytes written. Validation and failure
// semantics match Encode: nothing is written to out on error.
func EncodeTo(out io.Writer, pack senml.Pack) (int64, error) {
	if err := pack.Validate(); err != nil {
		return 0, err
	}

	w := wire.NewWriter()
	defer w.Reset()

	encodePack(w, pack)

	return w.WriteTo(out)
}

func encodePack(w *wire.Writer, pack senml.Pack) {
	w.WriteArrayHead(pack.Len())
	for i := range pack.Records {
		encodeRecord(w, &pack.Records[i])
	}
}

func encodeRecord(w *wire.Writer, r *senml.Record) {
	pairs := len(r.Extensions)
	if r.BaseName != nil {
		pairs++
	}
	if r.BaseTime != nil {
		pairs++
	}
	if r.Name != nil {
		pairs++
	}
	if r.Time != nil {
		pairs++
	}
	if r.Value != nil {
		pairs++
	}

	w.WriteMapHead(pairs)

	if r.BaseName != nil {
		w.WriteInt(LabelBaseName)
		w.WriteText(*r.BaseName)
	}
	if r.BaseTime != nil {
		w.WriteInt(LabelBaseTime)
		w.WriteInt(*r.BaseTime)
	}
	if r.Name != nil {
		w.WriteInt(LabelName)
		w.WriteText(*r.Name)
	}
	if r.Time != nil {
		w.WriteInt(LabelTime)
		w.WriteInt(*r.Time)
	}
	if r.Value != nil {
		encodeValue(w, r.Value)
	}
	for _, ext := range r.Extensions {
		w.WriteInt(int64(ext.Key))
		encodeExtensionPayload(w, ext.Value)
	}
}

// encodeValue writes the value's label and payload. The label depends on
// the variant; integers and floats share one.
func encodeValue(w *wire.Writer, v senml.Value) {
	switch val := v.(type) {
	case senml.Integer:
		w.WriteInt(LabelValueNumeric)
		w.WriteInt(int64(val))
	case senml.Float:
		w.WriteInt(LabelValueNumeric)
		w.WriteFloat(float64(val))
	case senml.Text:
		w.WriteInt(LabelValueText)
		w.WriteText(string(val))
	case senml.Boolean:
		w.WriteInt(LabelValueBoolean)
		w.WriteBool(bool(val))
	case senml.Opaque:
		w.WriteInt(LabelValueOpaque)
		w.WriteBytes(val)
	case senml.ObjectLink:
		w.WriteInt(LabelValueObjectLink)
		w.WriteText(string(val))
	}
}

// encodeExtensionPayload writes an extension payload; the vendor key was
// already written by the caller. ObjectLink is absent from the extension
// value set, so there is no text-or-objlink ambiguity here.
func encodeExtensionPayload(w *wire.Writer, v senml.ExtensionValue) {
	switch val := v.(type) {
	case senml.Integer:
		w.WriteInt(int64(val))
	case senml.Float:
		w.WriteFloat(float64(val))
	case senml.Text:
		w.WriteText(string(val))
	case senml.Boolean:
		w.WriteBool(bool(val))
	case senml.Opaque:
		w.WriteBytes(val)
	}
}
