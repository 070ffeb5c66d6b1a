// Package senml defines the data model for SenML telemetry packs: scalar
// values, records with optional base-name/base-time inheritance, vendor
// extension attributes, and the pack container exchanged on the wire.
//
// The model is pure data. Encoding to and from the canonical CBOR
// representation lives in the codec package; this package only defines
// structure, capacity bounds, structural equality, and the base-field
// resolution rules.
//
// # Values
//
// A reading is one of six closed variants implementing the Value interface:
//
//   - Integer: signed 64-bit integer
//   - Float: IEEE-754 double
//   - Text: UTF-8 string
//   - Boolean: true/false
//   - Opaque: raw bytes
//   - ObjectLink: object-link path, encoded as text
//
// Equality is variant-aware: Integer(5) and Float(5) are different readings.
// Absence of a reading is modeled on the Record (a nil Value), never inside
// the variant itself.
//
// Extension attributes carry the narrower ExtensionValue set, which excludes
// ObjectLink. The asymmetry is part of the wire contract and is enforced at
// compile time: an Extension cannot hold an ObjectLink.
//
// # Records and packs
//
// Record fields are independently optional; presence is significant, so the
// optional fields are pointers. A record with neither name nor value is
// structurally legal and survives a round trip unchanged.
//
//	pack := senml.Pack{Records: []senml.Record{
//	    {
//	        BaseName: senml.String("dev"),
//	        BaseTime: senml.Int64(1000),
//	        Name:     senml.String("temp"),
//	        Time:     senml.Int64(5),
//	        Value:    senml.Integer(21),
//	    },
//	    {Name: senml.String("humid"), Time: senml.Int64(7), Value: senml.Integer(40)},
//	}}
//
// A pack holds at most MaxPackRecords records and each record at most
// MaxRecordExtensions extension attributes. The bounds are hard wire-format
// limits, checked at construction time by Append and AddExtension and again
// by the codec.
//
// # Resolution
//
// Resolve derives each record's effective name and time by folding base
// fields left to right across the pack:
//
//	for _, m := range pack.Resolve() {
//	    fmt.Printf("%s @%d = %v\n", m.Name, m.Time, m.Value)
//	}
//
// Packs are plain values with no hidden state; once built they can be shared
// across goroutines freely as long as no caller mutates them.
package senml
