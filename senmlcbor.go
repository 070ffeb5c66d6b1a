// Package senmlcbor implements a compact, deterministic SenML/CBOR codec
// for battery-powered telemetry devices.
//
// Sensor readings are modeled as SenML packs: flat sequences of records
// that factor shared context (device name, measurement epoch) into base
// fields instead of repeating it per reading. Packs encode to canonical
// CBOR small enough for a single LoRa frame, and identical packs always
// encode to identical bytes.
//
// # Core Features
//
//   - Canonical CBOR output: minimal-width heads, shortest lossless float
//     widths, definite lengths only
//   - Deterministic encoding, so pack equality is byte equality and packs
//     can be fingerprinted (64-bit xxHash64) for cheap change detection
//   - Hard capacity bounds (99 records per pack, 5 extensions per record)
//     enforced on both encode and decode
//   - Fail-fast decoding with typed errors for capacity, duplicate fields,
//     unsupported fields, type mismatches, and malformed input
//   - Base-field resolution into absolute named measurements
//   - Radio and connectivity surfaces for moving packs over constrained
//     links
//
// # Basic Usage
//
// Building and encoding a pack:
//
//	import (
//	    "github.com/telwire/senmlcbor"
//	    "github.com/telwire/senmlcbor/senml"
//	)
//
//	pack := senml.Pack{Records: []senml.Record{
//	    {
//	        BaseName: senml.String("urn:dev:ow:10e2073a01080063"),
//	        BaseTime: senml.Int64(1700000000),
//	        Name:     senml.String("temp"),
//	        Value:    senml.Float(21.5),
//	    },
//	    {Name: senml.String("door"), Time: senml.Int64(2), Value: senml.Boolean(true)},
//	}}
//
//	data, err := senmlcbor.Encode(pack)
//
// Decoding and resolving:
//
//	pack, err := senmlcbor.Decode(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, m := range pack.Resolve() {
//	    fmt.Printf("%s @%d = %v\n", m.Name, m.Time, m.Value)
//	}
//
// Change detection without keeping the encoded bytes:
//
//	fp, _ := senmlcbor.Fingerprint(pack)
//	if fp != lastReported {
//	    // the readings changed, worth a frame
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the codec
// package, covering the common pack-in, bytes-out cases. The subpackages
// carry the full surfaces:
//
//   - senml: the data model (values, records, packs, resolution)
//   - codec: encoder, decoder, fingerprints, diagnostic notation
//   - errs: the sentinel errors the codec classifies failures with
//   - radio: the modem interface and an in-memory loopback pair
//   - connectivity: interface tracking with aggregate online state
//   - uplink: the reporter gluing packs to radio frames
package senmlcbor

import (
	"github.com/telwire/senmlcbor/codec"
	"github.com/telwire/senmlcbor/senml"
)

// Encode serializes the pack into canonical CBOR.
//
// Equal packs encode to identical bytes. The pack is validated first;
// packs over the capacity bounds fail with errs.ErrCapacityExceeded.
//
// Parameters:
//   - pack: The pack to serialize
//
// Returns:
//   - []byte: The encoded pack, owned by the caller
//   - error: Validation or encoding failure
//
// Example:
//
//	data, err := senmlcbor.Encode(pack)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Encode(pack senml.Pack) ([]byte, error) {
	return codec.Encode(pack)
}

// Decode parses an encoded pack, accepting any well-formed encoding of the
// supported schema, canonical or not.
//
// On any failure the returned pack is empty and the error wraps one of the
// errs sentinels; a partially decoded pack is never returned. The returned
// pack owns all its memory, so the input buffer may be reused immediately.
//
// Parameters:
//   - data: One complete encoded pack, with no trailing bytes
//
// Returns:
//   - senml.Pack: The decoded pack
//   - error: Classification of the first defect found
//
// Example:
//
//	pack, err := senmlcbor.Decode(frame)
//	if errors.Is(err, errs.ErrMalformedEncoding) {
//	    // corrupt frame, drop it
//	}
func Decode(data []byte) (senml.Pack, error) {
	return codec.Decode(data)
}

// Fingerprint returns a 64-bit digest of the pack's canonical encoding.
//
// Because encoding is deterministic, equal packs always produce equal
// fingerprints, and a changed fingerprint always means changed content.
// The digest is xxHash64, not a cryptographic hash.
//
// Example:
//
//	fp, err := senmlcbor.Fingerprint(pack)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	changed := fp != previous
func Fingerprint(pack senml.Pack) (uint64, error) {
	return codec.Fingerprint(pack)
}

// Diagnose renders encoded bytes in CBOR diagnostic notation (RFC 8949
// section 8) for logs and debugging.
//
// Diagnose accepts any well-formed CBOR item, not only packs, and performs
// none of Decode's schema checks.
//
// Example:
//
//	diag, _ := senmlcbor.Diagnose(data)
//	fmt.Println(diag) // [{-2: "dev", 0: "temp", 2: 21.5}]
func Diagnose(data []byte) (string, error) {
	return codec.Diagnose(data)
}
