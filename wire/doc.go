// Package wire implements the low-level CBOR primitives the codec is built
// on: data-item heads, canonical integer and floating-point forms, and a
// bounds-checked reader.
//
// # Scope
//
// The package knows CBOR framing, not SenML. It enforces the structural
// rules every item shares and leaves schema decisions (which labels are
// legal, which payload types a field accepts) to the codec package.
//
// # Canonical output
//
// The Writer always emits the deterministic subset of CBOR:
//
//   - Heads use the smallest argument width that fits the value.
//   - Floats use the shortest of float16, float32 and float64 that
//     round-trips the value exactly; every NaN becomes the canonical
//     half-width NaN (0xf9 0x7e 0x00).
//   - Only definite lengths are produced.
//
// # Liberal input
//
// The Reader accepts any definite-length head, including oversized argument
// widths, so peers that do not emit canonical CBOR still interoperate.
// Reserved additional-information values (28-30) and indefinite-length
// items (31) fail with errs.ErrMalformedEncoding, as does any truncation.
// Every structural error the Reader returns wraps that one sentinel.
//
// Writers draw their buffers from an internal pool; call Reset when done so
// the buffer can be reused.
package wire
