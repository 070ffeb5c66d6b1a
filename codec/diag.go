package codec

import (
	"github.com/fxamacker/cbor/v2"
)

// Diagnose renders encoded CBOR in RFC 8949 diagnostic notation, for
// logging encoded packs readably and for inspecting peer traffic that
// Decode rejected.
//
// It is a debugging aid, not a validator: it renders any well-formed CBOR,
// including streams that violate the pack schema or its bounds. Use Decode
// to validate.
func Diagnose(data []byte) (string, error) {
	return cbor.Diagnose(data)
}
