package codec

import (
	"github.com/telwire/senmlcbor/internal/hash"
	"github.com/telwire/senmlcbor/senml"
	"github.com/telwire/senmlcbor/wire"
)

// Fingerprint returns the xxHash64 digest of the pack's canonical encoding.
//
// Because encoding is deterministic, two packs fingerprint identically
// exactly when they encode identically, so the digest can stand in for the
// bytes in dedup tables and change detection. It is not a cryptographic
// hash and offers no collision resistance against an adversary.
//
// The pack is validated the same way Encode validates it; the encoding is
// hashed in place without being copied out.
func Fingerprint(pack senml.Pack) (uint64, error) {
	if err := pack.Validate(); err != nil {
		return 0, err
	}

	w := wire.NewWriter()
	defer w.Reset()

	encodePack(w, pack)

	return hash.Sum64(w.Bytes()), nil
}
