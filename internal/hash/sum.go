package hash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 digest of data with the zero seed.
//
// The codec fingerprints encoded packs with it, so the digest of a given
// byte sequence is part of the public contract and must never change.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}
