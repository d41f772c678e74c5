package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Seeded64 computes the xxHash64 of data using the given seed, for callers
// (strview) that need a fixed, non-default seed rather than ID's implicit
// zero seed.
func Seeded64(data []byte, seed uint64) uint64 {
	d := xxhash.NewWithSeed(seed)
	d.Write(data) //nolint:errcheck // Digest.Write never returns an error.

	return d.Sum64()
}
