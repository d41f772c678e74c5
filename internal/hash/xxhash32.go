package hash

// xxhash32 implements the XXH32 algorithm (xxHash's 32-bit variant) for a
// given seed. The module already depends on cespare/xxhash/v2 for the
// 64-bit hash, but that package exposes no 32-bit variant, and no
// alternative xxHash32 implementation appears anywhere in the pack this
// module was grounded on; hand-rolling the ~40-line reference algorithm
// avoids a second, otherwise-unused hashing dependency for one call site
// (strview.View.Hash32).
const (
	prime32_1 uint32 = 2654435761
	prime32_2 uint32 = 2246822519
	prime32_3 uint32 = 3266489917
	prime32_4 uint32 = 668265263
	prime32_5 uint32 = 374761393
)

func XXHash32(data []byte, seed uint32) uint32 {
	n := len(data)
	var h32 uint32

	if n >= 16 {
		v1 := seed + prime32_1 + prime32_2
		v2 := seed + prime32_2
		v3 := seed
		v4 := seed - prime32_1

		for len(data) >= 16 {
			v1 = round32(v1, le32(data[0:4]))
			v2 = round32(v2, le32(data[4:8]))
			v3 = round32(v3, le32(data[8:12]))
			v4 = round32(v4, le32(data[12:16]))
			data = data[16:]
		}

		h32 = rotl32(v1, 1) + rotl32(v2, 7) + rotl32(v3, 12) + rotl32(v4, 18)
	} else {
		h32 = seed + prime32_5
	}

	h32 += uint32(n)

	for len(data) >= 4 {
		h32 += le32(data[0:4]) * prime32_3
		h32 = rotl32(h32, 17) * prime32_4
		data = data[4:]
	}

	for len(data) > 0 {
		h32 += uint32(data[0]) * prime32_5
		h32 = rotl32(h32, 11) * prime32_1
		data = data[1:]
	}

	h32 ^= h32 >> 15
	h32 *= prime32_2
	h32 ^= h32 >> 13
	h32 *= prime32_3
	h32 ^= h32 >> 16

	return h32
}

func round32(acc, input uint32) uint32 {
	acc += input * prime32_2
	acc = rotl32(acc, 13)
	acc *= prime32_1

	return acc
}

func rotl32(x uint32, r uint) uint32 {
	return (x << r) | (x >> (32 - r))
}

func le32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
