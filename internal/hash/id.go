package hash

import (
	"crypto/md5"
	"encoding/binary"
	"hash/fnv"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/catenc/format"
)

// Sum64 computes the 64-bit hash of value using the given hash type.
//
// xxHash64 is the default used throughout catenc. FNV-1a and MD5 (truncated
// to its first 8 bytes, big-endian) are provided for compatibility with
// feature-hashing setups that standardized on them. Unknown hash types fall
// back to xxHash64.
func Sum64(value string, hashType format.HashType) uint64 {
	switch hashType {
	case format.HashFNV1a:
		h := fnv.New64a()
		_, _ = h.Write([]byte(value))

		return h.Sum64()
	case format.HashMD5:
		sum := md5.Sum([]byte(value))
		return binary.BigEndian.Uint64(sum[:8])
	default:
		return xxhash.Sum64String(value)
	}
}

// Bucket maps value to a column index in [0, width) using hash modulo width.
// width must be positive; callers validate it before fitting.
func Bucket(value string, width int, hashType format.HashType) int {
	return int(Sum64(value, hashType) % uint64(width)) //nolint:gosec
}
