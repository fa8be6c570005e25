package hash

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/catenc/format"
)

func TestSum64Deterministic(t *testing.T) {
	for _, ht := range []format.HashType{format.HashXXHash64, format.HashFNV1a, format.HashMD5} {
		a := Sum64("blue", ht)
		b := Sum64("blue", ht)
		require.Equal(t, a, b, "hash %s must be deterministic", ht)
	}
}

func TestSum64DistinguishesHashTypes(t *testing.T) {
	xx := Sum64("green", format.HashXXHash64)
	fnvSum := Sum64("green", format.HashFNV1a)
	md5Sum := Sum64("green", format.HashMD5)

	require.NotEqual(t, xx, fnvSum)
	require.NotEqual(t, xx, md5Sum)
	require.NotEqual(t, fnvSum, md5Sum)
}

func TestSum64UnknownTypeFallsBackToXXHash(t *testing.T) {
	require.Equal(t, Sum64("red", format.HashXXHash64), Sum64("red", format.HashType(0xFF)))
}

func TestBucketRange(t *testing.T) {
	values := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for _, width := range []int{1, 2, 7, 16} {
		for _, v := range values {
			b := Bucket(v, width, format.HashXXHash64)
			require.GreaterOrEqual(t, b, 0)
			require.Less(t, b, width)
		}
	}
}

func TestBucketWidthOneAlwaysZero(t *testing.T) {
	for _, v := range []string{"x", "y", "z"} {
		require.Equal(t, 0, Bucket(v, 1, format.HashMD5))
	}
}
