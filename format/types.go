package format

import "strings"

type (
	StrategyType    uint8
	UnseenPolicy    uint8
	HashType        uint8
	CompressionType uint8
)

const (
	StrategyOrdinal            StrategyType = 0x1 // StrategyOrdinal maps categories to dense integer codes.
	StrategyOneHot             StrategyType = 0x2 // StrategyOneHot produces one indicator column per category.
	StrategyBinary             StrategyType = 0x3 // StrategyBinary writes ordinal codes as fixed-width bit columns.
	StrategyHashing            StrategyType = 0x4 // StrategyHashing buckets categories by hash modulo a fixed width.
	StrategyTarget             StrategyType = 0x5 // StrategyTarget replaces categories with per-category target means.
	StrategyLeaveOneOut        StrategyType = 0x6 // StrategyLeaveOneOut excludes each row's own target from its mean.
	StrategyHelmert            StrategyType = 0x7 // StrategyHelmert compares each level to the mean of prior levels.
	StrategySum                StrategyType = 0x8 // StrategySum compares each level to the grand mean.
	StrategyBackwardDifference StrategyType = 0x9 // StrategyBackwardDifference compares each level to the preceding one.
	StrategyPolynomial         StrategyType = 0xA // StrategyPolynomial uses orthogonal polynomial contrasts.

	UnseenSentinel      UnseenPolicy = 0x1 // UnseenSentinel encodes unseen values with a sentinel code.
	UnseenUnknownBucket UnseenPolicy = 0x2 // UnseenUnknownBucket routes unseen values to a reserved column.

	HashXXHash64 HashType = 0x1 // HashXXHash64 selects xxHash64 (default).
	HashFNV1a    HashType = 0x2 // HashFNV1a selects 64-bit FNV-1a.
	HashMD5      HashType = 0x3 // HashMD5 selects MD5 truncated to its first 8 bytes.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// strategyNames maps StrategyType to the names accepted by StrategyFromString.
var strategyNames = map[StrategyType]string{
	StrategyOrdinal:            "ordinal",
	StrategyOneHot:             "one_hot",
	StrategyBinary:             "binary",
	StrategyHashing:            "hashing",
	StrategyTarget:             "target",
	StrategyLeaveOneOut:        "leave_one_out",
	StrategyHelmert:            "helmert",
	StrategySum:                "sum",
	StrategyBackwardDifference: "backward_difference",
	StrategyPolynomial:         "polynomial",
}

var strategyFromString = func() map[string]StrategyType {
	m := make(map[string]StrategyType, len(strategyNames))
	for st, name := range strategyNames {
		m[name] = st
	}

	return m
}()

// String returns the canonical name of the strategy type.
func (s StrategyType) String() string {
	if name, exists := strategyNames[s]; exists {
		return name
	}

	return "unknown"
}

// Valid reports whether the strategy type is a known strategy.
func (s StrategyType) Valid() bool {
	_, exists := strategyNames[s]
	return exists
}

// UsesTarget reports whether the strategy requires a numeric target column.
func (s StrategyType) UsesTarget() bool {
	return s == StrategyTarget || s == StrategyLeaveOneOut
}

// IsContrast reports whether the strategy is a contrast encoder.
func (s StrategyType) IsContrast() bool {
	switch s {
	case StrategyHelmert, StrategySum, StrategyBackwardDifference, StrategyPolynomial:
		return true
	default:
		return false
	}
}

// StrategyFromString returns the StrategyType for a given name.
// Names are case-insensitive. Returns StrategyType(0) for unknown names;
// callers should check with Valid().
func StrategyFromString(name string) StrategyType {
	if st, exists := strategyFromString[strings.ToLower(name)]; exists {
		return st
	}

	return StrategyType(0)
}

func (p UnseenPolicy) String() string {
	switch p {
	case UnseenSentinel:
		return "sentinel"
	case UnseenUnknownBucket:
		return "unknown_bucket"
	default:
		return "unknown"
	}
}

func (h HashType) String() string {
	switch h {
	case HashXXHash64:
		return "xxhash64"
	case HashFNV1a:
		return "fnv1a"
	case HashMD5:
		return "md5"
	default:
		return "unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
