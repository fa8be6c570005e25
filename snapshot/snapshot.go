// Package snapshot serializes fitted encoders to a compact binary format
// and restores them, so a fit can be reused across processes without
// re-reading training data.
//
// # Format
//
// A snapshot is a fixed 16-byte header followed by a payload:
//
//	bytes 0-3:   magic number (big-endian, independent of the flag byte)
//	byte  4:     format version
//	byte  5:     flag (bit 0: big-endian payload, bits 1-3: compression)
//	byte  6:     strategy type
//	byte  7:     hash type
//	byte  8:     unseen policy
//	bytes 9-11:  reserved
//	bytes 12-15: payload length (in the flagged byte order)
//
// The payload holds the encoder configuration and the per-column fit state
// (vocabulary as length-prefixed strings, statistics as float64 values),
// optionally compressed with the configured codec.
//
// # Basic Usage
//
//	data, err := snapshot.Marshal(enc, snapshot.WithCompression(format.CompressionZstd))
//	...
//	restored, err := snapshot.Unmarshal(data)
//	out, err := restored.Transform(newFrame)
//
// A restored encoder transforms identically to the one that was marshaled.
package snapshot

import (
	"github.com/arloliu/catenc/endian"
	"github.com/arloliu/catenc/format"
	"github.com/arloliu/catenc/internal/options"
)

const (
	// MagicNumber identifies catenc snapshot data.
	MagicNumber uint32 = 0xCA7E9C0D

	// Version is the current snapshot format version.
	Version uint8 = 1

	// HeaderSize is the fixed size of the snapshot header in bytes.
	HeaderSize = 16

	// MaxStringLength is the longest category value, column name, or target
	// name a snapshot can hold, bounded by the uint16 length prefix.
	MaxStringLength = 65535
)

// Flag byte layout.
const (
	flagBigEndian       = 0x01
	flagCompressionMask = 0x0E
	flagCompressionBit  = 1
)

// config holds marshaling options.
type config struct {
	compression format.CompressionType
	engine      endian.EndianEngine
	bigEndian   bool
}

func newMarshalConfig() *config {
	return &config{
		compression: format.CompressionNone,
		engine:      endian.GetLittleEndianEngine(),
	}
}

// Option represents a functional option for Marshal.
type Option = options.Option[*config]

// WithCompression selects the payload compression codec.
// The default is format.CompressionNone.
func WithCompression(compression format.CompressionType) Option {
	return options.NoError(func(c *config) {
		c.compression = compression
	})
}

// WithLittleEndian writes the payload in little-endian byte order (default).
func WithLittleEndian() Option {
	return options.NoError(func(c *config) {
		c.engine = endian.GetLittleEndianEngine()
		c.bigEndian = false
	})
}

// WithBigEndian writes the payload in big-endian byte order.
func WithBigEndian() Option {
	return options.NoError(func(c *config) {
		c.engine = endian.GetBigEndianEngine()
		c.bigEndian = true
	})
}
