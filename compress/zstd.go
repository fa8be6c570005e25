package compress

// ZstdCompressor provides Zstandard compression for snapshot payloads.
//
// Zstd gives the best compression ratio of the available codecs and is the
// recommended choice for snapshots of large vocabularies that are written
// infrequently and stored long-term.
//
// Two implementations exist, selected at build time:
//   - default: pure-Go encoder from klauspost/compress/zstd
//   - "gozstd" build tag: cgo bindings to libzstd via valyala/gozstd
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
