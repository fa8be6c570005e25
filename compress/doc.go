// Package compress provides the compression codecs used by catenc snapshot
// persistence.
//
// Snapshot payloads are dominated by vocabulary strings and float64
// statistics; for large vocabularies they compress well. Four codecs are
// available: None (default), Zstd (best ratio), S2 (fast), and LZ4 (fast,
// wide compatibility).
//
// The Zstd codec has two implementations selected at build time: the pure-Go
// klauspost/compress encoder by default, and valyala/gozstd when building
// with the "gozstd" tag (requires cgo).
package compress
