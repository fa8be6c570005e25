package snapshot

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/catenc/compress"
	"github.com/arloliu/catenc/encoder"
	"github.com/arloliu/catenc/endian"
	"github.com/arloliu/catenc/internal/options"
	"github.com/arloliu/catenc/internal/pool"
)

// Marshal serializes a fitted encoder into snapshot bytes.
//
// Returns errs.ErrNotFitted when the encoder has not been fitted. The
// returned slice is newly allocated and owned by the caller.
func Marshal(enc *encoder.Encoder, opts ...Option) ([]byte, error) {
	cfg := newMarshalConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	state, err := enc.ExportState()
	if err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(cfg.compression, "snapshot payload")
	if err != nil {
		return nil, err
	}

	buf := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(buf)

	w := payloadWriter{buf: buf, engine: cfg.engine}
	if err := w.writeState(state); err != nil {
		return nil, err
	}

	payload, err := codec.Compress(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("compress snapshot payload: %w", err)
	}

	out := make([]byte, 0, HeaderSize+len(payload))
	out = binary.BigEndian.AppendUint32(out, MagicNumber)
	out = append(out, Version)

	flag := uint8(cfg.compression) << flagCompressionBit
	if cfg.bigEndian {
		flag |= flagBigEndian
	}
	out = append(out, flag)
	out = append(out, uint8(state.Strategy), uint8(state.HashType), uint8(state.Policy))
	out = append(out, 0, 0, 0) // reserved
	out = cfg.engine.AppendUint32(out, uint32(len(payload))) //nolint:gosec
	out = append(out, payload...)

	return out, nil
}

// payloadWriter appends the encoder state to a pooled buffer using the
// configured byte order.
type payloadWriter struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
}

func (w *payloadWriter) writeState(state *encoder.State) error {
	w.writeFloat64(state.Sentinel)
	w.writeUint32(uint32(state.HashWidth)) //nolint:gosec
	if err := w.writeString(state.TargetColumn); err != nil {
		return err
	}

	w.writeUint32(uint32(len(state.Columns))) //nolint:gosec
	for _, cs := range state.Columns {
		if err := w.writeString(cs.Name); err != nil {
			return err
		}
		w.writeUint32(uint32(cs.Width)) //nolint:gosec

		w.writeUint32(uint32(len(cs.Vocab))) //nolint:gosec
		for _, value := range cs.Vocab {
			if err := w.writeString(value); err != nil {
				return err
			}
		}

		w.writeUint32(uint32(len(cs.Stats))) //nolint:gosec
		for _, stat := range cs.Stats {
			w.writeFloat64(stat)
		}
	}

	return nil
}

// writeString encodes a string with a uint16 length prefix.
func (w *payloadWriter) writeString(s string) error {
	if len(s) > MaxStringLength {
		return fmt.Errorf("string length %d exceeds maximum %d", len(s), MaxStringLength)
	}

	w.buf.Grow(2 + len(s))
	w.buf.B = w.engine.AppendUint16(w.buf.B, uint16(len(s))) //nolint:gosec
	w.buf.MustWrite([]byte(s))

	return nil
}

func (w *payloadWriter) writeUint32(v uint32) {
	w.buf.B = w.engine.AppendUint32(w.buf.B, v)
}

func (w *payloadWriter) writeFloat64(v float64) {
	w.buf.B = w.engine.AppendUint64(w.buf.B, math.Float64bits(v))
}
