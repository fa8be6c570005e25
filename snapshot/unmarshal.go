package snapshot

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/catenc/compress"
	"github.com/arloliu/catenc/encoder"
	"github.com/arloliu/catenc/endian"
	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
)

// Unmarshal restores a fitted encoder from snapshot bytes.
//
// The header is validated before any payload work: a wrong magic number,
// unsupported version, short header, or truncated payload each yield the
// matching sentinel error from the errs package.
func Unmarshal(data []byte) (*encoder.Encoder, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: got %d bytes, need %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	if magic := binary.BigEndian.Uint32(data[0:4]); magic != MagicNumber {
		return nil, fmt.Errorf("%w: 0x%08X", errs.ErrInvalidMagicNumber, magic)
	}
	if version := data[4]; version != Version {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, version)
	}

	flag := data[5]
	engine := endian.GetLittleEndianEngine()
	if flag&flagBigEndian != 0 {
		engine = endian.GetBigEndianEngine()
	}
	compression := format.CompressionType((flag & flagCompressionMask) >> flagCompressionBit)

	state := &encoder.State{
		Strategy: format.StrategyType(data[6]),
		HashType: format.HashType(data[7]),
		Policy:   format.UnseenPolicy(data[8]),
	}

	payloadLen := int(engine.Uint32(data[12:16]))
	if len(data)-HeaderSize < payloadLen {
		return nil, fmt.Errorf("%w: header claims %d payload bytes, got %d",
			errs.ErrPayloadTruncated, payloadLen, len(data)-HeaderSize)
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}

	payload, err := codec.Decompress(data[HeaderSize : HeaderSize+payloadLen])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}

	r := payloadReader{data: payload, engine: engine}
	if err := r.readState(state); err != nil {
		return nil, err
	}

	return encoder.Restore(state)
}

// payloadReader decodes the encoder state from a decompressed payload.
// Every read is bounds-checked; truncated payloads yield ErrPayloadTruncated.
type payloadReader struct {
	data   []byte
	engine endian.EndianEngine
	pos    int
}

func (r *payloadReader) readState(state *encoder.State) error {
	sentinel, err := r.readFloat64()
	if err != nil {
		return err
	}
	state.Sentinel = sentinel

	hashWidth, err := r.readUint32()
	if err != nil {
		return err
	}
	state.HashWidth = int(hashWidth)

	target, err := r.readString()
	if err != nil {
		return err
	}
	state.TargetColumn = target

	numColumns, err := r.readCount(minColumnSize)
	if err != nil {
		return err
	}

	state.Columns = make([]encoder.ColumnState, 0, numColumns)
	for i := 0; i < numColumns; i++ {
		var cs encoder.ColumnState

		if cs.Name, err = r.readString(); err != nil {
			return err
		}

		width, err := r.readUint32()
		if err != nil {
			return err
		}
		cs.Width = int(width)

		vocabLen, err := r.readCount(minStringSize)
		if err != nil {
			return err
		}
		cs.Vocab = make([]string, 0, vocabLen)
		for i := 0; i < vocabLen; i++ {
			value, err := r.readString()
			if err != nil {
				return err
			}
			cs.Vocab = append(cs.Vocab, value)
		}

		statsLen, err := r.readCount(float64Size)
		if err != nil {
			return err
		}
		cs.Stats = make([]float64, 0, statsLen)
		for i := 0; i < statsLen; i++ {
			stat, err := r.readFloat64()
			if err != nil {
				return err
			}
			cs.Stats = append(cs.Stats, stat)
		}

		state.Columns = append(state.Columns, cs)
	}

	return nil
}

// Minimum encoded sizes per element, used to validate count fields before
// anything is allocated from them.
const (
	minColumnSize = 14 // name prefix (2) + width (4) + vocab count (4) + stats count (4)
	minStringSize = 2  // length prefix of an empty string
	float64Size   = 8
)

// readCount reads a uint32 count field and rejects values whose elements
// cannot possibly fit in the remaining payload, so a corrupt count fails
// with ErrPayloadTruncated instead of driving a huge allocation.
func (r *payloadReader) readCount(minElemSize int) (int, error) {
	n, err := r.readUint32()
	if err != nil {
		return 0, err
	}

	count := int(n)
	if remaining := len(r.data) - r.pos; count > remaining/minElemSize {
		return 0, fmt.Errorf("%w: count %d needs at least %d bytes at offset %d, have %d",
			errs.ErrPayloadTruncated, count, count*minElemSize, r.pos, remaining)
	}

	return count, nil
}

func (r *payloadReader) take(n int) ([]byte, error) {
	if len(r.data)-r.pos < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			errs.ErrPayloadTruncated, n, r.pos, len(r.data)-r.pos)
	}

	b := r.data[r.pos : r.pos+n]
	r.pos += n

	return b, nil
}

func (r *payloadReader) readString() (string, error) {
	b, err := r.take(2)
	if err != nil {
		return "", err
	}
	length := int(r.engine.Uint16(b))

	b, err = r.take(length)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

func (r *payloadReader) readUint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint32(b), nil
}

func (r *payloadReader) readFloat64() (float64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(r.engine.Uint64(b)), nil
}
