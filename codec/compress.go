package codec

import (
	"encoding/binary"
	"errors"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the block compression applied by Compressed.
type Compression uint8

const (
	// CompressionNone stores payloads verbatim.
	CompressionNone Compression = 0
	// CompressionLZ4 is fast with a moderate ratio, good for hot data.
	CompressionLZ4 Compression = 1
	// CompressionZSTD trades speed for ratio, good for cold data.
	CompressionZSTD Compression = 2
)

// Frame: [compression byte][uncompressed size uint32 LE][data].
const frameHeaderSize = 5

// Compressed wraps inner so that marshaled payloads are block-compressed.
//
// Frames are self-describing: the leading byte records the compression
// actually used, so any Compressed codec can decode any frame. When
// compression does not help (ratio > 0.9) the payload is stored verbatim
// with a CompressionNone byte.
func Compressed(inner Codec, typ Compression) Codec {
	return &compressedCodec{inner: inner, typ: typ}
}

type compressedCodec struct {
	inner Codec
	typ   Compression
}

// Name returns the inner codec name with a compression suffix, e.g.
// "binary+lz4".
func (c *compressedCodec) Name() string {
	switch c.typ {
	case CompressionLZ4:
		return c.inner.Name() + "+lz4"
	case CompressionZSTD:
		return c.inner.Name() + "+zstd"
	default:
		return c.inner.Name() + "+none"
	}
}

// Marshal encodes with the inner codec and frames the result.
func (c *compressedCodec) Marshal(v any) ([]byte, error) {
	raw, err := c.inner.Marshal(v)
	if err != nil {
		return nil, err
	}
	return compressBlock(raw, c.typ)
}

// Unmarshal unframes the data and decodes with the inner codec.
func (c *compressedCodec) Unmarshal(data []byte, v any) error {
	raw, err := decompressBlock(data)
	if err != nil {
		return err
	}
	return c.inner.Unmarshal(raw, v)
}

// ZSTD encoder/decoder pools for efficiency.
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

func compressBlock(data []byte, typ Compression) ([]byte, error) {
	var compressed []byte
	var err error

	switch typ {
	case CompressionLZ4:
		compressed, err = compressBlockLZ4(data)
	case CompressionZSTD:
		compressed = compressBlockZSTD(data)
	case CompressionNone:
		// Framed below as a stored block.
	default:
		return nil, ErrUnknownCompression
	}
	if err != nil {
		return nil, err
	}

	// If compression doesn't help (ratio > 0.9), store verbatim.
	if compressed == nil || float64(len(compressed)) > float64(len(data))*0.9 {
		out := make([]byte, frameHeaderSize+len(data))
		out[0] = byte(CompressionNone)
		binary.LittleEndian.PutUint32(out[1:], uint32(len(data)))
		copy(out[frameHeaderSize:], data)
		return out, nil
	}

	out := make([]byte, frameHeaderSize+len(compressed))
	out[0] = byte(typ)
	binary.LittleEndian.PutUint32(out[1:], uint32(len(data)))
	copy(out[frameHeaderSize:], compressed)
	return out, nil
}

func compressBlockLZ4(data []byte) ([]byte, error) {
	compressed := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil // incompressible
	}
	return compressed[:n], nil
}

func compressBlockZSTD(data []byte) []byte {
	enc := getZstdEncoder()
	defer putZstdEncoder(enc)

	return enc.EncodeAll(data, nil)
}

func decompressBlock(data []byte) ([]byte, error) {
	if len(data) < frameHeaderSize {
		return nil, ErrTruncated
	}

	typ := Compression(data[0])
	uncompressedSize := binary.LittleEndian.Uint32(data[1:])
	body := data[frameHeaderSize:]

	switch typ {
	case CompressionNone:
		if uint32(len(body)) < uncompressedSize {
			return nil, ErrTruncated
		}
		return body[:uncompressedSize], nil

	case CompressionLZ4:
		result := make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(body, result)
		if err != nil {
			return nil, err
		}
		if uint32(n) != uncompressedSize {
			return nil, errors.New("codec: decompressed size mismatch")
		}
		return result, nil

	case CompressionZSTD:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		decoded, err := dec.DecodeAll(body, make([]byte, 0, uncompressedSize))
		if err != nil {
			return nil, err
		}
		if uint32(len(decoded)) != uncompressedSize {
			return nil, errors.New("codec: decompressed size mismatch")
		}
		return decoded, nil

	default:
		return nil, ErrUnknownCompression
	}
}
