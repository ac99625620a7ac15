// Package codec implements the compression framing applied to every chunk
// transfer: zlib over little-endian int32 elements, with explicit original
// and compressed byte lengths so the receiver can size and validate its
// decode buffer without trusting the transport's byte count.
package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	pb "crunch/crunch"
)

// ErrCorruptPayload reports a payload that cannot be restored to its declared
// original form: malformed stream, checksum mismatch, or a length that does
// not match the decompressed output.
var ErrCorruptPayload = errors.New("corrupt payload")

// Encode compresses raw with zlib at the default level.
func Encode(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		zw.Close()
		return nil, fmt.Errorf("compress: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode reconstructs the exact original bytes from a compressed stream,
// given the known uncompressed length. The stream must inflate to exactly
// originalLength bytes.
func Decode(compressed []byte, originalLength int) ([]byte, error) {
	if originalLength < 0 {
		return nil, fmt.Errorf("%w: negative original length %d", ErrCorruptPayload, originalLength)
	}
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptPayload, err)
	}
	defer zr.Close()

	out := make([]byte, originalLength)
	if _, err := io.ReadFull(zr, out); err != nil {
		return nil, fmt.Errorf("%w: stream shorter than declared length %d: %v", ErrCorruptPayload, originalLength, err)
	}
	var extra [1]byte
	if _, err := io.ReadFull(zr, extra[:]); err != io.EOF {
		return nil, fmt.Errorf("%w: stream longer than declared length %d", ErrCorruptPayload, originalLength)
	}
	return out, nil
}

// Pack frames a chunk's elements into a WireChunk ready for transport.
func Pack(chunkID uint32, elems []int32) (*pb.WireChunk, error) {
	raw := MarshalElems(elems)
	payload, err := Encode(raw)
	if err != nil {
		return nil, err
	}
	return &pb.WireChunk{
		ChunkId:              chunkID,
		OriginalByteLength:   uint32(len(raw)),
		CompressedByteLength: uint32(len(payload)),
		Payload:              payload,
	}, nil
}

// Unpack validates a WireChunk's framing and restores its elements.
func Unpack(msg *pb.WireChunk) ([]int32, error) {
	if msg == nil {
		return nil, fmt.Errorf("%w: missing wire chunk", ErrCorruptPayload)
	}
	if int(msg.GetCompressedByteLength()) != len(msg.GetPayload()) {
		return nil, fmt.Errorf("%w: declared compressed length %d, payload is %d bytes",
			ErrCorruptPayload, msg.GetCompressedByteLength(), len(msg.GetPayload()))
	}
	raw, err := Decode(msg.GetPayload(), int(msg.GetOriginalByteLength()))
	if err != nil {
		return nil, err
	}
	return UnmarshalElems(raw)
}

// MarshalElems lays elems out as little-endian int32s.
func MarshalElems(elems []int32) []byte {
	raw := make([]byte, 4*len(elems))
	for i, v := range elems {
		binary.LittleEndian.PutUint32(raw[4*i:], uint32(v))
	}
	return raw
}

// UnmarshalElems is the inverse of MarshalElems.
func UnmarshalElems(raw []byte) ([]int32, error) {
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of elements", ErrCorruptPayload, len(raw))
	}
	elems := make([]int32, len(raw)/4)
	for i := range elems {
		elems[i] = int32(binary.LittleEndian.Uint32(raw[4*i:]))
	}
	return elems, nil
}
