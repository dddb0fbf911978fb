// SPDX-License-Identifier: EPL-2.0

package envelope

import (
	"encoding/binary"
	"fmt"
)

const (
	// Version is the only format version written and accepted.
	Version = 1
	// Flag8Bit marks a body of int8 entries.
	Flag8Bit = 1
)

// Header is the fixed 20-byte envelope header.
//
//	offset  size  field
//	0       4     version (int32, 1)
//	4       4     flags (uint32, 1 = 8-bit entries)
//	8       4     sample rate (int32)
//	12      4     scale, samples per entry (int32)
//	16      4     entry count (int32)
//
// All fields are little-endian.
type Header struct {
	Version    int32
	Flags      uint32
	SampleRate int32
	Scale      int32
	Length     int32
}

// Encode writes h into the first HeaderSize bytes of dst.
func (h Header) Encode(dst []byte) {
	_ = dst[HeaderSize-1]

	binary.LittleEndian.PutUint32(dst[0:4], uint32(h.Version))
	binary.LittleEndian.PutUint32(dst[4:8], h.Flags)
	binary.LittleEndian.PutUint32(dst[8:12], uint32(h.SampleRate))
	binary.LittleEndian.PutUint32(dst[12:16], uint32(h.Scale))
	binary.LittleEndian.PutUint32(dst[16:20], uint32(h.Length))
}

// DecodeHeader reads a header from b without validating it.
func DecodeHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes is shorter than the %d byte header",
			ErrCorrupt, len(b), HeaderSize)
	}

	return Header{
		Version:    int32(binary.LittleEndian.Uint32(b[0:4])),
		Flags:      binary.LittleEndian.Uint32(b[4:8]),
		SampleRate: int32(binary.LittleEndian.Uint32(b[8:12])),
		Scale:      int32(binary.LittleEndian.Uint32(b[12:16])),
		Length:     int32(binary.LittleEndian.Uint32(b[16:20])),
	}, nil
}

// putLength rewrites only the entry count field.
func putLength(b []byte, n int) {
	binary.LittleEndian.PutUint32(b[16:20], uint32(int32(n)))
}
