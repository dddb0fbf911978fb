// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"math/bits"
)

// AIFF returns a FORM/AIFF stream holding samples as big-endian integer
// PCM at bitDepth. sampleRate must be a positive integer rate.
func AIFF(sampleRate, channels, bitDepth int, samples []int32) []byte {
	width := bitDepth / 8
	dataSize := len(samples) * width
	pad := dataSize % 2
	frames := len(samples) / channels

	out := make([]byte, 0, 54+dataSize+pad)
	out = append(out, "FORM"...)
	out = binary.BigEndian.AppendUint32(out, uint32(4+26+16+dataSize+pad))
	out = append(out, "AIFF"...)

	out = append(out, "COMM"...)
	out = binary.BigEndian.AppendUint32(out, 18)
	out = binary.BigEndian.AppendUint16(out, uint16(channels))
	out = binary.BigEndian.AppendUint32(out, uint32(frames))
	out = binary.BigEndian.AppendUint16(out, uint16(bitDepth))
	out = append(out, extended(sampleRate)...)

	out = append(out, "SSND"...)
	out = binary.BigEndian.AppendUint32(out, uint32(8+dataSize))
	out = binary.BigEndian.AppendUint32(out, 0) // offset
	out = binary.BigEndian.AppendUint32(out, 0) // block size

	for _, s := range samples {
		v := uint32(s)
		for b := width - 1; b >= 0; b-- {
			out = append(out, byte(v>>(8*b)))
		}
	}
	if pad == 1 {
		out = append(out, 0)
	}

	return out
}

// extended encodes an integer rate as an 80-bit IEEE 754 extended float.
func extended(rate int) []byte {
	e := bits.Len64(uint64(rate)) - 1

	out := binary.BigEndian.AppendUint16(nil, uint16(16383+e))
	return binary.BigEndian.AppendUint64(out, uint64(rate)<<(63-e))
}
