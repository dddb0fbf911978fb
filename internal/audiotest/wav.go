// SPDX-License-Identifier: EPL-2.0

package audiotest

import "encoding/binary"

// Chunk is an extra RIFF chunk written before the data chunk.
type Chunk struct {
	ID   string
	Data []byte
}

// WAV returns a RIFF/WAVE stream holding samples as little-endian integer
// PCM at bitDepth. samples are interleaved and already in range for the
// depth. extra chunks land between the fmt and data chunks. Odd chunks get
// the RIFF pad byte.
func WAV(sampleRate, channels, bitDepth int, samples []int32, extra ...Chunk) []byte {
	return wavWithFormat(1, sampleRate, channels, bitDepth, samples, extra...)
}

// WAVFormat is WAV with an explicit fmt audio format tag, for exercising
// rejection of non-PCM streams.
func WAVFormat(format uint16, sampleRate, channels, bitDepth int, samples []int32) []byte {
	return wavWithFormat(format, sampleRate, channels, bitDepth, samples)
}

func wavWithFormat(format uint16, sampleRate, channels, bitDepth int, samples []int32, extra ...Chunk) []byte {
	width := bitDepth / 8
	dataSize := len(samples) * width
	pad := dataSize % 2

	extraSize := 0
	for _, c := range extra {
		extraSize += 8 + len(c.Data) + len(c.Data)%2
	}

	out := make([]byte, 0, 44+extraSize+dataSize+pad)
	out = append(out, "RIFF"...)
	out = binary.LittleEndian.AppendUint32(out, uint32(36+extraSize+dataSize+pad))
	out = append(out, "WAVE"...)

	out = append(out, "fmt "...)
	out = binary.LittleEndian.AppendUint32(out, 16)
	out = binary.LittleEndian.AppendUint16(out, format)
	out = binary.LittleEndian.AppendUint16(out, uint16(channels))
	out = binary.LittleEndian.AppendUint32(out, uint32(sampleRate))
	out = binary.LittleEndian.AppendUint32(out, uint32(sampleRate*channels*width))
	out = binary.LittleEndian.AppendUint16(out, uint16(channels*width))
	out = binary.LittleEndian.AppendUint16(out, uint16(bitDepth))

	for _, c := range extra {
		out = append(out, c.ID...)
		out = binary.LittleEndian.AppendUint32(out, uint32(len(c.Data)))
		out = append(out, c.Data...)
		if len(c.Data)%2 == 1 {
			out = append(out, 0)
		}
	}

	out = append(out, "data"...)
	out = binary.LittleEndian.AppendUint32(out, uint32(dataSize))

	for _, s := range samples {
		v := uint32(s)
		for b := range width {
			out = append(out, byte(v>>(8*b)))
		}
	}
	if pad == 1 {
		out = append(out, 0)
	}

	return out
}
