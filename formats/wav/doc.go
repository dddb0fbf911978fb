// SPDX-License-Identifier: EPL-2.0

// Package wav decodes integer PCM WAV files into an audio.Source.
//
// Parsing is done by github.com/go-audio/wav, which walks the RIFF chunk
// list instead of assuming a canonical 44-byte header. 16, 24 and 32-bit
// PCM are accepted at any rate and channel count. Samples come out as
// float32 in [-1, 1).
//
//	f, _ := os.Open("take.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	if errors.Is(err, wav.ErrUnsupportedBitDepth) {
//	    // 8-bit or float data
//	}
//
// The source implements audio.FrameCounter from the data chunk size, so
// audio.ReadAll allocates once.
package wav
