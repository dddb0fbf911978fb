// SPDX-License-Identifier: EPL-2.0

// Package audio holds decoded audio and the pieces that produce it.
//
// Decoders in the formats subpackages return a streaming Source. ReadAll
// drains a Source into a Buffer, which keeps one []float32 per channel so
// that sample i of every channel can be addressed directly:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	buf, err := audio.ReadAll(src)
//
// # Buffer
//
// A Buffer is what the envelope builder consumes. All channels must have
// the same length; Validate reports ErrUnequalChannels otherwise. Mix
// returns the mono mixdown of one sample position (sum of channels divided
// by the channel count).
//
// # Resampling
//
// Resample converts a whole Buffer to another rate with Catmull-Rom
// interpolation. Downsampling runs a one-pole low-pass first.
//
//	out, err := audio.Resample(buf, 8000)
//
// # Format Registry
//
// The registry maps format keys to decoders, case-insensitively:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.ForPath("take1.WAV")
//
// # Sample Format
//
// Samples are float32, nominally in [-1.0, 1.0]. Clipped material may
// exceed that range; nothing in this package clamps it.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available. ReadAll treats
// io.EOF as the end of the stream and wraps any other error.
package audio
