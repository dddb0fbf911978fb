// SPDX-License-Identifier: EPL-2.0

// Package envelope builds and edits waveform envelopes: compact min/max
// summaries of decoded audio used to draw a waveform without keeping the
// samples around.
//
// # Format
//
// An envelope is a 20-byte little-endian header followed by one 2-byte
// entry per window of Scale input samples:
//
//	offset  size          field
//	0       4             version (1)
//	4       4             flags (1 = 8-bit entries)
//	8       4             sample rate
//	12      4             scale (samples per entry)
//	16      4             entry count
//	20      2*count       (min int8, max int8) pairs
//
// The entry count always equals the number of body entries; Parse
// returns ErrCorrupt for any buffer where it does not.
//
// # Quantization
//
// For each sample position the channels are summed and divided by the
// channel count, multiplied by the amplitude scale and by 127, floored,
// and clamped into [-128, 127]. The clamped value then updates the min and
// max of its window. A final partial window still yields an entry.
//
// # Operations
//
// Build computes a new envelope from a whole buffer. Enhance overwrites the
// entries under a sample range after audio there changed without changing
// length. Delete cuts the entries under a removed sample range and rewrites
// the entry count. Apply dispatches an Operation and never mutates the
// envelope it is given:
//
//	env, err := envelope.Apply(nil, buf, envelope.NewFullBuild(opts))
//	env, err = envelope.Apply(env, edited, envelope.NewEnhance(opts, envelope.Range{Start: s, End: e}))
//
// Range edits without a previous envelope fail with ErrPreconditionFailed.
// Bad scales, ranges and buffers fail with ErrInvalidArgument.
package envelope
