// SPDX-License-Identifier: EPL-2.0

// Package waveform turns audio files into waveform envelopes: compact
// (min, max) summaries that a UI can draw at any zoom level without the
// original samples.
//
// The work is split across subpackages:
//
//   - audio holds decoded buffers, channel mixdown, resampling and the
//     decoder registry
//   - formats/* decode WAV, MP3, Ogg Vorbis, AIFF and FLAC
//   - envelope builds envelopes and patches them after edits
//   - session carries the latest envelope between edits
//   - storage saves envelopes, optionally zstd-compressed
//
// This package wires them together for the common case:
//
//	env, buf, err := waveform.FromFile("take.wav", envelope.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//
//	// samples [s, e) were re-recorded in buf
//	env, err = envelope.Apply(env, buf, envelope.NewEnhance(envelope.DefaultOptions(), envelope.Range{Start: s, End: e}))
//
// Decoders are looked up by extension; DefaultRegistry lists what is
// bundled, and callers can register their own on it and use Decode.
package waveform
