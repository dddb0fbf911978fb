// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC streams with github.com/mewkiz/flac.
//
// Frames are decoded lazily as ReadSamples drains them, and samples are
// scaled by the STREAMINFO bit depth into [-1, 1). The total sample count
// from STREAMINFO is exposed through audio.FrameCounter when the encoder
// recorded it.
package flac
