// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed AIFF files with github.com/go-audio/aiff.
//
// 16, 24 and 32-bit big-endian PCM is accepted; other depths return
// ErrUnsupportedBitDepth. AIFF-C compressed streams are not supported.
// The source reports its frame count from the COMM chunk.
//
//	src, err := aiff.Decoder{}.Decode(f)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // try another decoder
//	}
package aiff
