// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile is returned when the stream has no RIFF/WAVE fmt chunk.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedWavFormat is returned for fmt tags other than integer PCM.
	ErrUnsupportedWavFormat = errors.New("unsupported WAV format")

	// ErrUnsupportedBitDepth is returned for PCM depths other than 16, 24 and 32.
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")
)
