// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/ik5/waveform/audio"
	"github.com/ik5/waveform/internal/pcm"
)

// Decoder reads uncompressed AIFF through go-audio/aiff.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAiffFile, err)
	}
	if dec.NumChans == 0 || dec.SampleRate <= 0 {
		return nil, ErrNotAiffFile
	}

	bitDepth := int(dec.BitDepth)
	if _, ok := pcm.FullScale(bitDepth); !ok {
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, bitDepth)
	}

	return pcm.NewSource(dec, dec.SampleRate, int(dec.NumChans), bitDepth, int64(dec.NumSampleFrames)), nil
}
