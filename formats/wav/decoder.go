// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/waveform/audio"
	"github.com/ik5/waveform/internal/pcm"
)

// formatPCM is the fmt chunk tag for integer PCM.
const formatPCM = 1

// Decoder reads integer PCM WAV streams through go-audio/wav. Unlike a
// fixed 44-byte header parser it walks the RIFF chunks, so LIST, fact and
// other chunks before the audio data are skipped.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio needs to seek over chunks
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	if dec.NumChans == 0 {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM {
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedWavFormat, dec.WavAudioFormat)
	}

	bitDepth := int(dec.BitDepth)
	if _, ok := pcm.FullScale(bitDepth); !ok {
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, bitDepth)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: no data chunk: %w", ErrNotWavFile, err)
	}

	channels := int(dec.NumChans)
	frames := dec.PCMLen() / int64(channels*bitDepth/8)

	return pcm.NewSource(dec, int(dec.SampleRate), channels, bitDepth, frames), nil
}
