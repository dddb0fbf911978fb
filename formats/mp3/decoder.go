// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/waveform/audio"
)

// go-mp3 always emits 16-bit little-endian stereo.
const (
	channels      = 2
	bytesPerFrame = channels * 2
)

// mp3Reader is the part of gomp3.Decoder we use.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
	Length() int64
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	// odd byte held over from the previous Read
	carry    byte
	hasCarry bool
}

func newSource(dec mp3Reader) *source {
	return &source{dec: dec, sampleRate: dec.SampleRate()}
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }

// Frames derives the frame count from the decoded byte length, which
// go-mp3 only knows when the input can seek.
func (s *source) Frames() int64 {
	n := s.dec.Length()
	if n <= 0 {
		return -1
	}
	return n / bytesPerFrame
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * 2
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	for {
		off := 0
		if s.hasCarry {
			s.buf[0] = s.carry
			s.hasCarry = false
			off = 1
		}

		n, err := s.dec.Read(s.buf[off:])
		n += off

		if n%2 == 1 {
			s.carry, s.hasCarry = s.buf[n-1], true
			n--
		}

		// a lone byte was read; fetch its partner
		if n == 0 && err == nil && s.hasCarry {
			continue
		}

		samples := n / 2
		for i := range samples {
			v := int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
			dst[i] = float32(v) / 32768.0
		}

		if samples == 0 && err == nil {
			return 0, io.EOF
		}

		return samples, err
	}
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("decoding mp3: %w", err)
	}

	return newSource(dec), nil
}
