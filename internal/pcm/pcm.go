// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts the integer PCM readers of the go-audio decoders to
// audio.Source.
package pcm

import (
	"io"

	goaudio "github.com/go-audio/audio"
)

// Reader is the part of the go-audio wav and aiff decoders we read from.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// FullScale returns the magnitude of the most negative signed sample at
// bitDepth, the divisor that maps samples into [-1, 1). ok is false for
// depths go-audio does not decode as signed integers.
func FullScale(bitDepth int) (scale float32, ok bool) {
	switch bitDepth {
	case 16:
		return 1 << 15, true
	case 24:
		return 1 << 23, true
	case 32:
		return 1 << 31, true
	default:
		return 0, false
	}
}

// Source is an audio.Source over a Reader of signed integer samples.
type Source struct {
	r          Reader
	sampleRate int
	channels   int
	frames     int64
	scale      float32
	ints       *goaudio.IntBuffer
}

// NewSource wraps r. frames is the per-channel length when known and -1
// otherwise. bitDepth must be accepted by FullScale.
func NewSource(r Reader, sampleRate, channels, bitDepth int, frames int64) *Source {
	scale, ok := FullScale(bitDepth)
	if !ok {
		scale = 1 << 15
	}

	return &Source{
		r:          r,
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		scale:      scale,
	}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Frames() int64   { return s.frames }
func (s *Source) Close() error    { return nil }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.ints == nil || cap(s.ints.Data) < len(dst) {
		s.ints = &goaudio.IntBuffer{
			Data: make([]int, len(dst)),
			Format: &goaudio.Format{
				NumChannels: s.channels,
				SampleRate:  s.sampleRate,
			},
		}
	} else {
		s.ints.Data = s.ints.Data[:len(dst)]
	}

	n, err := s.r.PCMBuffer(s.ints)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	for i, v := range s.ints.Data[:n] {
		dst[i] = float32(v) / s.scale
	}

	return n, err
}
