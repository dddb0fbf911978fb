// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/ik5/waveform/audio"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

// frameParser is the part of flac.Stream we read frames from.
type frameParser interface {
	ParseNext() (*frame.Frame, error)
	Close() error
}

type source struct {
	stream     frameParser
	sampleRate int
	channels   int
	frames     int64
	scale      float32

	// current FLAC frame and how many of its samples were handed out
	cur [][]int32
	pos int
}

func newSource(stream frameParser, sampleRate, channels, bitDepth int, frames int64) *source {
	return &source{
		stream:     stream,
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		scale:      float32(int64(1) << (bitDepth - 1)),
	}
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Frames() int64   { return s.frames }
func (s *source) Close() error    { return s.stream.Close() }

func (s *source) ReadSamples(dst []float32) (int, error) {
	n := 0

	for n+s.channels <= len(dst) {
		if s.cur == nil || s.pos >= len(s.cur[0]) {
			if err := s.next(); err != nil {
				if n > 0 && err == io.EOF {
					return n, nil
				}
				return n, err
			}
			continue
		}

		for ch := range s.channels {
			dst[n+ch] = float32(s.cur[ch][s.pos]) / s.scale
		}
		s.pos++
		n += s.channels
	}

	return n, nil
}

func (s *source) next() error {
	f, err := s.stream.ParseNext()
	if err != nil {
		return err
	}

	if len(f.Subframes) != s.channels {
		return fmt.Errorf("%w: got %d subframes, want %d", ErrChannelMismatch, len(f.Subframes), s.channels)
	}

	if s.cur == nil {
		s.cur = make([][]int32, s.channels)
	}
	for ch, sub := range f.Subframes {
		s.cur[ch] = sub.Samples
	}
	s.pos = 0

	return nil
}

// Decoder reads FLAC streams with github.com/mewkiz/flac.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := stream.Info
	if info == nil || info.NChannels == 0 || info.SampleRate == 0 {
		_ = stream.Close()
		return nil, ErrNotFlacFile
	}

	frames := int64(-1)
	if info.NSamples > 0 {
		frames = int64(info.NSamples)
	}

	return newSource(stream, int(info.SampleRate), int(info.NChannels), int(info.BitsPerSample), frames), nil
}
