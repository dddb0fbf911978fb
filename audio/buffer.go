// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"time"
)

// Buffer is fully decoded audio held as one sample slice per channel.
// All channels must have the same length.
type Buffer struct {
	SampleRate int
	Channels   [][]float32
}

// NumChannels returns the channel count.
func (b *Buffer) NumChannels() int { return len(b.Channels) }

// Len returns the number of samples per channel.
func (b *Buffer) Len() int {
	if len(b.Channels) == 0 {
		return 0
	}
	return len(b.Channels[0])
}

// Duration of the buffer at its sample rate.
func (b *Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(b.Len()) * time.Second / time.Duration(b.SampleRate)
}

// Validate checks the buffer invariants the envelope builder relies on.
func (b *Buffer) Validate() error {
	if b == nil || len(b.Channels) == 0 {
		return ErrNoChannels
	}

	if b.SampleRate <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSampleRate, b.SampleRate)
	}

	n := len(b.Channels[0])
	for c := 1; c < len(b.Channels); c++ {
		if len(b.Channels[c]) != n {
			return fmt.Errorf("%w: channel 0 has %d, channel %d has %d",
				ErrUnequalChannels, n, c, len(b.Channels[c]))
		}
	}

	return nil
}

// ReadAll drains src and de-interleaves it into a Buffer.
// The source is not closed.
func ReadAll(src Source) (*Buffer, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrNoChannels
	}

	capacity := 0
	if fc, ok := src.(FrameCounter); ok {
		if frames := fc.Frames(); frames > 0 {
			capacity = int(frames)
		}
	}

	buf := &Buffer{
		SampleRate: src.SampleRate(),
		Channels:   make([][]float32, channels),
	}
	for c := range buf.Channels {
		buf.Channels[c] = make([]float32, 0, capacity)
	}

	// 4096 frames per read, rounded to whole frames
	tmp := make([]float32, 4096*channels)
	var pending []float32

	for {
		n, err := src.ReadSamples(tmp)
		if n > 0 {
			data := tmp[:n]
			if len(pending) > 0 {
				data = append(pending, data...)
				pending = nil
			}

			frames := len(data) / channels
			for f := range frames {
				base := f * channels
				for c := range channels {
					buf.Channels[c] = append(buf.Channels[c], data[base+c])
				}
			}

			// decoders may split a frame across reads
			if rest := len(data) - frames*channels; rest > 0 {
				pending = append([]float32(nil), data[frames*channels:]...)
			}
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}

		if n == 0 {
			// zero-progress read without EOF; treat as end of stream
			break
		}
	}

	return buf, nil
}
