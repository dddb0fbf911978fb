// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ik5/waveform/utils"

// Resample converts buf to dstRate with Catmull-Rom interpolation, channel
// by channel. Edge samples are repeated where the spline needs neighbours
// outside the buffer. When downsampling, a one-pole low-pass runs over the
// input first to take the edge off aliasing.
//
// A buffer already at dstRate is returned as is.
func Resample(buf *Buffer, dstRate int) (*Buffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	if dstRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if dstRate == buf.SampleRate {
		return buf, nil
	}

	ratio := float64(buf.SampleRate) / float64(dstRate)
	n := buf.Len()
	// ceil(n * dstRate / srcRate) without float rounding
	outLen := (n*dstRate + buf.SampleRate - 1) / buf.SampleRate

	out := &Buffer{
		SampleRate: dstRate,
		Channels:   make([][]float32, len(buf.Channels)),
	}

	for c, in := range buf.Channels {
		if ratio > 1 {
			in = lowPass(in, 0.5)
		}
		out.Channels[c] = resampleChannel(in, ratio, outLen)
	}

	return out, nil
}

func resampleChannel(in []float32, ratio float64, outLen int) []float32 {
	out := make([]float32, outLen)
	if len(in) == 0 {
		return out
	}

	last := len(in) - 1
	at := func(i int) float32 {
		if i < 0 {
			return in[0]
		}
		if i > last {
			return in[last]
		}
		return in[i]
	}

	for j := range out {
		pos := float64(j) * ratio
		i := int(pos)
		x := float32(pos - float64(i))
		out[j] = utils.CatmullRom(at(i-1), at(i), at(i+1), at(i+2), x)
	}

	return out
}

// lowPass is y[n] = alpha*x[n] + (1-alpha)*y[n-1], seeded with x[0].
func lowPass(in []float32, alpha float32) []float32 {
	out := make([]float32, len(in))
	if len(in) == 0 {
		return out
	}

	state := in[0]
	for i, x := range in {
		state = alpha*x + (1-alpha)*state
		out[i] = state
	}

	return out
}
