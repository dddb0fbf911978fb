// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds fixtures shared by the package tests. It does not
// import the audio package so that audio's own tests can use it.
package audiotest

import (
	"io"
	"math"
)

// Waveform returns the value of a sample on a channel.
type Waveform func(sample int, channel int) float32

// Silence is all zeros.
func Silence(int, int) float32 { return 0 }

// Constant holds value on every channel.
func Constant(value float32) Waveform {
	return func(int, int) float32 { return value }
}

// Sine is a tone at frequency Hz for the given sample rate.
func Sine(sampleRate int, frequency float64) Waveform {
	return func(sample int, _ int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	}
}

// Alternating flips between value and -value on every sample.
func Alternating(value float32) Waveform {
	return func(sample int, _ int) float32 {
		if sample%2 == 0 {
			return value
		}
		return -value
	}
}

// Channels renders n samples of waveform into one slice per channel.
func Channels(channels, n int, waveform Waveform) [][]float32 {
	out := make([][]float32, channels)
	for c := range out {
		out[c] = make([]float32, n)
		for i := range n {
			out[c][i] = waveform(i, c)
		}
	}
	return out
}

// MockSource streams a waveform as interleaved samples.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // per channel
	generated    int // interleaved values
	waveform     Waveform

	// MaxRead caps the values returned per ReadSamples call when > 0.
	// A cap that is not a multiple of channels splits frames across reads.
	MaxRead int
	// Err is returned once the stream is exhausted instead of io.EOF.
	Err error
}

// NewMockSource creates a mock source of totalSamples frames.
func NewMockSource(sampleRate, channels, totalSamples int, waveform Waveform) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Close() error    { return nil }
func (m *MockSource) Frames() int64   { return int64(m.totalSamples) }

// Reset rewinds the source.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	total := m.totalSamples * m.channels
	if m.generated >= total {
		if m.Err != nil {
			return 0, m.Err
		}
		return 0, io.EOF
	}

	want := len(dst)
	if m.MaxRead > 0 && want > m.MaxRead {
		want = m.MaxRead
	}
	if rest := total - m.generated; want > rest {
		want = rest
	}

	for k := range want {
		pos := m.generated + k
		dst[k] = m.waveform(pos/m.channels, pos%m.channels)
	}
	m.generated += want

	if m.generated >= total && m.Err == nil {
		return want, io.EOF
	}

	return want, nil
}
