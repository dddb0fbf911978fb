// SPDX-License-Identifier: EPL-2.0

package envelope

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ik5/waveform/audio"
)

// rampEnvelope has n entries where entry i is (-i, i).
func rampEnvelope(scale, n int) *Envelope {
	env := New(8000, scale, n)
	for i := range n {
		env.SetEntry(i, int8(-i), int8(i))
	}
	return env
}

func TestDelete_Aligned(t *testing.T) {
	t.Parallel()

	env := rampEnvelope(10, 10)
	before := append([]byte(nil), env.Bytes()...)

	out, err := Delete(env, Options{Scale: 10, AmplitudeScale: 1}, Range{Start: 20, End: 50})
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if out.Len() != 7 || out.Header().Length != 7 {
		t.Fatalf("Delete() Len() = %d, header length %d; want 7, 7", out.Len(), out.Header().Length)
	}
	if len(out.Bytes()) != HeaderSize+14 {
		t.Errorf("len(Bytes()) = %d, want %d", len(out.Bytes()), HeaderSize+14)
	}

	wantMax := []int8{0, 1, 5, 6, 7, 8, 9}
	for i, want := range wantMax {
		if lo, hi := out.Entry(i); hi != want || lo != -want {
			t.Errorf("entry %d = (%d, %d), want (%d, %d)", i, lo, hi, -want, want)
		}
	}

	if !bytes.Equal(env.Bytes(), before) {
		t.Error("Delete() modified its input")
	}
	if _, err := Parse(out.Bytes()); err != nil {
		t.Errorf("Parse(Delete()) error = %v", err)
	}
}

func TestDelete_Cases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		r       Range
		wantMax []int8
	}{
		{name: "unaligned rounds both ends up", r: Range{Start: 25, End: 47}, wantMax: []int8{0, 1, 2, 5, 6, 7, 8, 9}},
		{name: "everything", r: Range{Start: 0, End: 100}, wantMax: []int8{}},
		{name: "head", r: Range{Start: 0, End: 30}, wantMax: []int8{3, 4, 5, 6, 7, 8, 9}},
		{name: "tail past the end", r: Range{Start: 90, End: 500}, wantMax: []int8{0, 1, 2, 3, 4, 5, 6, 7, 8}},
		{name: "empty range", r: Range{Start: 40, End: 40}, wantMax: []int8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{name: "inside one window", r: Range{Start: 41, End: 49}, wantMax: []int8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := Delete(rampEnvelope(10, 10), Options{Scale: 10, AmplitudeScale: 1}, tt.r)
			if err != nil {
				t.Fatalf("Delete() error = %v", err)
			}

			if out.Len() != len(tt.wantMax) || int(out.Header().Length) != len(tt.wantMax) {
				t.Fatalf("Delete() Len() = %d, header %d; want %d", out.Len(), out.Header().Length, len(tt.wantMax))
			}
			for i, want := range tt.wantMax {
				if out.Max(i) != want {
					t.Errorf("entry %d max = %d, want %d", i, out.Max(i), want)
				}
			}
		})
	}
}

// TestDelete_ShrinksConsistently checks that the header always matches the
// body and that the entry count tracks EntryCount(N - deleted, S) to within
// the one entry that partial windows at the splice points can account for.
func TestDelete_ShrinksConsistently(t *testing.T) {
	t.Parallel()

	for _, scale := range []int{1, 2, 3, 7, 16} {
		const n = 200
		opts := Options{Scale: scale, AmplitudeScale: 1}
		buf := newBuffer(8000, 1, n, func(sample, _ int) float32 { return float32(sample%13) / 13 })

		env, err := Build(buf, opts)
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}

		for start := 0; start < n; start += 9 {
			for end := start; end <= n; end += 17 {
				out, err := Delete(env, opts, Range{Start: start, End: end})
				if err != nil {
					t.Fatalf("Delete(%d, %d) error = %v", start, end, err)
				}

				if _, err := Parse(out.Bytes()); err != nil {
					t.Fatalf("scale %d Delete(%d, %d) produced a corrupt envelope: %v", scale, start, end, err)
				}

				want, _ := EntryCount(n-(end-start), scale)
				if diff := out.Len() - want; diff < -1 || diff > 1 {
					t.Fatalf("scale %d Delete(%d, %d) Len() = %d, want %d±1", scale, start, end, out.Len(), want)
				}
			}
		}
	}
}

func TestDelete_Errors(t *testing.T) {
	t.Parallel()

	opts := Options{Scale: 10, AmplitudeScale: 1}

	tests := []struct {
		name    string
		env     *Envelope
		opts    Options
		r       Range
		wantErr error
	}{
		{name: "no previous envelope", env: nil, opts: opts, r: Range{0, 10}, wantErr: ErrPreconditionFailed},
		{name: "end before start", env: rampEnvelope(10, 10), opts: opts, r: Range{20, 10}, wantErr: ErrInvalidArgument},
		{name: "negative start", env: rampEnvelope(10, 10), opts: opts, r: Range{-5, 10}, wantErr: ErrInvalidArgument},
		{name: "zero scale", env: rampEnvelope(10, 10), opts: Options{AmplitudeScale: 1}, r: Range{0, 10}, wantErr: ErrInvalidArgument},
		{name: "scale mismatch", env: rampEnvelope(10, 10), opts: Options{Scale: 4, AmplitudeScale: 1}, r: Range{0, 10}, wantErr: ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := Delete(tt.env, tt.opts, tt.r)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Delete() error = %v, want %v", err, tt.wantErr)
			}
			if out != nil {
				t.Error("Delete() returned an envelope alongside an error")
			}
		})
	}
}

func TestDelete_ThenEnhance(t *testing.T) {
	t.Parallel()

	opts := Options{Scale: 4, AmplitudeScale: 1}
	buf := newBuffer(8000, 1, 40, func(sample, _ int) float32 {
		if sample < 20 {
			return 0.5
		}
		return -0.5
	})

	env, _ := Build(buf, opts)

	// drop samples [8, 16) from both the audio and the envelope
	shortened := &audio.Buffer{SampleRate: 8000, Channels: [][]float32{
		append(append([]float32(nil), buf.Channels[0][:8]...), buf.Channels[0][16:]...),
	}}

	cut, err := Delete(env, opts, Range{Start: 8, End: 16})
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	rebuilt, _ := Build(shortened, opts)
	if !bytes.Equal(cut.Bytes(), rebuilt.Bytes()) {
		t.Fatalf("aligned Delete() differs from a rebuild of the shortened audio")
	}

	if err := Enhance(cut, shortened, opts, Range{Start: 0, End: shortened.Len()}); err != nil {
		t.Fatalf("Enhance() after Delete() error = %v", err)
	}
	if !bytes.Equal(cut.Bytes(), rebuilt.Bytes()) {
		t.Error("full-range Enhance() changed an already consistent envelope")
	}
}
