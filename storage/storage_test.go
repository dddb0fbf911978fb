// SPDX-License-Identifier: EPL-2.0

package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/waveform/audio"
	"github.com/ik5/waveform/envelope"
	"github.com/ik5/waveform/internal/audiotest"
)

func sampleEnvelope(t *testing.T) *envelope.Envelope {
	t.Helper()

	buf := &audio.Buffer{
		SampleRate: 44100,
		Channels:   audiotest.Channels(2, 44100, audiotest.Sine(44100, 440)),
	}

	env, err := envelope.Build(buf, envelope.Options{Scale: 64, AmplitudeScale: 1})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	return env
}

func TestWriteRead(t *testing.T) {
	t.Parallel()

	env := sampleEnvelope(t)

	for _, c := range []Compression{None, Zstd} {
		t.Run(c.String(), func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			if err := Write(&out, env, c); err != nil {
				t.Fatalf("Write() error = %v", err)
			}

			compressed := bytes.HasPrefix(out.Bytes(), zstdMagic)
			if compressed != (c == Zstd) {
				t.Errorf("zstd magic present = %v for %v", compressed, c)
			}

			got, err := Read(&out)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !bytes.Equal(got.Bytes(), env.Bytes()) {
				t.Error("Read() returned different bytes")
			}
		})
	}
}

func TestWrite_ZstdShrinks(t *testing.T) {
	t.Parallel()

	// a silent hour is all zero entries
	env := envelope.New(44100, 512, 44100*3600/512)

	var out bytes.Buffer
	if err := Write(&out, env, Zstd); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if out.Len() >= len(env.Bytes())/10 {
		t.Errorf("compressed %d bytes into %d", len(env.Bytes()), out.Len())
	}
}

func TestWrite_UnknownCompression(t *testing.T) {
	t.Parallel()

	if err := Write(&bytes.Buffer{}, sampleEnvelope(t), Compression(7)); err == nil {
		t.Error("Write() error = nil, want error")
	}
}

func TestRead_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrEmptyFile},
		{"short", []byte{1, 0, 0, 0}, envelope.ErrCorrupt},
		{"truncated body", sampleEnvelope(t).Bytes()[:30], envelope.ErrCorrupt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Read(bytes.NewReader(tt.data)); !errors.Is(err, tt.want) {
				t.Errorf("Read() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRead_BrokenZstd(t *testing.T) {
	t.Parallel()

	data := append(bytes.Clone(zstdMagic), 0xff, 0xff, 0xff)
	if _, err := Read(bytes.NewReader(data)); err == nil {
		t.Error("Read() error = nil, want error")
	}
}

func TestSaveLoadFile(t *testing.T) {
	t.Parallel()

	env := sampleEnvelope(t)
	dir := t.TempDir()

	for _, c := range []Compression{None, Zstd} {
		path := filepath.Join(dir, "take."+c.String()+".dat")

		if err := SaveFile(path, env, c); err != nil {
			t.Fatalf("SaveFile(%v) error = %v", c, err)
		}

		got, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile(%v) error = %v", c, err)
		}
		if got.Len() != env.Len() || got.Scale() != 64 || got.SampleRate() != 44100 {
			t.Errorf("LoadFile(%v) header = %+v", c, got.Header())
		}
	}
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.dat"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFile() error = %v, want ErrNotExist", err)
	}
}

func TestCompression_String(t *testing.T) {
	t.Parallel()

	if got := Compression(9).String(); got != "Compression(9)" {
		t.Errorf("String() = %q", got)
	}
}

func BenchmarkWrite_Zstd(b *testing.B) {
	env := envelope.New(44100, 256, 44100*600/256)

	b.ReportAllocs()
	for b.Loop() {
		if err := Write(&bytes.Buffer{}, env, Zstd); err != nil {
			b.Fatal(err)
		}
	}
}
