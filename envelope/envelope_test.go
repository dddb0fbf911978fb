// SPDX-License-Identifier: EPL-2.0

package envelope

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

func TestNew_Header(t *testing.T) {
	t.Parallel()

	env := New(44100, 512, 3)

	if got := len(env.Bytes()); got != HeaderSize+6 {
		t.Fatalf("len(Bytes()) = %d, want %d", got, HeaderSize+6)
	}

	want := Header{Version: 1, Flags: 1, SampleRate: 44100, Scale: 512, Length: 3}
	if got := env.Header(); got != want {
		t.Errorf("Header() = %+v, want %+v", got, want)
	}

	wantPrefix := []byte{
		1, 0, 0, 0,
		1, 0, 0, 0,
		0x44, 0xac, 0, 0,
		0, 2, 0, 0,
		3, 0, 0, 0,
	}
	if !bytes.Equal(env.Bytes()[:HeaderSize], wantPrefix) {
		t.Errorf("header bytes = % x, want % x", env.Bytes()[:HeaderSize], wantPrefix)
	}
}

func TestEnvelope_Entries(t *testing.T) {
	t.Parallel()

	env := New(8000, 4, 2)
	env.SetEntry(0, -128, 127)
	env.SetEntry(1, -3, 5)

	if lo, hi := env.Entry(0); lo != -128 || hi != 127 {
		t.Errorf("Entry(0) = (%d, %d), want (-128, 127)", lo, hi)
	}
	if env.Min(1) != -3 || env.Max(1) != 5 {
		t.Errorf("Min(1), Max(1) = %d, %d; want -3, 5", env.Min(1), env.Max(1))
	}
	if !bytes.Equal(env.Bytes()[HeaderSize:], []byte{0x80, 0x7f, 0xfd, 0x05}) {
		t.Errorf("body = % x", env.Bytes()[HeaderSize:])
	}
}

func TestEnvelope_Clone(t *testing.T) {
	t.Parallel()

	env := New(8000, 4, 1)
	clone := env.Clone()
	clone.SetEntry(0, 1, 2)

	if env.Max(0) != 0 {
		t.Error("Clone() shares storage with the original")
	}
}

func TestEnvelope_Duration(t *testing.T) {
	t.Parallel()

	env := New(8000, 400, 20)
	if got := env.Duration(); got != time.Second {
		t.Errorf("Duration() = %v, want 1s", got)
	}
}

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	src := New(22050, 256, 4)
	src.SetEntry(2, -7, 9)

	env, err := Parse(src.Bytes())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if env.SampleRate() != 22050 || env.Scale() != 256 || env.Len() != 4 {
		t.Errorf("Parse() = rate %d, scale %d, len %d; want 22050, 256, 4",
			env.SampleRate(), env.Scale(), env.Len())
	}
	if lo, hi := env.Entry(2); lo != -7 || hi != 9 {
		t.Errorf("Entry(2) = (%d, %d), want (-7, 9)", lo, hi)
	}
}

func TestParse_Corrupt(t *testing.T) {
	t.Parallel()

	valid := New(8000, 4, 2).Bytes()

	withHeader := func(h Header, bodyLen int) []byte {
		b := make([]byte, HeaderSize+bodyLen)
		h.Encode(b)
		return b
	}

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "short header", data: valid[:HeaderSize-1]},
		{name: "truncated body", data: valid[:len(valid)-1]},
		{name: "trailing bytes", data: append(append([]byte(nil), valid...), 0, 0)},
		{name: "bad version", data: withHeader(Header{Version: 2, Flags: 1, SampleRate: 8000, Scale: 4}, 0)},
		{name: "16-bit flag", data: withHeader(Header{Version: 1, Flags: 0, SampleRate: 8000, Scale: 4}, 0)},
		{name: "zero scale", data: withHeader(Header{Version: 1, Flags: 1, SampleRate: 8000}, 0)},
		{name: "negative length", data: withHeader(Header{Version: 1, Flags: 1, SampleRate: 8000, Scale: 4, Length: -1}, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Parse(tt.data); !errors.Is(err, ErrCorrupt) {
				t.Errorf("Parse() error = %v, want ErrCorrupt", err)
			}
		})
	}
}
