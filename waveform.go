// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/waveform/audio"
	"github.com/ik5/waveform/envelope"
	"github.com/ik5/waveform/formats/aiff"
	"github.com/ik5/waveform/formats/flac"
	"github.com/ik5/waveform/formats/mp3"
	"github.com/ik5/waveform/formats/vorbis"
	"github.com/ik5/waveform/formats/wav"
)

// DefaultRegistry returns a registry with every bundled decoder, keyed by
// the usual file extensions.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("flac", flac.Decoder{})

	return reg
}

// Decode reads the whole of r with the decoder registered for format.
func Decode(reg *audio.Registry, r io.Reader, format string) (*audio.Buffer, error) {
	dec, ok := reg.Get(format)
	if !ok {
		return nil, &audio.FormatError{Format: format}
	}

	return decode(dec, r, format)
}

func decode(dec audio.Decoder, r io.Reader, name string) (*audio.Buffer, error) {
	src, err := dec.Decode(r)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	buf, err := audio.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}

	return buf, nil
}

// FromReader decodes r as format with the default registry and builds a
// full envelope of the result. The decoded audio is returned alongside so
// later range edits can be computed against it.
func FromReader(r io.Reader, format string, opts envelope.Options) (*envelope.Envelope, *audio.Buffer, error) {
	buf, err := Decode(DefaultRegistry(), r, format)
	if err != nil {
		return nil, nil, err
	}

	return build(buf, opts)
}

// FromFile is FromReader with the format taken from the file extension.
func FromFile(path string, opts envelope.Options) (*envelope.Envelope, *audio.Buffer, error) {
	dec, err := DefaultRegistry().ForPath(path)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	buf, err := decode(dec, f, path)
	if err != nil {
		return nil, nil, err
	}

	return build(buf, opts)
}

func build(buf *audio.Buffer, opts envelope.Options) (*envelope.Envelope, *audio.Buffer, error) {
	env, err := envelope.Build(buf, opts)
	if err != nil {
		return nil, nil, err
	}

	return env, buf, nil
}
