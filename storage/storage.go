// SPDX-License-Identifier: EPL-2.0

// Package storage persists envelopes as raw binary or zstd-compressed files.
// Read detects the compression from the zstd frame magic, so callers never
// need to record which one they used.
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/ik5/waveform/envelope"
	"github.com/klauspost/compress/zstd"
)

// Compression selects how Write encodes the envelope bytes.
type Compression int

const (
	None Compression = iota
	Zstd
)

func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Zstd:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", int(c))
	}
}

// ErrEmptyFile is returned by Read when there is nothing to parse.
var ErrEmptyFile = errors.New("empty envelope file")

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// EncodeAll and DecodeAll are safe for concurrent use, one of each serves
// the package.
var (
	encoder = sync.OnceValues(func() (*zstd.Encoder, error) {
		return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	})
	decoder = sync.OnceValues(func() (*zstd.Decoder, error) {
		return zstd.NewReader(nil)
	})
)

// Write stores env to w.
func Write(w io.Writer, env *envelope.Envelope, c Compression) error {
	data := env.Bytes()

	switch c {
	case None:
	case Zstd:
		enc, err := encoder()
		if err != nil {
			return fmt.Errorf("creating zstd encoder: %w", err)
		}
		data = enc.EncodeAll(data, make([]byte, 0, len(data)/2))
	default:
		return fmt.Errorf("unknown compression %v", c)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing envelope: %w", err)
	}

	return nil
}

// Read loads an envelope written by Write, compressed or not, and
// validates it with envelope.Parse.
func Read(r io.Reader) (*envelope.Envelope, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading envelope: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}

	if bytes.HasPrefix(data, zstdMagic) {
		dec, err := decoder()
		if err != nil {
			return nil, fmt.Errorf("creating zstd decoder: %w", err)
		}
		data, err = dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("decompressing envelope: %w", err)
		}
	}

	return envelope.Parse(data)
}

// SaveFile writes env to path, replacing any existing file.
func SaveFile(path string, env *envelope.Envelope, c Compression) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := Write(f, env, c); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func LoadFile(path string) (*envelope.Envelope, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}
