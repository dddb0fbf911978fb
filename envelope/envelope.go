// SPDX-License-Identifier: EPL-2.0

package envelope

import (
	"fmt"
	"time"
)

// Envelope is a waveform envelope: a Header followed by Len() entries of
// (min int8, max int8). The byte layout is the exchange format; Bytes
// returns it without copying.
type Envelope struct {
	data []byte
}

// New allocates an envelope with a written header and a zeroed body of
// length entries.
func New(sampleRate, scale, length int) *Envelope {
	data := make([]byte, HeaderSize+length*EntrySize)
	Header{
		Version:    Version,
		Flags:      Flag8Bit,
		SampleRate: int32(sampleRate),
		Scale:      int32(scale),
		Length:     int32(length),
	}.Encode(data)

	return &Envelope{data: data}
}

// Parse wraps b as an envelope after checking that the header describes
// exactly the body that follows it. b is not copied.
func Parse(b []byte) (*Envelope, error) {
	h, err := DecodeHeader(b)
	if err != nil {
		return nil, err
	}

	switch {
	case h.Version != Version:
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorrupt, h.Version)
	case h.Flags != Flag8Bit:
		return nil, fmt.Errorf("%w: unsupported flags %#x", ErrCorrupt, h.Flags)
	case h.Scale < 1:
		return nil, fmt.Errorf("%w: scale %d", ErrCorrupt, h.Scale)
	case h.Length < 0:
		return nil, fmt.Errorf("%w: negative length %d", ErrCorrupt, h.Length)
	}

	if want := HeaderSize + int(h.Length)*EntrySize; len(b) != want {
		return nil, fmt.Errorf("%w: length field %d needs %d bytes, have %d",
			ErrCorrupt, h.Length, want, len(b))
	}

	return &Envelope{data: b}, nil
}

// Bytes returns the encoded envelope. The slice aliases the envelope.
func (e *Envelope) Bytes() []byte { return e.data }

// Header decodes the header fields.
func (e *Envelope) Header() Header {
	h, _ := DecodeHeader(e.data)
	return h
}

// Len returns the number of entries in the body.
func (e *Envelope) Len() int { return (len(e.data) - HeaderSize) / EntrySize }

func (e *Envelope) SampleRate() int { return int(e.Header().SampleRate) }
func (e *Envelope) Scale() int      { return int(e.Header().Scale) }

// Duration of audio the envelope covers.
func (e *Envelope) Duration() time.Duration {
	rate := e.SampleRate()
	if rate <= 0 {
		return 0
	}
	samples := int64(e.Len()) * int64(e.Scale())
	return time.Duration(samples) * time.Second / time.Duration(rate)
}

// Entry returns the (min, max) pair at index i.
func (e *Envelope) Entry(i int) (lo, hi int8) {
	off := HeaderSize + i*EntrySize
	return int8(e.data[off]), int8(e.data[off+1])
}

func (e *Envelope) Min(i int) int8 {
	lo, _ := e.Entry(i)
	return lo
}

func (e *Envelope) Max(i int) int8 {
	_, hi := e.Entry(i)
	return hi
}

// SetEntry overwrites the pair at index i.
func (e *Envelope) SetEntry(i int, lo, hi int8) {
	off := HeaderSize + i*EntrySize
	e.data[off] = byte(lo)
	e.data[off+1] = byte(hi)
}

// Clone returns a deep copy.
func (e *Envelope) Clone() *Envelope {
	return &Envelope{data: append([]byte(nil), e.data...)}
}

func (e *Envelope) body() []byte { return e.data[HeaderSize:] }
