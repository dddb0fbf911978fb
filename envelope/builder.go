// SPDX-License-Identifier: EPL-2.0

package envelope

import (
	"fmt"
	"math"

	"github.com/ik5/waveform/audio"
	"github.com/ik5/waveform/utils"
)

// Build decimates the whole of buf into a new envelope of
// EntryCount(buf.Len(), opts.Scale) entries.
//
// Each sample position is mixed down across channels, multiplied by
// opts.AmplitudeScale and 127, floored and clamped into the int8 range
// before it updates the running min and max of its window. A trailing
// partial window still produces an entry.
func Build(buf *audio.Buffer, opts Options) (*Envelope, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := validateBuffer(buf); err != nil {
		return nil, err
	}

	n := buf.Len()
	entries, err := EntryCount(n, opts.Scale)
	if err != nil {
		return nil, err
	}

	env := New(buf.SampleRate, opts.Scale, entries)
	decimate(env.body(), buf, 0, n, opts)

	return env, nil
}

// Enhance recomputes, in place, the entries of env covered by the samples
// in r. Windows are counted from r.Start and written from the entry that
// encloses r.Start, so callers should pass a range aligned to (or wider
// than) the windows they changed. All other entries are left untouched.
//
// Every check runs before the first write: on error env is unchanged.
func Enhance(env *Envelope, buf *audio.Buffer, opts Options, r Range) error {
	if env == nil {
		return fmt.Errorf("%w: enhance without a previous envelope", ErrPreconditionFailed)
	}
	if err := opts.validate(); err != nil {
		return err
	}
	if err := r.validate(); err != nil {
		return err
	}
	if err := validateBuffer(buf); err != nil {
		return err
	}
	if err := checkScale(env, opts); err != nil {
		return err
	}

	if r.End > buf.Len() {
		return fmt.Errorf("%w: range end %d past buffer of %d samples",
			ErrInvalidArgument, r.End, buf.Len())
	}

	first, err := EntryIndex(r.Start, opts.Scale)
	if err != nil {
		return err
	}
	count, err := EntryCount(r.Len(), opts.Scale)
	if err != nil {
		return err
	}
	if first+count > env.Len() {
		return fmt.Errorf("%w: range [%d, %d) needs entries up to %d, envelope has %d",
			ErrInvalidArgument, r.Start, r.End, first+count, env.Len())
	}

	decimate(env.body()[first*EntrySize:], buf, r.Start, r.End, opts)

	return nil
}

// Apply runs op against prev and returns the resulting envelope. prev is
// never modified: enhance works on a copy. On error the result is nil.
func Apply(prev *Envelope, buf *audio.Buffer, op Operation) (*Envelope, error) {
	switch op.Kind {
	case KindFullBuild:
		return Build(buf, op.Options)
	case KindEnhance:
		if prev == nil {
			return nil, fmt.Errorf("%w: enhance without a previous envelope", ErrPreconditionFailed)
		}
		next := prev.Clone()
		if err := Enhance(next, buf, op.Options, op.Range); err != nil {
			return nil, err
		}
		return next, nil
	case KindDelete:
		return Delete(prev, op.Options, op.Range)
	default:
		return nil, fmt.Errorf("%w: unknown operation %v", ErrInvalidArgument, op.Kind)
	}
}

// decimate writes the entries for samples [start, end) of buf into dst and
// returns how many it wrote. dst must have room for
// EntryCount(end-start, opts.Scale) entries.
func decimate(dst []byte, buf *audio.Buffer, start, end int, opts Options) int {
	var (
		lo, hi  = math.MaxInt, math.MinInt
		counter int
		off     int
	)

	emit := func() {
		dst[off], dst[off+1] = windowByte(lo, math.MaxInt), windowByte(hi, math.MinInt)
		off += EntrySize
		lo, hi = math.MaxInt, math.MinInt
		counter = 0
	}

	for i := start; i < end; i++ {
		if q, ok := utils.QuantizeInt8(buf.Mix(i), opts.AmplitudeScale); ok {
			v := int(q)
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}

		counter++
		if counter == opts.Scale {
			emit()
		}
	}

	if counter > 0 {
		emit()
	}

	return off / EntrySize
}

// windowByte encodes an accumulated extreme; a window that saw no
// quantizable sample keeps its sentinel and is written as zero.
func windowByte(v, sentinel int) byte {
	if v == sentinel {
		return 0
	}
	return byte(int8(v))
}

func validateBuffer(buf *audio.Buffer) error {
	if err := buf.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return nil
}

func checkScale(env *Envelope, opts Options) error {
	if s := env.Scale(); s != opts.Scale {
		return fmt.Errorf("%w: envelope scale %d, operation scale %d",
			ErrInvalidArgument, s, opts.Scale)
	}
	return nil
}
