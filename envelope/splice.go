// SPDX-License-Identifier: EPL-2.0

package envelope

import "fmt"

// Delete returns a new envelope with the entries covering samples r cut
// out of env, and its length field rewritten to match. env is not
// modified.
//
// Splice points are computed on doubled sample indices,
// RoundToEvenByte(EntryCount(2*i, scale) + HeaderSize), which always equals
// HeaderSize + EntrySize*EntryCount(i, scale): the byte offset of the first
// entry starting at or after sample i. Both points are capped at the end of
// the buffer.
func Delete(env *Envelope, opts Options, r Range) (*Envelope, error) {
	if env == nil {
		return nil, fmt.Errorf("%w: delete without a previous envelope", ErrPreconditionFailed)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	if err := checkScale(env, opts); err != nil {
		return nil, err
	}

	prev := env.Bytes()

	from, err := splicePoint(r.Start, opts.Scale, len(prev))
	if err != nil {
		return nil, err
	}
	to, err := splicePoint(r.End, opts.Scale, len(prev))
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(prev)-(to-from))
	out = append(out, prev[:from]...)
	out = append(out, prev[to:]...)

	putLength(out, (len(out)-HeaderSize)/EntrySize)

	return &Envelope{data: out}, nil
}

func splicePoint(sample, scale, limit int) (int, error) {
	n, err := EntryCount(sample*2, scale)
	if err != nil {
		return 0, err
	}

	return min(RoundToEvenByte(n+HeaderSize), limit), nil
}
