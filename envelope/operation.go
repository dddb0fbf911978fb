// SPDX-License-Identifier: EPL-2.0

package envelope

import (
	"fmt"
	"math"
)

// Options are the decimation parameters shared by every operation.
type Options struct {
	// Scale is the number of input samples per entry.
	Scale int
	// AmplitudeScale is a linear gain applied before quantization.
	AmplitudeScale float64
}

// DefaultOptions returns 512 samples per entry at unity gain.
func DefaultOptions() Options {
	return Options{Scale: 512, AmplitudeScale: 1.0}
}

func (o Options) validate() error {
	if o.Scale < 1 {
		return fmt.Errorf("%w: scale %d must be >= 1", ErrInvalidArgument, o.Scale)
	}
	if math.IsNaN(o.AmplitudeScale) || math.IsInf(o.AmplitudeScale, 0) {
		return fmt.Errorf("%w: amplitude scale %v", ErrInvalidArgument, o.AmplitudeScale)
	}
	return nil
}

// Range is the half-open sample range [Start, End).
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns End - Start.
func (r Range) Len() int { return r.End - r.Start }

func (r Range) validate() error {
	if r.Start < 0 {
		return fmt.Errorf("%w: range start %d is negative", ErrInvalidArgument, r.Start)
	}
	if r.End < r.Start {
		return fmt.Errorf("%w: range end %d before start %d", ErrInvalidArgument, r.End, r.Start)
	}
	return nil
}

// Kind selects what an Operation does with the previous envelope.
type Kind int

const (
	// KindFullBuild computes a new envelope from the whole buffer.
	KindFullBuild Kind = iota
	// KindEnhance recomputes the entries covering a range in place.
	KindEnhance
	// KindDelete cuts the entries covering a range out.
	KindDelete
)

func (k Kind) String() string {
	switch k {
	case KindFullBuild:
		return "full-build"
	case KindEnhance:
		return "enhance"
	case KindDelete:
		return "delete"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Operation is one resolved builder request.
type Operation struct {
	Kind    Kind
	Options Options
	// Range is ignored by KindFullBuild.
	Range Range
}

func NewFullBuild(opts Options) Operation {
	return Operation{Kind: KindFullBuild, Options: opts}
}

func NewEnhance(opts Options, r Range) Operation {
	return Operation{Kind: KindEnhance, Options: opts, Range: r}
}

func NewDelete(opts Options, r Range) Operation {
	return Operation{Kind: KindDelete, Options: opts, Range: r}
}

// Descriptor is the loosely typed request accepted at the boundary: a
// missing Range means a full build, a Range with IsDelete a deletion, and
// a Range without it an enhancement.
type Descriptor struct {
	Scale          int     `json:"scale"`
	AmplitudeScale float64 `json:"amplitude_scale"`
	Range          *Range  `json:"range,omitempty"`
	IsDelete       bool    `json:"isDelete,omitempty"`
}

// Operation resolves d into an Operation.
func (d Descriptor) Operation() (Operation, error) {
	opts := Options{Scale: d.Scale, AmplitudeScale: d.AmplitudeScale}
	if err := opts.validate(); err != nil {
		return Operation{}, err
	}

	if d.Range == nil {
		if d.IsDelete {
			return Operation{}, fmt.Errorf("%w: delete needs a range", ErrInvalidArgument)
		}
		return NewFullBuild(opts), nil
	}

	if err := d.Range.validate(); err != nil {
		return Operation{}, err
	}

	if d.IsDelete {
		return NewDelete(opts, *d.Range), nil
	}
	return NewEnhance(opts, *d.Range), nil
}
