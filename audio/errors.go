// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrNoChannels        = errors.New("buffer has no channels")
	ErrUnequalChannels   = errors.New("channels have unequal sample counts")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrUnknownFormat     = errors.New("unknown audio format")
)

// FormatError reports a format key with no registered decoder.
type FormatError struct {
	Format string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownFormat, e.Format)
}

func (e *FormatError) Unwrap() error { return ErrUnknownFormat }
