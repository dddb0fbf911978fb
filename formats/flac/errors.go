// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	// ErrNotFlacFile is returned when the fLaC signature or STREAMINFO
	// block cannot be read.
	ErrNotFlacFile = errors.New("not a FLAC file")

	// ErrChannelMismatch is returned when a frame carries a different
	// number of subframes than STREAMINFO announced.
	ErrChannelMismatch = errors.New("flac frame channel count mismatch")
)
