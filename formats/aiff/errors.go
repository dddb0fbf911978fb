// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the input has no FORM/AIFF COMM chunk.
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedBitDepth is returned for depths other than 16, 24 and 32.
	ErrUnsupportedBitDepth = errors.New("unsupported AIFF bit depth")
)
