// SPDX-License-Identifier: EPL-2.0

package envelope

import "errors"

var (
	// ErrInvalidArgument covers bad scales, mismatched channel lengths and
	// malformed ranges.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPreconditionFailed is returned when a range edit is requested
	// without a previous envelope to edit.
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrCorrupt is returned by Parse when the header and body disagree.
	ErrCorrupt = errors.New("corrupt envelope")
)
