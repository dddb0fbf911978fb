// SPDX-License-Identifier: EPL-2.0

package envelope

import "fmt"

const (
	// HeaderSize is the byte length of the fixed envelope header.
	HeaderSize = 20
	// EntrySize is the byte length of one (min, max) body entry.
	EntrySize = 2
)

// EntryCount returns ceil(sampleCount / scale), the number of entries
// needed to cover sampleCount samples.
func EntryCount(sampleCount, scale int) (int, error) {
	if scale < 1 {
		return 0, fmt.Errorf("%w: scale %d must be >= 1", ErrInvalidArgument, scale)
	}
	if sampleCount < 0 {
		return 0, fmt.Errorf("%w: negative sample count %d", ErrInvalidArgument, sampleCount)
	}

	n := sampleCount / scale
	if sampleCount-n*scale > 0 {
		n++
	}

	return n, nil
}

// EntryIndex returns the index of the entry whose window encloses
// sampleIndex, floor(sampleIndex / scale).
func EntryIndex(sampleIndex, scale int) (int, error) {
	if scale < 1 {
		return 0, fmt.Errorf("%w: scale %d must be >= 1", ErrInvalidArgument, scale)
	}
	if sampleIndex < 0 {
		return 0, fmt.Errorf("%w: negative sample index %d", ErrInvalidArgument, sampleIndex)
	}

	return sampleIndex / scale, nil
}

// ByteOffset maps a sample index to the byte offset, inside a full envelope
// buffer, of the first entry starting at or after that sample.
func ByteOffset(sampleIndex, scale int) (int, error) {
	n, err := EntryCount(sampleIndex, scale)
	if err != nil {
		return 0, err
	}

	return HeaderSize + n*EntrySize, nil
}

// RoundToEvenByte rounds an odd byte count up by one so that a splice point
// lands on an entry boundary.
func RoundToEvenByte(n int) int {
	if n%2 != 0 {
		return n + 1
	}
	return n
}
