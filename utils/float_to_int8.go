// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// QuantizeInt8 scales a mixed sample by gain and the signed 8-bit maximum,
// floors it and clamps the result into [math.MinInt8, math.MaxInt8].
//
// The order is fixed: multiply, floor, then clamp. Positive infinity clamps
// to 127 and negative infinity to -128. ok is false for NaN input, which
// carries no amplitude and must not move a window's extrema.
func QuantizeInt8(mixed, gain float64) (q int8, ok bool) {
	v := math.Floor(mixed * gain * math.MaxInt8)
	if math.IsNaN(v) {
		return 0, false
	}

	if v > math.MaxInt8 {
		return math.MaxInt8, true
	}
	if v < math.MinInt8 {
		return math.MinInt8, true
	}

	return int8(v), true
}
