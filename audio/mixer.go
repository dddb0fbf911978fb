// SPDX-License-Identifier: EPL-2.0

package audio

// Mix returns the mono mixdown of sample i: the sum of every channel's
// value at i divided by the channel count. The sum is taken in float64 and
// divided once.
func (b *Buffer) Mix(i int) float64 {
	switch len(b.Channels) {
	case 1:
		return float64(b.Channels[0][i])
	case 2:
		return (float64(b.Channels[0][i]) + float64(b.Channels[1][i])) / 2
	default:
		sum := 0.0
		for _, ch := range b.Channels {
			sum += float64(ch[i])
		}
		return sum / float64(len(b.Channels))
	}
}
