// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio with
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces 16-bit stereo, so Channels is 2 even for mono
// files; the envelope mixdown gives the same result either way. When the
// input can seek, the source reports its frame count.
//
//	f, _ := os.Open("episode.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
package mp3
