// SPDX-License-Identifier: EPL-2.0

package waveform_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/waveform"
	"github.com/ik5/waveform/envelope"
	"github.com/ik5/waveform/internal/audiotest"
)

func ExampleFromReader() {
	// one second of a quiet square wave
	samples := make([]int32, 8000)
	for i := range samples {
		samples[i] = 8192
		if i/40%2 == 1 {
			samples[i] = -8192
		}
	}
	data := audiotest.WAV(8000, 1, 16, samples)

	env, _, err := waveform.FromReader(bytes.NewReader(data), "wav", envelope.Options{Scale: 800, AmplitudeScale: 2})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(env.Len(), env.Duration())
	fmt.Println(env.Entry(0))
	// Output:
	// 10 1s
	// -64 63
}

func ExampleDefaultRegistry() {
	fmt.Println(waveform.DefaultRegistry().Formats())
	// Output:
	// [aif aiff flac mp3 oga ogg wav wave]
}
