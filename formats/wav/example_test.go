// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ik5/mmlwav/formats/wav"
)

func ExampleWriteWAV16() {
	samples := make([]int16, 1000)

	out := new(bytes.Buffer)
	if err := wav.WriteWAV16(out, wav.Mono16(8000), samples); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%d bytes, %d of them header\n", out.Len(), out.Len()-len(samples)*2)
	// Output:
	// 2044 bytes, 44 of them header
}

func ExampleDecoder() {
	in := new(bytes.Buffer)
	_ = wav.WriteWAV16(in, wav.Mono16(16000), []int16{100, 200, 300, 400, 500})

	src, err := wav.Decoder{}.Decode(in)
	if err != nil {
		fmt.Println(err)
		return
	}

	buf := make([]float32, 10)
	n, err := src.ReadSamples(buf)
	if err != nil && err != io.EOF {
		fmt.Println(err)
		return
	}

	fmt.Printf("%d Hz, %d channel, %d samples\n", src.SampleRate(), src.Channels(), n)
	// Output:
	// 16000 Hz, 1 channel, 5 samples
}
