// SPDX-License-Identifier: EPL-2.0

// Command mmlwav renders MML note strings to WAV files and inspects audio
// files.
//
//	mmlwav render out.wav --mml CDEFGAB --shape sq --duty 0.25
//	mmlwav render - --file tune.mml > tune.wav
//	mmlwav info out.wav
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.LookupEnv, os.Stdout, os.Stderr))
}
