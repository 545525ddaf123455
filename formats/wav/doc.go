// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes 16-bit PCM WAV files.
//
// Three writers cover the different destinations:
//
//   - WriteWAV16 streams a canonical 44-byte header followed by the samples
//     and never seeks, so it is the one to use for pipes and stdout.
//   - Encode drives the github.com/go-audio/wav encoder over an
//     io.WriteSeeker and expects raw little-endian frame bytes.
//   - WriteFile wraps Encode with a temp file that is renamed into place,
//     so a failed render never leaves a truncated file at the target path.
//
// Decoder turns a WAV stream into an audio.Source of float32 samples in
// [-1, 1]. Input that cannot seek is buffered in memory first.
package wav
