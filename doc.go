// SPDX-License-Identifier: EPL-2.0

// Package mmlwav renders Music Macro Language note strings to 16-bit PCM
// WAV and inspects the audio files it, or anything else, produced.
//
// # Rendering
//
// A sequence is a run of note symbols, one fixed-length note per symbol:
//
//	C C# D D# E F F# G G# A A# B R
//
// R is a rest. Every note lasts one beat at the chosen tempo, so "CDEF" at
// 120 BPM is two seconds of audio:
//
//	res, err := mmlwav.Render("CDEF", mmlwav.DefaultOptions())
//	if err != nil {
//	    // errors.Is(err, synth.ErrInvalidNoteSymbol) and friends
//	}
//	fmt.Println(res.Frames()) // 88200
//
// RenderFile writes the result to disk through a temp file that is renamed
// into place, so a failing render never leaves a half-written file behind.
// RenderTo streams to any io.Writer, stdout included.
//
// The synthesis engine always works at 44100 Hz. Setting Options.OutputRate
// to another rate passes the result through audio.Resampler.
//
// # Inspecting
//
// Inspect decodes a WAV, MP3, Ogg Vorbis or AIFF file, folds it down to
// mono and reports its level and an estimate of its fundamental:
//
//	rep, err := mmlwav.Inspect("out.wav")
//	fmt.Println(rep.Note, rep.PitchHz)
//
// The estimate counts zero crossings, so it is only meaningful for a
// single steady tone such as a rendered one-note sequence.
package mmlwav
