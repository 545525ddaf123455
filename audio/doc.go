// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives shared by the renderer and
// the inspector.
//
//   - Source interface for float32 sample streams
//   - PCM16Source over a rendered int16 buffer
//   - Resampler for sample rate conversion
//   - MonoMixer for channel mixing
//   - Registry of decoders by format key
//   - Collect16 to drain a Source back into 16-bit PCM
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float32 values in [-1.0, 1.0]. Decoders and
// processors all implement Source so they can be chained.
//
// # Resampling a Render
//
// Synthesis always happens at 44100 Hz. A different output rate is produced by
// streaming the result through a Resampler:
//
//	src := audio.NewPCM16Source(res.Samples, res.SampleRate, res.Channels)
//	pcm, err := audio.Collect16(audio.NewResampler(src, 22050), 4096)
//
// The Resampler uses Catmull-Rom interpolation and applies a one-pole low-pass
// to its input when downsampling.
//
// # Channel Mixing
//
//	mono := audio.NewMonoMixer(source)
//	n, err := mono.ReadSamples(buf) // n mono frames
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	format, decoder, err := registry.Lookup("take1.WAV") // "wav"
//
// Keys are case-insensitive; Lookup fails with ErrUnknownFormat for unknown
// extensions.
//
// # End of Stream
//
// ReadSamples returns io.EOF when no more data is available, possibly
// together with a final batch of samples:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // process buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
