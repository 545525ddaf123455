// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III streams with
// github.com/hajimehoshi/go-mp3. The decoder always yields interleaved
// stereo, even for mono files, at the stream's own sample rate.
package mp3
