// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ik5/mmlwav"
)

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Report format, level and pitch of an audio file",
		Long:  infoLong(),
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			rep, err := mmlwav.Inspect(args[0])
			if err != nil {
				return err
			}

			a.log.Debug("inspected", "path", args[0], "format", rep.Format, "frames", rep.Frames)

			w := a.stdout
			fmt.Fprintf(w, "format:      %s\n", rep.Format)
			fmt.Fprintf(w, "sample rate: %d Hz\n", rep.SampleRate)
			fmt.Fprintf(w, "channels:    %d\n", rep.Channels)
			fmt.Fprintf(w, "frames:      %d\n", rep.Frames)
			fmt.Fprintf(w, "duration:    %s\n", rep.Duration)
			fmt.Fprintf(w, "peak:        %.4f\n", rep.Peak)
			fmt.Fprintf(w, "rms:         %.4f\n", rep.RMS)
			fmt.Fprintf(w, "pitch:       %.2f Hz (%s)\n", rep.PitchHz, rep.Note)
			return nil
		},
	}
}

func infoLong() string {
	return "Decodes an audio file and prints its format, peak and RMS level and a zero-crossing estimate of its pitch.\n" +
		"Supported extensions: " + strings.Join(mmlwav.DefaultRegistry().Formats(), ", ") + "."
}
