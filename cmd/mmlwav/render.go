// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ik5/mmlwav"
	"github.com/ik5/mmlwav/internal/config"
	"github.com/ik5/mmlwav/synth"
)

const defaultMML = "CDEFGAB"

type renderFlags struct {
	mml   string
	file  string
	shape string
	bpm   float64
	duty  float64
	width float64
	rate  int
}

func (a *app) renderCmd() *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "render <out.wav|->",
		Short: "Render a note sequence to a WAV file, or to stdout with -",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(cmd, args[0], f)
		},
	}

	def := config.Default()
	fl := cmd.Flags()
	fl.StringVar(&f.mml, "mml", "", "note sequence, e.g. CDEF#G (default "+defaultMML+")")
	fl.StringVar(&f.file, "file", "", "read the note sequence from a file")
	fl.StringVar(&f.shape, "shape", def.Waveform, "waveform: sin, sq or saw (env "+config.EnvShape+")")
	fl.Float64Var(&f.bpm, "bpm", def.BPM, "tempo, one note per beat (env "+config.EnvBPM+")")
	fl.Float64Var(&f.duty, "duty", def.Duty, "pulse duty cycle in [0,1] (env "+config.EnvDuty+")")
	fl.Float64Var(&f.width, "width", def.Width, "sawtooth rise fraction in [0,1] (env "+config.EnvWidth+")")
	fl.IntVar(&f.rate, "rate", def.OutputRate, "output sample rate in Hz (env "+config.EnvRate+")")
	cmd.MarkFlagsMutuallyExclusive("mml", "file")

	return cmd
}

// resolveMMLInput prefers the file, then the inline sequence, then the
// default scale. An inline sequence that was set explicitly is returned as
// is, even when empty.
func resolveMMLInput(path, inline string, inlineSet bool) (string, error) {
	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading sequence: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	if inlineSet || inline != "" {
		return inline, nil
	}
	return defaultMML, nil
}

func (a *app) render(cmd *cobra.Command, out string, f renderFlags) error {
	cfg := a.cfg
	flags := cmd.Flags()
	if flags.Changed("shape") {
		cfg.Waveform = f.shape
	}
	if flags.Changed("bpm") {
		cfg.BPM = f.bpm
	}
	if flags.Changed("duty") {
		cfg.Duty = f.duty
	}
	if flags.Changed("width") {
		cfg.Width = f.width
	}
	if flags.Changed("rate") {
		cfg.OutputRate = f.rate
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	seq, err := resolveMMLInput(f.file, f.mml, flags.Changed("mml"))
	if err != nil {
		return err
	}

	a.log.Debug("rendering", "mml", seq, "shape", cfg.Waveform, "bpm", cfg.BPM, "rate", cfg.OutputRate)

	var res *synth.Result
	if out == "-" {
		res, err = mmlwav.RenderTo(a.stdout, seq, opts)
	} else {
		res, err = mmlwav.RenderFile(out, seq, opts)
	}
	if err != nil {
		return err
	}

	a.log.Info("rendered",
		"out", out,
		"frames", res.Frames(),
		"rate", res.SampleRate,
		"duration", res.Duration(),
	)
	return nil
}
