// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ik5/mmlwav/internal/config"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	env    config.LookupFunc
	stdout io.Writer
	stderr io.Writer

	cfg config.Config
	log *slog.Logger

	logLevel  string
	logFormat string
}

// run executes the command line and returns the process exit code.
func run(args []string, env config.LookupFunc, stdout, stderr io.Writer) int {
	a := &app{env: env, stdout: stdout, stderr: stderr}

	root := a.rootCmd()
	root.SetArgs(args)

	if cmd, err := root.ExecuteC(); err != nil {
		if a.log != nil {
			name := "mmlwav"
			if cmd != nil {
				name = cmd.Name()
			}
			a.log.Error("command failed", "cmd", name, "err", err)
		} else {
			fmt.Fprintf(stderr, "mmlwav: %v\n", err)
		}
		return 1
	}
	return 0
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mmlwav",
		Short:         "Render MML note strings to 16-bit PCM WAV",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (env "+config.EnvLogLevel+")")
	pf.StringVar(&a.logFormat, "log-format", "", "text or json (env "+config.EnvLogFormat+")")

	root.AddCommand(a.renderCmd(), a.infoCmd())
	return root
}

// setup loads the environment over the defaults, lets explicitly set
// persistent flags win and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.env)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}

	log, err := cfg.Logger(a.stderr)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	return nil
}
