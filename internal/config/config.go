// SPDX-License-Identifier: EPL-2.0

// Package config resolves render settings from defaults, the environment
// and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ik5/mmlwav"
	"github.com/ik5/mmlwav/synth"
)

// Environment variables read by Load.
const (
	EnvShape     = "MMLWAV_SHAPE"
	EnvBPM       = "MMLWAV_BPM"
	EnvDuty      = "MMLWAV_DUTY"
	EnvWidth     = "MMLWAV_WIDTH"
	EnvRate      = "MMLWAV_RATE"
	EnvLogLevel  = "MMLWAV_LOG_LEVEL"
	EnvLogFormat = "MMLWAV_LOG_FORMAT"
)

var ErrInvalidValue = errors.New("invalid configuration value")

type Config struct {
	Waveform   string // a synth.ParseKind name
	BPM        float64
	Duty       float64
	Width      float64
	OutputRate int
	LogLevel   string
	LogFormat  string
}

func Default() Config {
	return Config{
		Waveform:   string(synth.KindSine),
		BPM:        120,
		Duty:       synth.DefaultDuty,
		Width:      synth.DefaultWidth,
		OutputRate: synth.SampleRate,
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Load returns the defaults overridden by any set environment variable.
// A set but malformed variable is an error, it never falls back silently.
func Load(lookup LookupFunc) (Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	cfg := Default()
	var errs []error

	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	num := func(key string, dst *float64) {
		v, ok := lookup(key)
		if !ok || strings.TrimSpace(v) == "" {
			return
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, v))
			return
		}
		*dst = f
	}

	str(EnvShape, &cfg.Waveform)
	num(EnvBPM, &cfg.BPM)
	num(EnvDuty, &cfg.Duty)
	num(EnvWidth, &cfg.Width)
	str(EnvLogLevel, &cfg.LogLevel)
	str(EnvLogFormat, &cfg.LogFormat)

	if v, ok := lookup(EnvRate); ok && strings.TrimSpace(v) != "" {
		rate, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvRate, v))
		} else {
			cfg.OutputRate = rate
		}
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field without building anything.
func (c Config) Validate() error {
	var errs []error

	if _, err := c.Shape(); err != nil {
		errs = append(errs, err)
	}
	if c.OutputRate <= 0 {
		errs = append(errs, fmt.Errorf("%w: output rate %d", ErrInvalidValue, c.OutputRate))
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if _, err := parseFormat(c.LogFormat); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Shape builds the configured waveform.
func (c Config) Shape() (synth.Shape, error) {
	kind, err := synth.ParseKind(c.Waveform)
	if err != nil {
		return nil, err
	}
	return synth.NewShape(kind, c.Duty, c.Width)
}

// Options converts c into render options.
func (c Config) Options() (mmlwav.Options, error) {
	shape, err := c.Shape()
	if err != nil {
		return mmlwav.Options{}, err
	}
	if c.OutputRate <= 0 {
		return mmlwav.Options{}, fmt.Errorf("%w: output rate %d", ErrInvalidValue, c.OutputRate)
	}

	return mmlwav.Options{
		BPM:        c.BPM,
		Shape:      shape,
		OutputRate: c.OutputRate,
	}, nil
}
