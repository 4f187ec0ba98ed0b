package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/pflag"
	"github.com/vk/exercicios/internal/app"
	"github.com/vk/exercicios/internal/bmi"
	"github.com/vk/exercicios/internal/config"
)

// Exit codes returned through ExitError.
const (
	ExitFailure          = 1
	ExitInvalidArguments = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func invalid(err error) error {
	return &ExitError{Code: ExitInvalidArguments, Message: err.Error()}
}

const usage = `
Exercicios - two small console exercises.

Usage:
  exercicios [options] PROGRAM

Programs:
  bmi        Evaluate weight / height² for --weight and --height.
  countdown  Ask for a number and count down from it to zero.

The bmi program reproduces the exercise's guard by default, which rejects
any input where weight or height is positive. Use --bmi-mode=intended for
the guard that rejects non-positive values instead.

Options:
`

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// When --config is given, the settings it holds sit between the built-in
// defaults and any flag set explicitly.
func Parse(ctx context.Context, args []string, output io.Writer, loader config.Loader) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := pflag.NewFlagSet("exercicios", pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.SortFlags = false

	flagSet.Usage = func() {
		fmt.Fprint(output, usage)
		flagSet.PrintDefaults()
	}

	defaults := app.DefaultConfig()
	configFlag := flagSet.StringP("config", "c", "", "Path to an HCL settings file or a directory of them.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	weightFlag := flagSet.Float64P("weight", "w", 0, "Weight for the bmi program, in kilograms.")
	heightFlag := flagSet.Float64P("height", "H", 0, "Height for the bmi program, in meters.")
	modeFlag := flagSet.String("bmi-mode", string(defaults.BMIMode), "Guard used by the bmi program. Options: 'observed' or 'intended'.")
	promptFlag := flagSet.String("prompt", defaults.Prompt, "Prompt shown by the countdown program.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, invalid(err)
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No program provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, invalid(fmt.Errorf("expected a single program, got %d arguments", flagSet.NArg()))
	}

	cfg := defaults
	cfg.Program = flagSet.Arg(0)
	cfg.ConfigPath = *configFlag

	if cfg.ConfigPath != "" {
		model, err := loader.Load(ctx, cfg.ConfigPath)
		if err != nil {
			return nil, false, invalid(fmt.Errorf("failed to load settings: %w", err))
		}
		if err := cfg.ApplyModel(model); err != nil {
			return nil, false, invalid(fmt.Errorf("invalid settings: %w", err))
		}
		slog.Debug("Settings file applied.", "path", cfg.ConfigPath)
	}

	if flagSet.Changed("log-format") {
		cfg.LogFormat = *logFormatFlag
	}
	if flagSet.Changed("log-level") {
		cfg.LogLevel = *logLevelFlag
	}
	if flagSet.Changed("bmi-mode") {
		cfg.BMIMode = bmi.Mode(*modeFlag)
	}
	if flagSet.Changed("weight") {
		cfg.Weight = weightFlag
	}
	if flagSet.Changed("height") {
		cfg.Height = heightFlag
	}
	if flagSet.Changed("prompt") {
		cfg.Prompt = *promptFlag
	}

	validated, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, invalid(err)
	}

	slog.Debug("CLI parser finished successfully.", "program", validated.Program)
	return validated, false, nil
}
