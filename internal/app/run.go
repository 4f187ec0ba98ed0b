package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/exercicios/internal/bmi"
	"github.com/vk/exercicios/internal/console"
	"github.com/vk/exercicios/internal/countdown"
	"github.com/vk/exercicios/internal/ctxlog"
)

// Run executes the configured program to completion.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	ctx = ctxlog.With(ctx, "program", a.config.Program)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	var err error
	switch a.config.Program {
	case ProgramBMI:
		err = a.runBMI(ctx)
	case ProgramCountdown:
		err = a.runCountdown(ctx)
	default:
		err = fmt.Errorf("unknown program %q", a.config.Program)
	}
	if err != nil {
		return fmt.Errorf("%s failed: %w", a.config.Program, err)
	}

	logger.Debug("App.Run method finished.")
	return nil
}

// runBMI prints either the ratio or the validation message. A rejected
// input is a normal outcome, not a failure of the run.
func (a *App) runBMI(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	weight, height := *a.config.Weight, *a.config.Height

	value, err := bmi.Evaluator{Mode: a.config.BMIMode}.Evaluate(weight, height)
	line := bmi.FormatNumber(value)
	if err != nil {
		if !errors.Is(err, bmi.ErrInvalidValues) {
			return err
		}
		logger.Info("BMI inputs rejected.", "weight", weight, "height", height, "mode", a.config.BMIMode)
		line = err.Error()
	} else {
		logger.Info("BMI computed.", "weight", weight, "height", height, "mode", a.config.BMIMode, "bmi", line)
	}

	if _, err := fmt.Fprintln(a.outW, line); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

func (a *App) runCountdown(ctx context.Context) error {
	c := console.New(a.in, a.outW)
	program := countdown.NewProgram(c, a.outW)
	program.Prompt = a.config.Prompt
	return program.Run(ctx)
}
