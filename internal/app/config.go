package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vk/exercicios/internal/bmi"
	"github.com/vk/exercicios/internal/config"
	"github.com/vk/exercicios/internal/countdown"
)

// Program names accepted on the command line.
const (
	ProgramBMI       = "bmi"
	ProgramCountdown = "countdown"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Program    string
	ConfigPath string // optional HCL settings file or directory

	LogFormat string
	LogLevel  string

	BMIMode bmi.Mode
	Weight  *float64
	Height  *float64

	Prompt string
}

// DefaultConfig returns the built-in settings that files and flags override.
func DefaultConfig() Config {
	return Config{
		LogFormat: "text",
		LogLevel:  "warn",
		BMIMode:   bmi.ModeObserved,
		Prompt:    countdown.Prompt,
	}
}

// ApplyModel overlays values from a loaded settings model.
func (c *Config) ApplyModel(m *config.Model) error {
	if m == nil {
		return nil
	}
	if m.LogLevel != nil {
		c.LogLevel = *m.LogLevel
	}
	if m.LogFormat != nil {
		c.LogFormat = *m.LogFormat
	}
	if m.BMI != nil {
		if m.BMI.Mode != nil {
			mode, err := bmi.ParseMode(*m.BMI.Mode)
			if err != nil {
				return err
			}
			c.BMIMode = mode
		}
		if m.BMI.Weight != nil {
			c.Weight = m.BMI.Weight
		}
		if m.BMI.Height != nil {
			c.Height = m.BMI.Height
		}
	}
	if m.Countdown != nil && m.Countdown.Prompt != nil {
		c.Prompt = *m.Countdown.Prompt
	}
	return nil
}

// NewConfig validates cfg and returns a copy ready for NewApp.
func NewConfig(cfg Config) (*Config, error) {
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	if cfg.BMIMode == "" {
		cfg.BMIMode = bmi.ModeObserved
	}
	if _, err := bmi.ParseMode(string(cfg.BMIMode)); err != nil {
		return nil, err
	}

	switch cfg.Program {
	case ProgramBMI:
		if cfg.Weight == nil || cfg.Height == nil {
			return nil, errors.New("the bmi program requires both a weight and a height")
		}
	case ProgramCountdown:
		// reads its input interactively
	case "":
		return nil, errors.New("Program is a required configuration field and cannot be empty")
	default:
		return nil, fmt.Errorf("unknown program %q: must be %q or %q", cfg.Program, ProgramBMI, ProgramCountdown)
	}

	return &cfg, nil
}
