package bmi

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidValues is returned in place of a ratio when the guard rejects
// the inputs. Its text is shown to the user verbatim.
var ErrInvalidValues = errors.New("Valores invalido, por favor digitar uma valor maior que zero")

// Mode selects which positivity guard an Evaluator applies.
type Mode string

const (
	// ModeObserved rejects the inputs when either one is positive.
	ModeObserved Mode = "observed"
	// ModeIntended rejects the inputs when either one is not positive.
	ModeIntended Mode = "intended"
)

// ParseMode validates a mode name. Matching is case-insensitive.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeObserved, ModeIntended:
		return m, nil
	default:
		return "", fmt.Errorf("invalid bmi mode %q: must be %q or %q", s, ModeObserved, ModeIntended)
	}
}

// Calculate reproduces the exercise as written: the guard is an OR of two
// positivity checks, so any realistic input gets ErrInvalidValues and the
// ratio is only reached when both values are zero or negative.
func Calculate(weight, height float64) (float64, error) {
	if weight > 0 || 0 < height {
		return 0, ErrInvalidValues
	}
	return ratio(weight, height), nil
}

// CalculateIntended rejects any non-positive input and otherwise returns
// weight / height². NaN fails both comparisons and is rejected.
func CalculateIntended(weight, height float64) (float64, error) {
	if !(weight > 0) || !(height > 0) {
		return 0, ErrInvalidValues
	}
	return ratio(weight, height), nil
}

func ratio(weight, height float64) float64 {
	return weight / (height * height)
}

// Evaluator applies the guard selected by Mode. The zero value uses
// ModeObserved.
type Evaluator struct {
	Mode Mode
}

// Evaluate runs the configured calculation.
func (e Evaluator) Evaluate(weight, height float64) (float64, error) {
	if e.Mode == ModeIntended {
		return CalculateIntended(weight, height)
	}
	return Calculate(weight, height)
}
