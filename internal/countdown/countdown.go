// Package countdown implements the countdown exercise: read a number, then
// print "Contador N" for every value from one below it down to zero.
package countdown

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Prompt is written before the start value is read.
const Prompt = "Digite um número: "

// Start is the outcome of parsing the user's line. Valid is false when the
// line held no leading number; such a Start never enters the loop.
type Start struct {
	Value int64
	Valid bool
}

// String renders the start the way it would appear in a log line.
func (s Start) String() string {
	if !s.Valid {
		return "NaN"
	}
	return strconv.FormatInt(s.Value, 10)
}

// Parse reads a base-10 integer from the front of line. Leading whitespace
// and a single sign are accepted, parsing stops at the first non-digit, and
// anything that does not start with a digit yields an invalid Start.
// Out-of-range values saturate.
func Parse(line string) Start {
	s := strings.TrimLeftFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return Start{}
	}

	digits := s[:end]
	if neg {
		digits = "-" + digits
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		// Only ErrRange is possible here; v already holds the saturated bound.
		if neg {
			v = math.MinInt64
		} else {
			v = math.MaxInt64
		}
	}
	return Start{Value: v, Valid: true}
}

// Count decrements a counter from s and writes one line per step, the
// decrement happening before the write. It returns the number of lines
// written.
func Count(w io.Writer, s Start) (int, error) {
	if !s.Valid {
		return 0, nil
	}

	lines := 0
	counter := s.Value
	for counter > 0 {
		counter--
		if _, err := fmt.Fprintf(w, "Contador %d\n", counter); err != nil {
			return lines, fmt.Errorf("failed to write counter line: %w", err)
		}
		lines++
	}
	return lines, nil
}
