package bmi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	testCases := []struct {
		in   float64
		want string
	}{
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{22.5, "22.5"},
		{-22.857142857142858, "-22.857142857142858"},
		{1234567, "1234567"},
		{0.000001, "0.000001"},
		{1e-7, "1e-7"},
		{1e21, "1e+21"},
		{-2.5e-10, "-2.5e-10"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, FormatNumber(tc.in), "FormatNumber(%v)", tc.in)
	}
}
