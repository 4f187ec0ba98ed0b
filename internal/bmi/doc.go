// Package bmi evaluates the body-mass-index exercise. It keeps the
// exercise's guard as written (Calculate) next to the guard its author
// meant to write (CalculateIntended), and lets callers pick one through
// a Mode.
package bmi
