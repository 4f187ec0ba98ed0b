// Package config defines the format-agnostic settings model read from a
// settings file, and the Loader interface that concrete formats implement.
// Fields left unset in the file stay nil so that callers can layer them
// over built-in defaults.
package config
