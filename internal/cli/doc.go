// Package cli is responsible for parsing command-line arguments, layering
// them over the settings file, validating the result, and handling
// process-level concerns like exit codes.
package cli
