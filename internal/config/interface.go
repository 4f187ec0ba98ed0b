package config

import "context"

// Loader is the interface for a format-specific settings loader.
type Loader interface {
	// Load reads every settings file found under paths and merges them, in
	// order, into a single Model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
