package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/exercicios/internal/config"
	"github.com/vk/exercicios/internal/ctxlog"
	"github.com/vk/exercicios/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	// Environ supplies the variables visible as env.NAME. Defaults to os.Environ.
	Environ func() []string
}

// NewLoader creates a new HCL settings loader.
func NewLoader() *Loader {
	return &Loader{Environ: os.Environ}
}

// Load parses every .hcl file under paths (or each path itself when it is a
// file) and merges them in order, later files overriding earlier ones.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	environ := os.Environ
	if l.Environ != nil {
		environ = l.Environ
	}
	evalCtx := newEvalContext(environ())

	parser := hclparse.NewParser()
	model := &config.Model{}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		model.Merge(translate(&root))
		logger.Debug("HCL file merged.", "file", file)
	}

	logger.Debug("HCL loading complete.", "files", len(files))
	return model, nil
}

func translate(root *fileRoot) *config.Model {
	m := &config.Model{
		LogLevel:  root.LogLevel,
		LogFormat: root.LogFormat,
	}
	if root.BMI != nil {
		m.BMI = &config.BMI{
			Mode:   root.BMI.Mode,
			Weight: root.BMI.Weight,
			Height: root.BMI.Height,
		}
	}
	if root.Countdown != nil {
		m.Countdown = &config.Countdown{Prompt: root.Countdown.Prompt}
	}
	return m
}
