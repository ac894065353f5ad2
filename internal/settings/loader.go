package settings

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/cubetally/internal/ctxlog"
)

// File is the decoded settings file. Nil fields were not set.
type File struct {
	Input     *string `hcl:"input,optional"`
	Output    *string `hcl:"output,optional"`
	Records   *bool   `hcl:"records,optional"`
	LogLevel  *string `hcl:"log_level,optional"`
	LogFormat *string `hcl:"log_format,optional"`
	Archive   *string `hcl:"archive,optional"`
}

// Load parses and decodes the settings file at path. Unknown attributes and
// blocks are rejected.
func Load(ctx context.Context, path string) (*File, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Settings loader started.", "path", path)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var file File
	diags = gohcl.DecodeBody(hclFile.Body, nil, &file)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	logger.Debug("Settings file decoded.", "path", path)
	return &file, nil
}
