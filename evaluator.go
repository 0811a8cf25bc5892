// File: nickelodeon/evaluator.go
package nickelodeon

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var commandContext = exec.CommandContext

// Program is a loaded Nickel program, ready for full evaluation.
type Program interface {
	// Export evaluates the program for export and returns the resulting
	// value as a tree of maps, slices, and scalars.
	Export(ctx context.Context) (any, error)
}

// Evaluator loads Nickel programs from the filesystem. Open failures mean
// the program could not be loaded (read stage); Export failures mean the
// Nickel code did not evaluate (evaluation stage).
type Evaluator interface {
	Open(path string) (Program, error)
}

// Format selects the serialization format requested from nickel export.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// CLIOption configures the CLI evaluator.
type CLIOption func(*CLI)

// WithBinary overrides the default binary name.
func WithBinary(binary string) CLIOption {
	return func(c *CLI) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// WithFormat selects the export format. Default is JSON; TOML and YAML are
// useful when the exported values must round-trip through those encodings.
func WithFormat(format Format) CLIOption {
	return func(c *CLI) {
		if format != "" {
			c.format = format
		}
	}
}

// WithStderr sets the sink for the evaluator's diagnostic output. Nickel
// prints rich error reports there; the default is os.Stderr.
func WithStderr(w io.Writer) CLIOption {
	return func(c *CLI) {
		if w != nil {
			c.stderr = w
		}
	}
}

// CLI evaluates Nickel programs by shelling out to the nickel command-line
// tool ("nickel export <path> --format <format>").
type CLI struct {
	binary string
	format Format
	stderr io.Writer
}

// NewCLI constructs a CLI evaluator using defaults.
func NewCLI(opts ...CLIOption) *CLI {
	cli := &CLI{binary: "nickel", format: FormatJSON, stderr: os.Stderr}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// Open verifies that path denotes a readable regular file and that the
// nickel binary is available. No evaluation happens yet.
func (c *CLI) Open(path string) (Program, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file", path)
	}
	binary, err := exec.LookPath(c.binary)
	if err != nil {
		return nil, fmt.Errorf("locate nickel evaluator: %w", err)
	}
	return &cliProgram{binary: binary, path: path, format: c.format, stderr: c.stderr}, nil
}

var _ Evaluator = (*CLI)(nil)

type cliProgram struct {
	binary string
	path   string
	format Format
	stderr io.Writer
}

// Export runs nickel export and parses its output into a tree. Diagnostic
// output is streamed to the configured sink and also folded into the
// returned error on failure.
func (p *cliProgram) Export(ctx context.Context) (any, error) {
	var stdout, diag bytes.Buffer
	cmd := commandContext(ctx, p.binary, "export", p.path, "--format", string(p.format)) //nolint:gosec
	cmd.Stdout = &stdout
	cmd.Stderr = io.MultiWriter(p.stderr, &diag)
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(diag.String()); msg != "" {
			return nil, fmt.Errorf("nickel export %s: %w: %s", p.path, err, msg)
		}
		return nil, fmt.Errorf("nickel export %s: %w", p.path, err)
	}
	return parseTree(p.format, stdout.Bytes())
}

// parseTree converts nickel export output into the tree representation
// consumed by the decoder.
func parseTree(format Format, data []byte) (any, error) {
	switch format {
	case FormatJSON:
		var tree any
		if err := json.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("parse exported JSON: %w", err)
		}
		return tree, nil
	case FormatTOML:
		tree := make(map[string]any)
		if err := toml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("parse exported TOML: %w", err)
		}
		return tree, nil
	case FormatYAML:
		var tree any
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("parse exported YAML: %w", err)
		}
		return tree, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}
