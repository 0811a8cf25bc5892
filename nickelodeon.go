// File: nickelodeon/nickelodeon.go
package nickelodeon

import (
	"context"
	"fmt"
	"os"
)

// Option adjusts how a single Load, Resolve, or Candidates call behaves.
type Option func(*options)

type options struct {
	evaluator Evaluator
	roots     RootsFunc
	workDir   func() (string, error)
	isFile    func(string) bool
	tagName   string
	envVar    string
	flag      string
	args      []string
}

func newOptions(opts []Option) *options {
	o := &options{
		roots:   platformConfigRoots,
		workDir: os.Getwd,
		isFile:  isRegularFile,
		tagName: defaultTagName,
		args:    os.Args[1:],
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.evaluator == nil {
		o.evaluator = NewCLI()
	}
	return o
}

// WithEvaluator substitutes the Nickel evaluator. The default shells out to
// the nickel binary via NewCLI().
func WithEvaluator(e Evaluator) Option {
	return func(o *options) {
		if e != nil {
			o.evaluator = e
		}
	}
}

// WithRoots substitutes the platform configuration roots consulted after
// the working-directory tier.
func WithRoots(roots RootsFunc) Option {
	return func(o *options) {
		if roots != nil {
			o.roots = roots
		}
	}
}

// WithWorkingDir substitutes the working-directory lookup used by the
// project-local tier.
func WithWorkingDir(fn func() (string, error)) Option {
	return func(o *options) {
		if fn != nil {
			o.workDir = fn
		}
	}
}

// WithExistsFunc substitutes the existence predicate used during
// resolution. The default reports whether a path is a regular file.
func WithExistsFunc(isFile func(string) bool) Option {
	return func(o *options) {
		if isFile != nil {
			o.isFile = isFile
		}
	}
}

// WithTagName sets the struct tag consulted during decoding. Default "nickel".
func WithTagName(tag string) Option {
	return func(o *options) {
		if tag != "" {
			o.tagName = tag
		}
	}
}

// WithEnvVar names an environment variable whose non-empty value is taken
// as an explicit configuration path, bypassing discovery. Default off.
func WithEnvVar(name string) Option {
	return func(o *options) {
		o.envVar = name
	}
}

// WithFlag names a command-line flag ("--config") whose value is taken as
// an explicit configuration path, bypassing discovery. Arguments default to
// os.Args[1:]; override them with WithArgs. Default off.
func WithFlag(flag string) Option {
	return func(o *options) {
		o.flag = flag
	}
}

// WithArgs sets the argument list scanned by WithFlag.
func WithArgs(args []string) Option {
	return func(o *options) {
		o.args = args
	}
}

// Load locates, evaluates, and decodes the configuration for the
// application codename app into a value of type T.
//
// Precedence: explicitPath if non-empty, then a path named by the
// configured flag or environment variable (see WithFlag, WithEnvVar), then
// the first existing candidate from discovery. When nothing resolves, the
// zero value of T is returned with a nil error — an absent configuration is
// the documented unconfigured state, not a failure.
func Load[T any](app, explicitPath string, opts ...Option) (T, error) {
	return LoadContext[T](context.Background(), app, explicitPath, opts...)
}

// LoadContext is Load with a context governing the evaluator invocation.
func LoadContext[T any](ctx context.Context, app, explicitPath string, opts ...Option) (T, error) {
	o := newOptions(opts)

	path := explicitPath
	if path == "" {
		path = o.explicitOverride()
	}
	if path == "" {
		found, ok := firstExistingConfig(o.isFile, locationCandidates(app, o.workDir, o.roots))
		if !ok {
			var unconfigured T
			return unconfigured, nil
		}
		path = found
	}

	return loadPath[T](ctx, path, o)
}

// Resolve returns the configuration path discovery would select for app,
// and whether any candidate exists. Explicit overrides are not consulted.
func Resolve(app string, opts ...Option) (string, bool) {
	o := newOptions(opts)
	return firstExistingConfig(o.isFile, locationCandidates(app, o.workDir, o.roots))
}

// Candidates returns every path discovery would probe for app, in
// precedence order.
func Candidates(app string, opts ...Option) []string {
	o := newOptions(opts)
	return locationCandidates(app, o.workDir, o.roots)
}

// explicitOverride checks the configured flag and environment variable, in
// that order, for a caller-supplied configuration path.
func (o *options) explicitOverride() string {
	if path := pathFromArgs(o.flag, o.args); path != "" {
		return path
	}
	if o.envVar != "" {
		if path := os.Getenv(o.envVar); path != "" {
			return path
		}
	}
	return ""
}

// loadPath runs the three-stage pipeline on a single resolved path. Each
// stage's failure is wrapped into its own category and returned
// immediately; no stage recovers from another.
func loadPath[T any](ctx context.Context, path string, o *options) (T, error) {
	var zero T

	program, err := o.evaluator.Open(path)
	if err != nil {
		return zero, fmt.Errorf("%w %q: %w", ErrRead, path, err)
	}

	tree, err := program.Export(ctx)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrEvaluate, err)
	}

	value, err := decodeTree[T](tree, o.tagName)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return value, nil
}
