// File: nickelodeon/discovery.go
package nickelodeon

import (
	"os"
	"path/filepath"
	"strings"
)

// The two filenames accepted for a configuration file, probed in this order.
// The Nickel ecosystem uses both the terse and the explicit extension.
const (
	configNameTerse = "config.ncl"
	configNameFull  = "config.nickel"
)

// expandNames returns the two candidate paths for a configuration file
// directly under dir, terse extension first. Pure; no filesystem access.
func expandNames(dir string) []string {
	return []string{
		filepath.Join(dir, configNameTerse),
		filepath.Join(dir, configNameFull),
	}
}

// expandAppNames returns the two candidate paths under the app-scoped
// subdirectory of root (root/app/config.ncl, root/app/config.nickel).
// An empty app collapses to root itself, per filepath.Join semantics.
func expandAppNames(app, root string) []string {
	return expandNames(filepath.Join(root, app))
}

// locationCandidates enumerates every path probed for app's configuration,
// in precedence order: the dot-prefixed app directory under the current
// working directory first, then the app-scoped pair under each platform
// root. A working directory that cannot be determined contributes no
// candidates; enumeration continues with the platform tier.
func locationCandidates(app string, workDir func() (string, error), roots RootsFunc) []string {
	var candidates []string
	if dir, err := workDir(); err == nil {
		candidates = expandNames(filepath.Join(dir, "."+app))
	}
	for _, root := range roots() {
		candidates = append(candidates, expandAppNames(app, root)...)
	}
	return candidates
}

// firstExistingConfig walks candidates in order and returns the first one
// for which isFile holds, short-circuiting on the first match. The predicate
// is injected so resolution order can be verified without filesystem I/O.
func firstExistingConfig(isFile func(string) bool, candidates []string) (string, bool) {
	for _, candidate := range candidates {
		if isFile(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// isRegularFile is the production existence predicate.
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// pathFromArgs scans command-line arguments for an explicit configuration
// path given as "--flag value" or "--flag=value". Returns "" when the flag
// is absent or has no value.
func pathFromArgs(flag string, args []string) string {
	if flag == "" {
		return ""
	}
	for i, arg := range args {
		if arg == flag && i+1 < len(args) {
			return args[i+1]
		}
		if strings.HasPrefix(arg, flag+"=") {
			return strings.TrimPrefix(arg, flag+"=")
		}
	}
	return ""
}
