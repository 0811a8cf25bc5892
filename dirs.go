// File: nickelodeon/dirs.go
package nickelodeon

import "os"

// systemConfigRoot is the system-wide configuration root probed after the
// per-user directory. On platforms without /etc it simply never matches.
const systemConfigRoot = "/etc"

// RootsFunc supplies the ordered list of platform configuration roots to
// probe after the working-directory tier. The order is authoritative for
// precedence. Replace it with WithRoots to control discovery in tests or on
// platforms with non-standard layouts.
type RootsFunc func() []string

// platformConfigRoots returns the standard roots: the per-user configuration
// directory followed by the system-wide one.
//
// XDG_CONFIG_HOME is honored explicitly before falling back to
// os.UserConfigDir, which covers the platform defaults (~/.config on Unix,
// %AppData% on Windows, ~/Library/Application Support on macOS). If neither
// can be determined the per-user root is skipped rather than failing the
// whole enumeration.
func platformConfigRoots() []string {
	var roots []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		roots = append(roots, xdg)
	} else if dir, err := os.UserConfigDir(); err == nil {
		roots = append(roots, dir)
	}
	return append(roots, systemConfigRoot)
}
