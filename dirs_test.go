// File: nickelodeon/dirs_test.go
package nickelodeon

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPlatformConfigRoots tests the default root list and its ordering
func TestPlatformConfigRoots(t *testing.T) {
	if runtime.GOOS == "windows" {
		// The per-user root comes from os.UserConfigDir, so the list is
		// platform-defined there; the ordering contract is exercised on Unix.
		t.Skip("platform roots are exercised on Unix only")
	}

	t.Run("XDGOverride", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")

		got := platformConfigRoots()
		assert.Equal(t, []string{"/custom/config", "/etc"}, got)
	})

	t.Run("HomeFallback", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", "/home/testuser")

		got := platformConfigRoots()
		assert.Equal(t, []string{"/home/testuser/.config", "/etc"}, got)
	})

	t.Run("UserRootSkippedWhenUndeterminable", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", "")

		got := platformConfigRoots()
		require.NotEmpty(t, got)
		assert.Equal(t, []string{"/etc"}, got)
	})
}

// TestCandidatesWiring verifies that the exported enumeration is wired to
// the real working directory and platform roots
func TestCandidatesWiring(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("platform roots are exercised on Unix only")
	}
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/testuser")

	got := Candidates("some_app")
	assert.Len(t, got, 6)
}
