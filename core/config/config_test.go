package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noesisnoema/pbxmend/core/config"
)

// chdir is a stand-in for testing.T.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadWithoutConfigFileUsesDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultProjectPath, cfg.Project)
	assert.Equal(t, "5.0", cfg.SwiftVersion)
}

func TestLoadReadsConfigFile(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(config.FileName, []byte("project: Other.xcodeproj/project.pbxproj\n"), 0644))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "Other.xcodeproj/project.pbxproj", cfg.Project)
	// Unset keys fall back to defaults.
	assert.Equal(t, "5.0", cfg.SwiftVersion)
}

func TestLoadRejectsInvalidYaml(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(config.FileName, []byte("project: [\n"), 0644))

	_, err := config.Load()
	assert.Error(t, err)
}
