package ember

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().validate())
}

func TestNewConfigFromFileFallsBackOnMissingFile(t *testing.T) {
	cfg, err := NewConfigFromFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	require.Equal(t, "INFO", cfg.Level)
}

func TestNewConfigFromFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ember.toml")
	require.NoError(t, os.WriteFile(path, []byte(`[ember]
level = "DEBUG"
directory = "./custom_logs"
max_size_mb = 5
`), 0644))

	cfg, err := NewConfigFromFile(path)
	require.NoError(t, err)
	require.Equal(t, "DEBUG", cfg.Level)
	require.Equal(t, "./custom_logs", cfg.Directory)
	require.Equal(t, int64(5), cfg.MaxSizeMB)
}

func TestConfigValidateRejectsBadLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "TRACE"
	require.Error(t, cfg.validate())
}

func TestConfigValidateRejectsBadHeartbeatLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HeartbeatLevel = 4
	require.Error(t, cfg.validate())
}

func TestConfigToOptionsBuildsUsableEngine(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Directory = t.TempDir()
	cfg.Name = "app"
	cfg.Extension = "log"

	e, err := New(cfg.ToOptions()...)
	require.NoError(t, err)
	defer e.Close()

	e.Infof("via config")
	require.NoError(t, e.Sync())

	contents, err := os.ReadFile(filepath.Join(cfg.Directory, "app.log"))
	require.NoError(t, err)
	require.Contains(t, string(contents), "via config")
}

func TestConfigCloneIsIndependent(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()
	clone.Level = "ERROR"
	require.Equal(t, "INFO", cfg.Level)
}

func TestApplyOverrideLeavesOriginalUntouched(t *testing.T) {
	cfg := DefaultConfig()
	updated, err := cfg.ApplyOverride("level=ERROR", "max_size_mb=7")
	require.NoError(t, err)
	require.Equal(t, "INFO", cfg.Level)
	require.Equal(t, "ERROR", updated.Level)
	require.Equal(t, int64(7), updated.MaxSizeMB)
}

func TestApplyOverrideRejectsUnknownKey(t *testing.T) {
	cfg := DefaultConfig()
	_, err := cfg.ApplyOverride("bogus=1")
	require.Error(t, err)
}
