package fileconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/embergo/ember"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "ember.conf")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadParsesRecognizedKeys(t *testing.T) {
	path := writeConfig(t, "verbosity=WARN\nlogFilePath=/var/log/app/\nunused=ignored\n")
	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ember.Warn, s.Verbosity)
	require.Equal(t, "/var/log/app/", s.LogFilePath)
}

func TestLoadDefaultsUnknownVerbosityToDebug(t *testing.T) {
	path := writeConfig(t, "verbosity=NOISY\n")
	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ember.Debug, s.Verbosity)
}

func TestLoadSkipsLinesWithoutEquals(t *testing.T) {
	path := writeConfig(t, "# comment\nverbosity=ERROR\nmalformed line\n")
	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ember.Error, s.Verbosity)
}

func TestLoadReturnsErrorOnMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.conf"))
	require.Error(t, err)
}
