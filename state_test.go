package ember

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngineLevelReflectsConstructionOption(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.log")
	e, err := New(WithFilePath(path), WithLevel(Error))
	require.NoError(t, err)
	defer e.Close()

	require.Equal(t, Error, e.Level())
	e.SetLevel(Warn)
	require.Equal(t, Warn, e.Level())
}

func TestDroppedLogsIncrementsWhenRingFull(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dropped.log")
	e, err := New(WithFilePath(path), WithRingCapacity(2))
	require.NoError(t, err)
	defer e.Close()

	for i := 0; i < 10000; i++ {
		e.Log(Info, "f.go", 1, []byte("fill"))
	}
	require.Greater(t, e.DroppedLogs(), uint64(0))
}
