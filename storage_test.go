package ember

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/embergo/ember/sink"
	"github.com/stretchr/testify/require"
)

func TestRotateReopensSamePathInAppendMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rotate.log")
	e, err := New(WithFilePath(path), WithMaxFileSize(64))
	require.NoError(t, err)
	defer e.Close()

	for i := 0; i < 20; i++ {
		e.Infof("line that pushes the file past sixty-four bytes %d", i)
	}
	require.NoError(t, e.Sync())

	require.Greater(t, e.TotalRotations(), uint64(0))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestRotateNoopWithoutBackingPath(t *testing.T) {
	e, err := New(WithLevel(Debug), WithSink(sink.NewConsole(os.Stderr, nil)))
	require.NoError(t, err)
	defer e.Close()

	before := e.TotalRotations()
	e.fileMu.Lock()
	err = e.rotate()
	e.fileMu.Unlock()
	require.NoError(t, err)
	require.Equal(t, before, e.TotalRotations())
}
