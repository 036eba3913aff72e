package caller

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func reportHere() (string, int) {
	return Info(1)
}

func TestInfoReportsImmediateCaller(t *testing.T) {
	file, line := reportHere()
	require.True(t, strings.HasSuffix(file, "caller_test.go"))
	require.Greater(t, line, 0)
}

func TestInfoAtZeroReportsItself(t *testing.T) {
	file, line := Info(0)
	require.True(t, strings.HasSuffix(file, "caller_test.go"))
	require.Greater(t, line, 0)
}
