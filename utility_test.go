package ember

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCombineErrorsDropsNils(t *testing.T) {
	require.NoError(t, combineErrors(nil, nil))
}

func TestCombineErrorsSingleReturnsUnwrapped(t *testing.T) {
	err := errors.New("boom")
	require.Equal(t, err, combineErrors(nil, err, nil))
}

func TestCombineErrorsMultipleJoinsNumbered(t *testing.T) {
	err := combineErrors(errors.New("first"), errors.New("second"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "1. first")
	require.Contains(t, err.Error(), "2. second")
}

func TestSprintfMatchesFmtSprintfForWellFormedInput(t *testing.T) {
	require.Equal(t, "value=42", Sprintf("value=%d", 42))
}

func TestParseSeverityRoundTrips(t *testing.T) {
	for _, name := range []string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"} {
		lvl, err := ParseSeverity(name)
		require.NoError(t, err)
		require.Equal(t, name, lvl.String())
	}
}

func TestParseSeverityRejectsUnknown(t *testing.T) {
	_, err := ParseSeverity("TRACE")
	require.Error(t, err)
}

func TestParseKeyValue(t *testing.T) {
	key, value, err := parseKeyValue(" level = INFO ")
	require.NoError(t, err)
	require.Equal(t, "level", key)
	require.Equal(t, "INFO", value)

	_, _, err = parseKeyValue("nosign")
	require.Error(t, err)

	_, _, err = parseKeyValue("=novalue")
	require.Error(t, err)
}
