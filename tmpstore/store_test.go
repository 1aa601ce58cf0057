package tmpstore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResultKey_Deterministic(t *testing.T) {
	lines := []string{"# Hello", "world"}

	require.Equal(t, ResultKey(lines), ResultKey([]string{"# Hello", "world"}))
	require.Len(t, ResultKey(lines), 64)
}

func TestResultKey_LineBoundariesMatter(t *testing.T) {
	require.NotEqual(t, ResultKey([]string{"ab"}), ResultKey([]string{"a", "b"}))
	require.NotEqual(t, ResultKey([]string{"a", ""}), ResultKey([]string{"a"}))
	require.NotEqual(t, ResultKey(nil), ResultKey([]string{""}))
}
