package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]int{4, 7, 7}, 7))
	require.Equal(t, -1, FindIndex([]int{4, 7}, 5))
	require.Equal(t, -1, FindIndex(nil, "x"))
}

func TestSortedKeys(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c"}, SortedKeys(map[string]int{"c": 1, "a": 2, "b": 3}))
	require.Empty(t, SortedKeys(map[int]bool{}))
}
