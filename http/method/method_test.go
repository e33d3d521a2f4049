package method

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMethod(t *testing.T) {
	for _, m := range List {
		require.True(t, IsKnown(m), m)
	}

	require.False(t, IsKnown("get"))
	require.False(t, IsKnown("OPTION"))
	require.True(t, IsSafe(HEAD))
	require.False(t, IsSafe(POST))
}
