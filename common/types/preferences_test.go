package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ballotpaper/go-ballotpaper/common/types"
)

func TestPreferences(t *testing.T) {
	for _, n := range []int{0, 1, 5, 255} {
		p := types.NewPreferences(n)
		require.Len(t, p, n)
		require.True(t, p.IsZero())
		require.Len(t, p.Encode(), n)
	}

	p := types.Preferences{3, 1, 2}
	require.Equal(t, []byte{3, 1, 2}, p.Encode())
	require.False(t, p.IsZero())

	clone := p.Clone()
	p.Reset()
	require.True(t, p.IsZero())
	require.Len(t, p, 3)
	require.Equal(t, types.Preferences{3, 1, 2}, clone)
}
