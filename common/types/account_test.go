package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ballotpaper/go-ballotpaper/common/types"
)

func u64(v uint64) *uint64 { return &v }

func TestAccountApply(t *testing.T) {
	acc := types.Account{Balance: 1, Stake: 2, GasBalance: 7}

	t.Run("present fields overwrite", func(t *testing.T) {
		got := acc.Apply(types.AccountDelta{Stake: u64(3)})
		require.Equal(t, types.Account{Balance: 1, Stake: 3, GasBalance: 7}, got)
	})
	t.Run("empty delta is identity", func(t *testing.T) {
		require.True(t, types.AccountDelta{}.IsEmpty())
		require.Equal(t, acc, acc.Apply(types.AccountDelta{}))
	})
	t.Run("zero value is still present", func(t *testing.T) {
		got := acc.Apply(types.AccountDelta{GasBalance: u64(0)})
		require.Zero(t, got.GasBalance)
		require.EqualValues(t, 1, got.Balance)
	})
	t.Run("receiver is not mutated", func(t *testing.T) {
		_ = acc.Apply(types.AccountDelta{Balance: u64(100)})
		require.EqualValues(t, 1, acc.Balance)
	})
}
