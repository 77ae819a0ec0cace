package session

import (
	"github.com/ballotpaper/go-ballotpaper/ballot"
	"github.com/ballotpaper/go-ballotpaper/contract"
)

// Config tunes contract sessions.
type Config struct {
	// GasLimit is attached to every vote.
	GasLimit uint64 `mapstructure:"gas-limit"`
	// GasDeposit is attached to every vote.
	GasDeposit uint64 `mapstructure:"gas-deposit"`
	// MinBalance is the smallest wallet balance allowed to vote.
	MinBalance uint64 `mapstructure:"min-balance"`
	// QueryCacheSize is the number of getter responses cached between rounds.
	QueryCacheSize int `mapstructure:"query-cache-size"`
}

func DefaultConfig() Config {
	return Config{
		GasLimit:       ballot.DefaultGasLimit,
		MinBalance:     ballot.DefaultMinBalance,
		QueryCacheSize: contract.DefaultCacheSize,
	}
}
