package cmd

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/ballotpaper/go-ballotpaper/config"
	"github.com/ballotpaper/go-ballotpaper/config/presets"
)

// AddFlags adds the configuration flags to flagSet. Every flag writes into cfg.
func AddFlags(flagSet *pflag.FlagSet, cfg *config.Config) {
	flagSet.StringVarP(&cfg.Preset, "preset", "p", cfg.Preset,
		fmt.Sprintf("preset overwrites default values of the config. options %+s", presets.Options()))
	flagSet.StringVarP(&cfg.ConfigFile, "config", "c", cfg.ConfigFile, "load configuration from file")

	/** ======================== Session Flags ========================== **/
	flagSet.StringVar(&cfg.Host, "host", cfg.Host, "base URL of the node")
	flagSet.StringVar(&cfg.Secret, "secret", cfg.Secret, "hex encoded private key of the voter")
	flagSet.StringVar(&cfg.SecretFile, "secret-file", cfg.SecretFile, "file holding the hex encoded private key")
	flagSet.StringVar(&cfg.Contract, "contract", cfg.Contract, "hex encoded address of the ballot contract")
	flagSet.StringVarP(&cfg.DataDir, "data-dir", "d", cfg.DataDir, "directory for vote receipts")

	/** ======================== Client Flags ========================== **/
	flagSet.IntVar(&cfg.Client.RetryMax, "retry-max", cfg.Client.RetryMax,
		"retries of read-only requests to the node")
	flagSet.DurationVar(&cfg.Client.RequestTimeout, "request-timeout", cfg.Client.RequestTimeout,
		"timeout of a single request to the node")
	flagSet.Float64Var(&cfg.Client.RequestsPerSecond, "requests-per-second", cfg.Client.RequestsPerSecond,
		"rate limit of requests to the node, 0 disables it")

	/** ======================== Contract Session Flags ========================== **/
	flagSet.Uint64Var(&cfg.Session.GasLimit, "gas-limit", cfg.Session.GasLimit, "gas limit attached to a vote")
	flagSet.Uint64Var(&cfg.Session.GasDeposit, "gas-deposit", cfg.Session.GasDeposit,
		"gas deposit attached to a vote")

	/** ======================== Logging and Metrics Flags ========================== **/
	flagSet.StringVar(&cfg.Logging.Encoder, "log-encoder", cfg.Logging.Encoder, "log as JSON instead of plain text")
	flagSet.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "log level")
	flagSet.BoolVar(&cfg.Metrics.Enabled, "metrics", cfg.Metrics.Enabled, "serve prometheus metrics")
	flagSet.IntVar(&cfg.Metrics.Port, "metrics-port", cfg.Metrics.Port, "metrics server port")
}
