package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

var (
	validSecret   = strings.Repeat("ab", 64)
	validContract = strings.Repeat("cd", 32)
)

func TestLoadConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := `
host = "https://node.example"
contract = "` + validContract + `"

[client]
retry-max = 7
request-timeout = "3s"

[contract-session]
gas-limit = 1000
`
	require.NoError(t, afero.WriteFile(fs, "/etc/ballot.toml", []byte(content), 0o600))

	vip := viper.New()
	require.NoError(t, LoadConfig(fs, "/etc/ballot.toml", vip))
	require.Equal(t, "https://node.example", vip.GetString("host"))
	require.Equal(t, 7, vip.GetInt("client.retry-max"))
	require.Equal(t, 3*time.Second, vip.GetDuration("client.request-timeout"))
	require.EqualValues(t, 1000, vip.GetUint64("contract-session.gas-limit"))
}

func TestLoadConfigMissing(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, LoadConfig(fs, "", viper.New()))
	require.Error(t, LoadConfig(fs, "/missing.toml", viper.New()))
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		desc   string
		modify func(*Config)
		err    bool
	}{
		{desc: "defaults", modify: func(*Config) {}},
		{desc: "valid identity", modify: func(c *Config) {
			c.Secret = validSecret
			c.Contract = validContract
		}},
		{desc: "empty host", modify: func(c *Config) { c.Host = " " }, err: true},
		{desc: "short secret", modify: func(c *Config) { c.Secret = validSecret[:127] }, err: true},
		{desc: "secret not hex", modify: func(c *Config) { c.Secret = strings.Repeat("zz", 64) }, err: true},
		{desc: "secret and file", modify: func(c *Config) {
			c.Secret = validSecret
			c.SecretFile = "/secret"
		}, err: true},
		{desc: "long contract", modify: func(c *Config) { c.Contract = validContract + "00" }, err: true},
		{desc: "zero gas limit", modify: func(c *Config) { c.Session.GasLimit = 0 }, err: true},
		{desc: "bad log level", modify: func(c *Config) { c.Logging.Level = "loud" }, err: true},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.err {
				require.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestResolveSecret(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/secret", []byte(validSecret+"\n"), 0o600))
	require.NoError(t, afero.WriteFile(fs, "/bad", []byte("abc"), 0o600))

	cfg := DefaultConfig()
	_, err := cfg.ResolveSecret(fs)
	require.ErrorIs(t, err, ErrInvalidConfig)

	cfg.SecretFile = "/secret"
	secret, err := cfg.ResolveSecret(fs)
	require.NoError(t, err)
	require.Equal(t, validSecret, secret)

	cfg.SecretFile = "/bad"
	_, err = cfg.ResolveSecret(fs)
	require.ErrorIs(t, err, ErrInvalidConfig)

	cfg.SecretFile = "/missing"
	_, err = cfg.ResolveSecret(fs)
	require.Error(t, err)

	cfg.Secret = validSecret
	secret, err = cfg.ResolveSecret(fs)
	require.NoError(t, err)
	require.Equal(t, validSecret, secret)
}

func TestContractAddress(t *testing.T) {
	cfg := DefaultConfig()
	_, err := cfg.ContractAddress()
	require.ErrorIs(t, err, ErrInvalidConfig)

	cfg.Contract = validContract
	id, err := cfg.ContractAddress()
	require.NoError(t, err)
	require.Equal(t, validContract, id.String())

	cfg.Contract = "00"
	_, err = cfg.ContractAddress()
	require.ErrorIs(t, err, ErrInvalidConfig)
}
