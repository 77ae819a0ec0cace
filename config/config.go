// Package config contains go-ballotpaper configuration definitions.
package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/ballotpaper/go-ballotpaper/api/node/client"
	"github.com/ballotpaper/go-ballotpaper/common/types"
	"github.com/ballotpaper/go-ballotpaper/session"
	"github.com/ballotpaper/go-ballotpaper/signing"
)

const (
	defaultConfigFileName = "./ballot.toml"
	defaultDataDirName    = ".ballotpaper"
	defaultHost           = "http://localhost:9000"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config defines the configuration of the ballot client.
type Config struct {
	Preset     string `mapstructure:"preset"`
	ConfigFile string `mapstructure:"config"`

	// Host is the base URL of the node.
	Host string `mapstructure:"host"`
	// Secret is the hex encoded private key of the voter. SecretFile is read when it is empty.
	Secret     string `mapstructure:"secret"`
	SecretFile string `mapstructure:"secret-file"`
	// Contract is the hex encoded address of the ballot contract.
	Contract string `mapstructure:"contract"`
	DataDir  string `mapstructure:"data-dir"`

	Client  client.Config  `mapstructure:"client"`
	Session session.Config `mapstructure:"contract-session"`
	Logging LoggerConfig   `mapstructure:"logging"`
	Metrics MetricsConfig  `mapstructure:"metrics"`
}

// MetricsConfig controls the prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

// DefaultConfig returns the default configuration for the ballot client.
func DefaultConfig() Config {
	return Config{
		Host:    defaultHost,
		DataDir: defaultDataDir(),
		Client:  client.DefaultConfig(),
		Session: session.DefaultConfig(),
		Logging: defaultLoggingConfig(),
		Metrics: MetricsConfig{
			Port: 1010,
		},
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultDataDirName
	}
	return filepath.Join(home, defaultDataDirName)
}

// LoadConfig reads the config file at fileLocation from fs into vip. Without a location the
// default file is read when it exists.
func LoadConfig(fs afero.Fs, fileLocation string, vip *viper.Viper) error {
	vip.SetFs(fs)
	if fileLocation == "" {
		if _, err := fs.Stat(defaultConfigFileName); err != nil {
			return nil
		}
		fileLocation = defaultConfigFileName
	}
	vip.SetConfigFile(fileLocation)
	if err := vip.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", fileLocation, err)
	}
	return nil
}

// Validate checks the length gates of the identity and contract settings.
func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.Host) == "" {
		return fmt.Errorf("%w: host is empty", ErrInvalidConfig)
	}
	if cfg.Secret != "" && cfg.SecretFile != "" {
		return fmt.Errorf("%w: secret and secret-file are mutually exclusive", ErrInvalidConfig)
	}
	if cfg.Secret != "" {
		if err := validateHex("secret", cfg.Secret, signing.PrivateKeyHexSize); err != nil {
			return err
		}
	}
	if cfg.Contract != "" {
		if err := validateHex("contract", cfg.Contract, types.AccountIDHexLength); err != nil {
			return err
		}
	}
	if cfg.Session.GasLimit == 0 {
		return fmt.Errorf("%w: contract-session.gas-limit must be positive", ErrInvalidConfig)
	}
	if _, err := cfg.Logging.ZapLevel(); err != nil {
		return err
	}
	return nil
}

func validateHex(name, value string, size int) error {
	if len(value) != size {
		return fmt.Errorf("%w: %s must be %d hex characters, got %d", ErrInvalidConfig, name, size, len(value))
	}
	if _, err := hex.DecodeString(value); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, name, err)
	}
	return nil
}

// ResolveSecret returns the configured secret, reading SecretFile from fs when Secret is empty.
func (cfg *Config) ResolveSecret(fs afero.Fs) (string, error) {
	if cfg.Secret != "" {
		return cfg.Secret, nil
	}
	if cfg.SecretFile == "" {
		return "", fmt.Errorf("%w: no secret configured", ErrInvalidConfig)
	}
	data, err := afero.ReadFile(fs, cfg.SecretFile)
	if err != nil {
		return "", fmt.Errorf("read secret file: %w", err)
	}
	secret := strings.TrimSpace(string(data))
	if err := validateHex("secret-file", secret, signing.PrivateKeyHexSize); err != nil {
		return "", err
	}
	return secret, nil
}

// ContractAddress parses the configured contract address.
func (cfg *Config) ContractAddress() (types.AccountID, error) {
	if cfg.Contract == "" {
		return types.AccountID{}, fmt.Errorf("%w: no contract configured", ErrInvalidConfig)
	}
	id, err := types.ParseAccountID(cfg.Contract)
	if err != nil {
		return types.AccountID{}, fmt.Errorf("%w: contract: %w", ErrInvalidConfig, err)
	}
	return id, nil
}
