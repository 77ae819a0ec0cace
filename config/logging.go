package config

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// LogEncoder defines a log encoder kind.
type LogEncoder = string

const (
	defaultLoggingLevel = zapcore.InfoLevel
	// ConsoleLogEncoder represents logging with plain text.
	ConsoleLogEncoder LogEncoder = "console"
	// JSONLogEncoder represents logging with JSON.
	JSONLogEncoder LogEncoder = "json"
)

// LoggerConfig holds the log encoder and level.
type LoggerConfig struct {
	Encoder LogEncoder `mapstructure:"encoder"`
	Level   string     `mapstructure:"level"`
}

func defaultLoggingConfig() LoggerConfig {
	return LoggerConfig{
		Encoder: ConsoleLogEncoder,
		Level:   defaultLoggingLevel.String(),
	}
}

// ZapLevel parses the configured level.
func (c LoggerConfig) ZapLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return lvl, fmt.Errorf("%w: logging.level: %w", ErrInvalidConfig, err)
	}
	return lvl, nil
}
