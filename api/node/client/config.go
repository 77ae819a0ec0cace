package client

import (
	"time"

	"golang.org/x/time/rate"
)

// Config tunes the HTTP side of the node client.
type Config struct {
	// RetryMax is the number of retries for read-only requests. Transactions are never retried.
	RetryMax int `mapstructure:"retry-max"`
	// RetryWaitMin and RetryWaitMax bound the linear jitter backoff between retries.
	RetryWaitMin time.Duration `mapstructure:"retry-wait-min"`
	RetryWaitMax time.Duration `mapstructure:"retry-wait-max"`
	// RequestTimeout bounds a single HTTP attempt. Zero means no timeout.
	RequestTimeout time.Duration `mapstructure:"request-timeout"`
	// HandshakeTimeout bounds the websocket handshake of a subscription.
	HandshakeTimeout time.Duration `mapstructure:"handshake-timeout"`
	// RequestsPerSecond limits HTTP requests to the node. Zero disables the limit.
	RequestsPerSecond float64 `mapstructure:"requests-per-second"`
	RequestBurst      int     `mapstructure:"request-burst"`
}

func DefaultConfig() Config {
	return Config{
		RetryMax:          3,
		RetryWaitMin:      100 * time.Millisecond,
		RetryWaitMax:      2 * time.Second,
		RequestTimeout:    30 * time.Second,
		HandshakeTimeout:  10 * time.Second,
		RequestsPerSecond: 20,
		RequestBurst:      10,
	}
}

func (c Config) limit() rate.Limit {
	if c.RequestsPerSecond <= 0 {
		return rate.Inf
	}
	return rate.Limit(c.RequestsPerSecond)
}
