// Package log builds the zap loggers used across go-ballotpaper and carries
// the helpers for contextual log fields.
package log

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// where logs go by default.
var logWriter io.Writer = os.Stdout

var (
	mu      sync.RWMutex
	jsonLog bool
)

// JSONLog turns JSON encoding on or off for loggers created afterwards.
func JSONLog(b bool) {
	mu.Lock()
	defer mu.Unlock()

	jsonLog = b
}

// Encoder returns the encoder selected by JSONLog.
func Encoder() zapcore.Encoder {
	mu.RLock()
	defer mu.RUnlock()

	if jsonLog {
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	return zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
}

// NewWithLevel creates a logger with a fixed level and with a set of (optional) hooks.
func NewWithLevel(module string, level zap.AtomicLevel, hooks ...func(zapcore.Entry) error) *zap.Logger {
	return newWithWriter(zapcore.AddSync(logWriter), module, level, hooks...)
}

func newWithWriter(ws zapcore.WriteSyncer, module string, level zap.AtomicLevel,
	hooks ...func(zapcore.Entry) error,
) *zap.Logger {
	core := zapcore.NewCore(Encoder(), ws, level)
	return zap.New(zapcore.RegisterHooks(core, hooks...)).Named(module)
}

// ShortStringer is implemented by ids that have an abbreviated form for logs.
type ShortStringer interface {
	ShortString() string
}

// ZShortStringer logs the short form of an id.
func ZShortStringer(name string, val ShortStringer) zap.Field {
	return zap.String(name, val.ShortString())
}
