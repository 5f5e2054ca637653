package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It is never nil.
var Log = newDefaultLogger()

func newDefaultLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log.Named("ksd")
}

// SetLogger replaces Log and returns a func restoring the previous one.
// A nil logger installs a no-op logger.
func SetLogger(l *zap.Logger) func() {
	prev := Log
	if l == nil {
		l = zap.NewNop()
	}
	Log = l
	return func() { Log = prev }
}

// Sync flushes buffered entries, ignoring errors from unsyncable outputs.
func Sync() {
	_ = Log.Sync()
}
