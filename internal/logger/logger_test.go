package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultLoggerNotNil(t *testing.T) {
	if Log == nil {
		t.Fatal("Log should never be nil")
	}
}

func TestSetLoggerRestore(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	original := Log

	restore := SetLogger(zap.New(core))
	Log.Info("hello")
	restore()

	if logs.Len() != 1 {
		t.Errorf("Expected 1 captured entry, got %d", logs.Len())
	}
	if Log != original {
		t.Error("restore should put back the previous logger")
	}
}

func TestSetLoggerNil(t *testing.T) {
	restore := SetLogger(nil)
	defer restore()

	if Log == nil {
		t.Fatal("SetLogger(nil) should install a no-op logger")
	}
	Log.Warn("dropped")
}
