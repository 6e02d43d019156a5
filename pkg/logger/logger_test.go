package logger

import (
	"testing"
)

// TestInitAndGet tests that Init installs a global logger
func TestInitAndGet(t *testing.T) {
	Init(InfoLevel, "text")
	log := Get()
	if log == nil {
		t.Fatal("Get returned nil after Init")
	}
	log.Info("test message", "key", "value")
}

// TestGetWithoutInit tests the lazy fallback logger
func TestGetWithoutInit(t *testing.T) {
	globalLogger = nil
	log := Get()
	if log == nil {
		t.Fatal("Get should never return nil")
	}
}

// TestJSONFormat tests JSON handler selection
func TestJSONFormat(t *testing.T) {
	Init(DebugLevel, "json")
	log := Get()
	log.Debug("debug message", "n", 1)
}

// TestWith tests attribute chaining
func TestWith(t *testing.T) {
	Init(InfoLevel, "text")
	log := Get().With("component", "test")
	if log == nil {
		t.Fatal("With returned nil")
	}
	log.Info("chained")
}
