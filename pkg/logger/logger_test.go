package logger

import "testing"

func TestNewNopDiscardsEverything(t *testing.T) {
	log := NewNop()
	log.Debug("debug", "k", "v")
	log.Info("info")
	log.Warn("warn")
	log.Error("error", "k", 1)
	log.Sync()
}

func TestWithReturnsChildLogger(t *testing.T) {
	log := NewNop()
	child := log.With("component", "test")
	if child == nil {
		t.Fatalf("expected a child logger")
	}
	child.Info("still usable")
}
