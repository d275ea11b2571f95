package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSet(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	Set(zap.New(core))

	Get().Infow("ledger loaded", "file", "stash.json", "states", 4)
	Get().Debugw("not recorded")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Message != "ledger loaded" {
		t.Errorf("Message = %q, want %q", entries[0].Message, "ledger loaded")
	}
	if got := entries[0].ContextMap()["states"]; got != int64(4) {
		t.Errorf("states = %v, want 4", got)
	}

	// Init after Set keeps the logger in place.
	Init(true)
	Get().Info("still observed")
	if logs.Len() != 2 {
		t.Errorf("got %d entries after Init, want 2", logs.Len())
	}
}
