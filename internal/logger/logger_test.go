package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level zapcore.LevelEnabler
	}{
		{name: "with debug level", level: zapcore.DebugLevel},
		{name: "with error level", level: zapcore.ErrorLevel},
		{name: "with nil level", level: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.NotNil(t, New(tt.level))
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected zapcore.Level
		valid    bool
	}{
		{name: "debug level", input: "debug", expected: zapcore.DebugLevel, valid: true},
		{name: "warn level", input: "warn", expected: zapcore.WarnLevel, valid: true},
		{name: "uppercase error", input: "ERROR", expected: zapcore.ErrorLevel, valid: true},
		{name: "with spaces", input: " info ", expected: zapcore.InfoLevel, valid: true},
		{name: "invalid level", input: "loud", expected: zapcore.InfoLevel, valid: false},
		{name: "empty string", input: "", expected: zapcore.InfoLevel, valid: false},
		{name: "blank string", input: "   ", expected: zapcore.InfoLevel, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			level, valid := ParseLogLevel(tt.input)
			assert.Equal(t, tt.expected, level)
			assert.Equal(t, tt.valid, valid)
		})
	}
}

func TestSetLevel(t *testing.T) {
	// Not parallel: mutates the shared level.
	original := Level()
	defer SetLevel(original)

	SetLevel(zapcore.DebugLevel)
	assert.Equal(t, zapcore.DebugLevel, Level())
	assert.True(t, IsDebugLevel())

	SetLevel(zapcore.ErrorLevel)
	assert.Equal(t, zapcore.ErrorLevel, Level())
	assert.False(t, IsDebugLevel())
}

func TestSetLogger(t *testing.T) {
	original := Logger()
	defer SetLogger(original)

	replacement := New(zapcore.DebugLevel)
	SetLogger(replacement)

	assert.Equal(t, replacement, Logger())
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	scoped := zap.New(core).Sugar()

	ctx := ToContext(context.Background(), scoped)
	ctx = WithKV(ctx, "session", "abc")

	InfoKV(ctx, "playback started", "chapter", 1)
	Warnf(ctx, "slow stream: %s", "x")

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "playback started", entries[0].Message)
		assert.Equal(t, "abc", entries[0].ContextMap()["session"])
		assert.Equal(t, int64(1), entries[0].ContextMap()["chapter"])
		assert.Equal(t, "slow stream: x", entries[1].Message)
	}
}

func TestFromContextFallsBackToGlobal(t *testing.T) {
	t.Parallel()

	//nolint:staticcheck // nil context is part of the contract.
	assert.Equal(t, Logger(), FromContext(nil))
	assert.Equal(t, Logger(), FromContext(context.Background()))
}
