package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved() (*zapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &zapLogger{sugar: zap.New(core).Sugar()}, logs
}

func TestInfo_KeyValuePairsBecomeFields(t *testing.T) {
	l, logs := newObserved()

	l.Info(context.Background(), "LLM generation successful", "provider", "qwen", "input_tokens", 12)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "LLM generation successful", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "qwen", fields["provider"])
	assert.EqualValues(t, 12, fields["input_tokens"])
}

func TestInfo_PlainArgs(t *testing.T) {
	l, logs := newObserved()

	l.Info(context.Background(), "Failed to run server: ", "boom")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "Failed to run server: boom", logs.All()[0].Message)
	assert.Empty(t, logs.All()[0].ContextMap())
}

func TestRequestIDAttached(t *testing.T) {
	l, logs := newObserved()
	ctx := WithRequestID(context.Background(), "req-42")

	l.Warnf(ctx, "rate limited %s", "1.2.3.4")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "req-42", logs.All()[0].ContextMap()["request_id"])
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	assert.Equal(t, "", RequestIDFromContext(context.Background()))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"nonsense", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}
