package intercepters_test

import (
	"context"
	"testing"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/atinyakov/fridgebook/internal/intercepters"
)

func TestInterceptorLogger(t *testing.T) {
	core, observedLogs := observer.New(zap.DebugLevel)
	il := intercepters.InterceptorLogger(zap.New(core))

	tests := []struct {
		name   string
		level  logging.Level
		msg    string
		fields []any
		want   zapcore.Level
		keys   []string
	}{
		{
			name:   "finished call",
			level:  logging.LevelInfo,
			msg:    "finished call",
			fields: []any{"grpc.method", "Toggle", "grpc.code", 0},
			want:   zap.InfoLevel,
			keys:   []string{"grpc.method", "grpc.code"},
		},
		{
			name:   "debug with bool",
			level:  logging.LevelDebug,
			msg:    "started call",
			fields: []any{"grpc.stream", false},
			want:   zap.DebugLevel,
			keys:   []string{"grpc.stream"},
		},
		{
			name:   "struct value",
			level:  logging.LevelWarn,
			msg:    "slow call",
			fields: []any{"peer", struct{ Addr string }{Addr: "10.0.0.1"}},
			want:   zap.WarnLevel,
			keys:   []string{"peer"},
		},
		{
			name:  "no fields",
			level: logging.LevelError,
			msg:   "call failed",
			want:  zap.ErrorLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			observedLogs.TakeAll()

			il.Log(context.Background(), tt.level, tt.msg, tt.fields...)

			logs := observedLogs.TakeAll()
			require.Len(t, logs, 1)
			assert.Equal(t, tt.want, logs[0].Level)
			assert.Equal(t, tt.msg, logs[0].Message)

			fields := logs[0].ContextMap()
			for _, key := range tt.keys {
				assert.Contains(t, fields, key)
			}
		})
	}
}

func TestInterceptorLogger_UnknownLevelPanics(t *testing.T) {
	core, _ := observer.New(zap.DebugLevel)
	il := intercepters.InterceptorLogger(zap.New(core))

	assert.Panics(t, func() {
		il.Log(context.Background(), logging.Level(999), "panic test")
	})
}
