package logging

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger(level zapcore.Level) (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return NewLoggerFromCore(core), logs
}

func TestNewLogger_Formats(t *testing.T) {
	for _, format := range []string{"json", "console", ""} {
		l, err := NewLogger(LogConfig{Level: LevelDebug, Format: format})
		require.NoError(t, err, format)
		assert.NotNil(t, l)
	}
}

func TestNewLogger_EmptyOutputPaths(t *testing.T) {
	l, err := NewLogger(LogConfig{OutputPaths: []string{}})
	assert.Error(t, err)
	assert.Nil(t, l)
}

func TestNewDefaultLogger_NotNil(t *testing.T) {
	assert.NotNil(t, NewDefaultLogger())
}

func TestNopLogger_AllMethodsNoOp(t *testing.T) {
	l := NewNopLogger()
	l.Debug("msg")
	l.Info("msg", String("k", "v"))
	l.Warn("msg")
	l.Error("msg", Err(errors.New("x")))
	assert.NotNil(t, l.With(Int("n", 1)))
	assert.NotNil(t, l.Named("child"))
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"DEBUG":   zapcore.DebugLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"info":    zapcore.InfoLevel,
		"bogus":   zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestZapLogger_FieldsAreTranslated(t *testing.T) {
	l, logs := newObservedLogger(zapcore.DebugLevel)

	l.Info("analysis complete",
		String("herb", "Turmeric"),
		Strings("herbs", []string{"Turmeric", "Black Pepper"}),
		Int("compounds", 3),
		Int64("cid", 969516),
		Float64("weight", 368.38),
		Bool("fallback", true),
		Duration("elapsed", 200*time.Millisecond),
		Err(errors.New("timeout")),
		Any("meta", map[string]int{"a": 1}),
	)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "analysis complete", entry.Message)
	ctx := entry.ContextMap()
	assert.Equal(t, "Turmeric", ctx["herb"])
	assert.Equal(t, int64(3), ctx["compounds"])
	assert.Equal(t, true, ctx["fallback"])
	assert.Equal(t, "timeout", ctx["error"])
}

func TestZapLogger_WithAndNamed(t *testing.T) {
	l, logs := newObservedLogger(zapcore.DebugLevel)

	l.Named("resolver").With(String("component", "pubchem")).Warn("degraded")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "resolver", entry.LoggerName)
	assert.Equal(t, "pubchem", entry.ContextMap()["component"])
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
}

func TestZapLogger_SetLevel(t *testing.T) {
	l, err := NewLogger(LogConfig{Level: LevelInfo, OutputPaths: []string{"stdout"}})
	require.NoError(t, err)

	zl, ok := l.(*zapLogger)
	require.True(t, ok)
	setter, ok := l.(LevelSetter)
	require.True(t, ok)

	assert.False(t, zl.z.Core().Enabled(zapcore.DebugLevel))
	setter.SetLevel(LevelDebug)
	assert.True(t, zl.z.Core().Enabled(zapcore.DebugLevel))

	child := l.Named("child").(*zapLogger)
	assert.True(t, child.z.Core().Enabled(zapcore.DebugLevel))
}

func TestDefault_SetAndGet(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	l, logs := newObservedLogger(zapcore.InfoLevel)
	SetDefault(l)
	SetDefault(nil)

	Default().Info("hello")
	assert.Equal(t, 1, logs.Len())
}

//Personal.AI order the ending
