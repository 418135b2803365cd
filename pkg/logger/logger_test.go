package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	logger := newLogger()

	formatter, ok := logger.Formatter.(*logrus.TextFormatter)
	require.True(t, ok)
	assert.Equal(t, time.RFC3339Nano, formatter.TimestampFormat)
	assert.True(t, formatter.FullTimestamp)
}

func TestGetLogger(t *testing.T) {
	t.Run("falls back to global logger", func(t *testing.T) {
		entry := G(context.Background())
		assert.Equal(t, L.Logger, entry.Logger)
	})

	t.Run("returns logger from context", func(t *testing.T) {
		custom := logrus.NewEntry(logrus.New()).WithField("root", "skills")
		ctx := WithLogger(context.Background(), custom)

		entry := G(ctx)
		assert.Equal(t, "skills", entry.Data["root"])
	})

	t.Run("fields accumulate across nested contexts", func(t *testing.T) {
		ctx := WithLogger(context.Background(), logrus.NewEntry(logrus.New()).WithField("root", "skills"))
		ctx = WithLogger(ctx, G(ctx).WithField("dir", "alpha"))

		entry := G(ctx)
		assert.Equal(t, "skills", entry.Data["root"])
		assert.Equal(t, "alpha", entry.Data["dir"])
	})

	t.Run("panics on foreign value under logger key", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), loggerKey{}, "not-a-logger")
		assert.Panics(t, func() { G(ctx) })
	})
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	setLoggerFormat(logger, "json")

	ctx := WithLogger(context.Background(), logrus.NewEntry(logger))
	G(ctx).WithField("dir", "beta").Info("skipping skill directory")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "info", entry["logLevel"])
	assert.Equal(t, "skipping skill directory", entry["message"])
	assert.Equal(t, "beta", entry["dir"])

	timestamp, ok := entry["timestamp"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339Nano, timestamp)
	assert.NoError(t, err)
}

func TestConfigure(t *testing.T) {
	originalLevel := L.Logger.GetLevel()
	originalFormatter := L.Logger.Formatter
	defer func() {
		L.Logger.SetLevel(originalLevel)
		L.Logger.Formatter = originalFormatter
	}()

	require.NoError(t, Configure("debug", "json"))
	assert.Equal(t, logrus.DebugLevel, L.Logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, L.Logger.Formatter)

	require.NoError(t, Configure("", ""))
	assert.Equal(t, logrus.DebugLevel, L.Logger.GetLevel())

	err := Configure("loud", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
	assert.Equal(t, logrus.DebugLevel, L.Logger.GetLevel())

	require.NoError(t, Configure("warn", "text"))
	assert.Equal(t, logrus.WarnLevel, L.Logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, L.Logger.Formatter)
}

func TestSetLogOutput(t *testing.T) {
	var buf bytes.Buffer
	original := L.Logger.Out
	defer SetLogOutput(original)

	SetLogOutput(&buf)
	L.Warn("written to buffer")

	assert.Contains(t, buf.String(), "written to buffer")
}
