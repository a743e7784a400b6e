package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	Setup(level, buf)
	t.Cleanup(func() { Setup("info", nil) })
	return buf
}

func TestSetup_Levels(t *testing.T) {
	cases := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"info":    logrus.InfoLevel,
		"warn":    logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"verbose": logrus.InfoLevel,
	}
	for input, want := range cases {
		t.Run(input, func(t *testing.T) {
			captureLogs(t, input)
			assert.Equal(t, want, logrus.GetLevel())
		})
	}
}

func TestWithContext_AddsRequestID(t *testing.T) {
	buf := captureLogs(t, "info")

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-42")
	WithContext(ctx).WithField("technician_id", "751").Info("moved")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "751", entry["technician_id"])
	assert.Equal(t, "moved", entry["msg"])
}

func TestWithContext_WithoutRequestID(t *testing.T) {
	buf := captureLogs(t, "info")

	WithContext(context.Background()).WithError(errors.New("boom")).Warn("fetch failed")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotContains(t, entry, "request_id")
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "warning", entry["level"])
}

func TestDebugSuppressedAtInfo(t *testing.T) {
	buf := captureLogs(t, "info")
	New().Debug("hidden")
	assert.Empty(t, buf.String())
}
