package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCapturedAdapter() (Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return NewLogrusAdapterFromLogger(logger), buf
}

func TestLogrusAdapterLevels(t *testing.T) {
	adapter, buf := newCapturedAdapter()

	adapter.Debug("debug message")
	adapter.Info("info message")
	adapter.Warn("warn message")
	adapter.Error("error message")

	output := buf.String()
	assert.Contains(t, output, "debug message")
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestLogrusAdapterFields(t *testing.T) {
	adapter, buf := newCapturedAdapter()

	adapter.Info("with fields",
		Field{Key: "file", Value: "input.csv"},
		Field{Key: "rows", Value: 42},
	)

	output := buf.String()
	assert.Contains(t, output, `"file":"input.csv"`)
	assert.Contains(t, output, `"rows":42`)
}

func TestLogrusAdapterWithErrorAndField(t *testing.T) {
	adapter, buf := newCapturedAdapter()

	adapter.WithError(errors.New("boom")).Warn("failed")
	adapter.WithField("kind", "payroll").Info("routed")

	output := buf.String()
	assert.Contains(t, output, `"error":"boom"`)
	assert.Contains(t, output, `"kind":"payroll"`)
}

func TestNewLogrusAdapterInvalidLevel(t *testing.T) {
	// Falls back to info rather than failing.
	adapter := NewLogrusAdapter("nonsense", "text")
	require.NotNil(t, adapter)
}

func TestSetLoggerIgnoresNil(t *testing.T) {
	current := GetLogger()
	SetLogger(nil)
	assert.Equal(t, current, GetLogger())
}
