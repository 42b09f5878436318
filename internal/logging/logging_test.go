package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogrusAdapterFields(t *testing.T) {
	logger := logrus.New()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	adapter := NewLogrusAdapterFromLogger(logger)
	adapter.Info("Parsed purchase history", Field{Key: FieldCount, Value: 3})

	out := buf.String()
	assert.Contains(t, out, `"msg":"Parsed purchase history"`)
	assert.Contains(t, out, `"count":3`)
}

func TestLogrusAdapterWithErrorAndField(t *testing.T) {
	logger := logrus.New()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	adapter := NewLogrusAdapterFromLogger(logger).
		WithError(errors.New("stat failed")).
		WithField(FieldFile, "purchases.html")
	adapter.Warn("Could not read input")

	out := buf.String()
	assert.Contains(t, out, `"error":"stat failed"`)
	assert.Contains(t, out, `"file_path":"purchases.html"`)
}

func TestNewLogrusAdapterUnknownLevelDefaultsToInfo(t *testing.T) {
	adapter, ok := NewLogrusAdapter("chatty", "text").(*LogrusAdapter)
	require.True(t, ok)
	assert.Equal(t, logrus.InfoLevel, adapter.logger.GetLevel())
}

func TestMockLoggerRecordsEntries(t *testing.T) {
	mock := &MockLogger{}
	mock.Info("first")
	mock.Warn("second", Field{Key: FieldCount, Value: 2})

	require.Len(t, mock.Entries, 2)
	assert.True(t, mock.HasEntry("INFO", "first"))
	assert.True(t, mock.HasEntry("WARN", "second"))
	assert.False(t, mock.HasEntry("ERROR", "second"))
	assert.Equal(t, []Field{{Key: FieldCount, Value: 2}}, mock.Entries[1].Fields)
}

func TestMockLoggerDerivedLoggersRecordToOriginal(t *testing.T) {
	mock := &MockLogger{}
	cause := errors.New("bad date")

	mock.WithError(cause).WithField(FieldDate, "Foo 1, 2024").Warn("Skipping block")

	require.Len(t, mock.Entries, 1)
	assert.Equal(t, cause, mock.Entries[0].Error)
	assert.Equal(t, []Field{{Key: FieldDate, Value: "Foo 1, 2024"}}, mock.Entries[0].Fields)
	assert.True(t, mock.HasEntry("WARN", "Skipping block"))
}

func TestMockLoggerReset(t *testing.T) {
	mock := &MockLogger{}
	mock.Info("something")
	mock.Reset()
	assert.Empty(t, mock.Entries)
}

func TestMockLoggerFatalDoesNotExit(t *testing.T) {
	mock := &MockLogger{}
	mock.Fatal("boom")
	mock.Fatalf("boom %d", 2)
	assert.True(t, mock.HasEntry("FATAL", "boom"))
	assert.True(t, mock.HasEntry("FATAL", "boom 2"))
}
