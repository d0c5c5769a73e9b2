package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithRequest(t *testing.T) {
	f := WithRequest("req-1", "Cmaj7")
	assert.Equal(t, Fields{"request_id": "req-1", "query": "Cmaj7"}, f)
}

func TestFormatFields(t *testing.T) {
	assert.Equal(t, "", formatFields(nil))
	assert.Equal(t, "", formatFields(Fields{}))
	assert.Equal(t, "{query=Cmaj7}", formatFields(Fields{"query": "Cmaj7"}))
	assert.Equal(t, "{count=3}", formatFields(Fields{"count": 3}))
}

func TestConvertFieldsToMap(t *testing.T) {
	f := Fields{"a": 1, "b": "two"}
	assert.Equal(t, map[string]interface{}{"a": 1, "b": "two"}, convertFieldsToMap(f))
}

func TestLevelsWithoutSentry(t *testing.T) {
	// No Sentry client configured: every level logs locally and skips the
	// breadcrumb path without panicking.
	Info("info message", Fields{"k": "v"})
	Warn("warn message", nil)
	Debug("debug message", Fields{"n": 1})
	Error("error message", errors.New("boom"), Fields{"request_id": "req-1"})
}
