package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLoggerFormats(t *testing.T) {
	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf, "info", "json")
		logger.Info("hello", "k", "v")

		assert.True(t, strings.HasPrefix(buf.String(), "{"))
		assert.Contains(t, buf.String(), `"k":"v"`)
	})

	t.Run("text format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf, "info", "text")
		logger.Info("hello", "k", "v")

		assert.Contains(t, buf.String(), "k=v")
	})
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "warn", "text")

	logger.Info("dropped")
	assert.Empty(t, buf.String())

	logger.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestParseLevelFallback(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "nonsense", "text")

	logger.Info("dropped")
	assert.Empty(t, buf.String(), "unknown level should default to warn")
}
