package configs

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerNormalisation(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Logger{Level: "DEBUG"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, Logger{Level: "warning"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, Logger{Level: "loud"}.SlogLevel())

	assert.Equal(t, "json", Logger{Format: "JSON"}.SlogFormat())
	assert.Equal(t, "tint", Logger{Format: "tint"}.SlogFormat())
	assert.Equal(t, "text", Logger{Format: "xml"}.SlogFormat())
}
