package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level     string
		wantTrace bool
		wantDebug bool
		wantInfo  bool
	}{
		{"trace", true, true, true},
		{"debug", false, true, true},
		{"info", false, false, true},
		{"error", false, false, false},
		{"bogus", false, false, true},
		{"", false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Config{Level: tt.level, Output: &buf})

			logger.Trace().Msg("trace message")
			logger.Debug().Msg("debug message")
			logger.Info().Msg("info message")

			out := buf.String()
			assert.Equal(t, tt.wantTrace, bytes.Contains([]byte(out), []byte("trace message")))
			assert.Equal(t, tt.wantDebug, bytes.Contains([]byte(out), []byte("debug message")))
			assert.Equal(t, tt.wantInfo, bytes.Contains([]byte(out), []byte("info message")))
		})
	}
}

func TestNewWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithComponent(Config{Level: "info", Output: &buf}, "scan")

	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"scan"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)
}

func TestNewPretty(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Pretty: true, Output: &buf})

	logger.Info().Str("file", "a.bin").Msg("pretty message")

	assert.Contains(t, buf.String(), "pretty message")
	assert.NotContains(t, buf.String(), `"message"`)
}
