package logger_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/einvoice/internal/logger"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"trace", zerolog.TraceLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, logger.ParseLevel(tt.in))
		})
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(logger.Config{Level: "debug", Format: "json"}, &buf)

	cl := logger.WithComponent(l, "writer")
	cl.Debug().Str("profile", "EXTENDED").Msg("encoded")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "writer", entry["component"])
	assert.Equal(t, "EXTENDED", entry["profile"])
	assert.Equal(t, "encoded", entry["message"])
	assert.NotEmpty(t, entry["time"])
}

func TestNewWithWriter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(logger.Config{Level: "warn", Format: "json"}, &buf)

	l.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewWithWriter_Console(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(logger.DefaultConfig(), &buf)

	l.Info().Msg("decoded")
	assert.Contains(t, buf.String(), "decoded")
	assert.False(t, json.Valid(buf.Bytes()))
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "einvoice.log")

	l, err := logger.New(logger.Config{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)
	l.Info().Msg("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")

	_, err = logger.New(logger.Config{Output: filepath.Join(t.TempDir(), "missing", "x.log")})
	assert.Error(t, err)
}
