package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.klb.dev/scrap/internal/logging"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want logging.Format
	}{
		{"text", logging.FormatText},
		{"TINT", logging.FormatText},
		{"human", logging.FormatText},
		{"json", logging.FormatJSON},
		{"auto", logging.FormatAuto},
		{"", logging.FormatAuto},
		{"nonsense", logging.FormatAuto},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, logging.ParseFormat(tt.in), tt.in)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelDebug, logging.ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel("WARN"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("bogus"))
}

func TestHandlerJSONForNonTTY(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := logging.Handler(&buf, logging.FormatAuto, slog.LevelInfo)
	logger := slog.New(h)

	logger.Info("clipboard changed", "types", []string{"text/plain"})
	require.NotEmpty(t, buf.String())
	assert.Contains(t, buf.String(), `"msg":"clipboard changed"`)

	buf.Reset()
	logger.Debug("below level")
	assert.Empty(t, buf.String())
}

func TestIsTTYNonFile(t *testing.T) {
	t.Parallel()

	assert.False(t, logging.IsTTY(&bytes.Buffer{}))
}
