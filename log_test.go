package distplot

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

// captureLog sends package log output at level warn and above to the
// returned buffer until the test ends.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, true, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestWarnf(t *testing.T) {
	buf := captureLog(t)

	Warnf("unknown color %q", "mauve")
	logger.Debug("hidden")
	assert.Contains(t, buf.String(), `level=WARN msg="unknown color \"mauve\""`)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Same(t, slog.Default(), func() *slog.Logger { SetLogger(nil); return Logger() }())
}
