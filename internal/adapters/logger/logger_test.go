package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sift/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newBufferedLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()

	l, ok := logger.New().(*logger.Logger)
	require.True(t, ok)
	var buf bytes.Buffer
	l.SetOutput(&buf)
	return l, &buf
}

func TestLogger_Info(t *testing.T) {
	l, buf := newBufferedLogger(t)

	l.Info("run complete")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "run complete")
}

func TestLogger_Warn(t *testing.T) {
	l, buf := newBufferedLogger(t)

	l.Warn("remote cache unreachable")

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "remote cache unreachable")
}

func TestLogger_Error(t *testing.T) {
	l, buf := newBufferedLogger(t)

	l.Error(zerr.New("scheme not found"))

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "scheme not found")
}
