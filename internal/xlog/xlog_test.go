package xlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleWritesOneLinePerRecord(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelInfo, false)
	logger.Info("decode failed", "opcode", "0xff")

	assert.Contains(t, buf.String(), "decode failed")
	assert.Contains(t, buf.String(), "opcode")
}

func TestEnabledRespectsLevel(t *testing.T) {
	h := New(&bytes.Buffer{}, slog.LevelWarn, false)
	logger := slog.New(h)
	ctx := context.Background()
	assert.False(t, logger.Enabled(ctx, slog.LevelInfo))
	assert.True(t, logger.Enabled(ctx, slog.LevelWarn))
}
