package octonav

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/octonav/internal/searcher"
)

func bufferLogger(level slog.Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level})), &buf
}

func TestLogger_LogBuild(t *testing.T) {
	l, buf := bufferLogger(slog.LevelInfo)

	l.LogBuild(context.Background(), Stats{Nodes: 12, Edges: 30, Components: 1}, nil)
	assert.Contains(t, buf.String(), `"msg":"navigation built"`)
	assert.Contains(t, buf.String(), `"nodes":12`)

	buf.Reset()
	l.LogBuild(context.Background(), Stats{}, errors.New("boom"))
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), "boom")
}

func TestLogger_LogSearch(t *testing.T) {
	l, buf := bufferLogger(slog.LevelDebug)

	l.LogSearch(context.Background(), PathResult{Status: StatusFound, Expanded: 4}, time.Millisecond)
	assert.Contains(t, buf.String(), "path found")

	buf.Reset()
	l.LogSearch(context.Background(), PathResult{Status: StatusBudgetExceeded}, time.Millisecond)
	assert.Contains(t, buf.String(), `"status":"budget_exceeded"`)
}

func TestLogger_LevelFilters(t *testing.T) {
	l, buf := bufferLogger(slog.LevelInfo)
	l.LogSearch(context.Background(), PathResult{Status: StatusFound}, 0)
	assert.Empty(t, buf.String())

	l.LogPoolOverflow(context.Background(), searcher.PoolStats{Capacity: 2, Overflows: 1})
	assert.Contains(t, buf.String(), `"capacity":2`)
}

func TestLogger_WithComponent(t *testing.T) {
	l, buf := bufferLogger(slog.LevelInfo)
	l.WithComponent("bench").Info("hello")
	assert.Contains(t, buf.String(), `"component":"bench"`)
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}
