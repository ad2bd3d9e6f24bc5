package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(level slog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(NewCLIHandler(&buf, level)), &buf
}

func TestCLIHandler_Message(t *testing.T) {
	logger, buf := newTestLogger(slog.LevelInfo)

	logger.Info("score computed", "merged", "가나", "score", 8)

	assert.Equal(t, "score computed: merged=가나 score=8\n", buf.String())
}

func TestCLIHandler_NoColorForBuffers(t *testing.T) {
	logger, buf := newTestLogger(slog.LevelInfo)

	logger.Error("failed")

	assert.NotContains(t, buf.String(), colorRed)
	assert.NotContains(t, buf.String(), colorReset)
}

func TestCLIHandler_Color(t *testing.T) {
	var buf bytes.Buffer
	h := NewCLIHandler(&buf, slog.LevelDebug)
	h.color = true
	logger := slog.New(h)

	logger.Error("bad")
	logger.Warn("meh")
	logger.Info("good")

	out := buf.String()
	assert.Contains(t, out, colorRed+"bad"+colorReset)
	assert.Contains(t, out, colorYellow+"meh"+colorReset)
	assert.Contains(t, out, colorGreen+"good"+colorReset)
}

func TestCLIHandler_LevelFiltering(t *testing.T) {
	tests := []struct {
		name         string
		handlerLevel slog.Level
		logFunc      func(*slog.Logger)
		shouldLog    bool
	}{
		{"info handler logs info", slog.LevelInfo, func(l *slog.Logger) { l.Info("test") }, true},
		{"info handler filters debug", slog.LevelInfo, func(l *slog.Logger) { l.Debug("test") }, false},
		{"debug handler logs debug", slog.LevelDebug, func(l *slog.Logger) { l.Debug("test") }, true},
		{"warn handler filters info", slog.LevelWarn, func(l *slog.Logger) { l.Info("test") }, false},
		{"error handler logs error", slog.LevelError, func(l *slog.Logger) { l.Error("test") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newTestLogger(tt.handlerLevel)
			tt.logFunc(logger)
			assert.Equal(t, tt.shouldLog, buf.Len() > 0)
		})
	}
}

func TestCLIHandler_LevelVar(t *testing.T) {
	var buf bytes.Buffer
	lv := &slog.LevelVar{}
	logger := slog.New(NewCLIHandler(&buf, lv))

	logger.Debug("hidden")
	assert.Zero(t, buf.Len())

	lv.Set(slog.LevelDebug)
	logger.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestCLIHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := NewCLIHandler(&buf, slog.LevelInfo)

	assert.Equal(t, h, h.WithAttrs(nil))

	logger := slog.New(h).With("cmd", "match")
	logger.Info("done", "score", 3)

	assert.Equal(t, "done: cmd=match score=3\n", buf.String())
}

func TestCLIHandler_WithGroup(t *testing.T) {
	logger, buf := newTestLogger(slog.LevelInfo)

	logger.WithGroup("server").WithGroup("api").Info("hello")

	assert.Equal(t, "[server.api] hello\n", buf.String())
}

func TestCLIHandler_WithGroup_Empty(t *testing.T) {
	var buf bytes.Buffer
	h := NewCLIHandler(&buf, slog.LevelInfo)

	assert.Equal(t, h, h.WithGroup(""))
}

func TestCLIHandler_ConcurrentWrites(t *testing.T) {
	logger, buf := newTestLogger(slog.LevelInfo)
	grouped := logger.WithGroup("batch")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			grouped.Info("scored", "index", i)
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 20)
	for _, l := range lines {
		assert.True(t, strings.HasPrefix(l, "[batch] scored: index="), l)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"  debug  ", slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLogLevel(tt.input))
		})
	}
}
