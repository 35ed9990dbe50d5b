package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

var levels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

type implLogger struct {
	logger *log.Logger
	json   *slog.Logger
	level  string
}

// New creates a text Logger writing to stdout
func New(level string) Logger {
	return NewWithFormat(level, "text", os.Stdout)
}

// NewWithFormat creates a Logger writing to w. Format is "text" or "json";
// anything else falls back to text.
func NewWithFormat(level, format string, w io.Writer) Logger {
	l := &implLogger{
		level: strings.ToLower(level),
	}
	if strings.EqualFold(format, "json") {
		l.json = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	} else {
		l.logger = log.New(w, "", log.LstdFlags)
	}
	return l
}

// Discard returns a Logger that drops everything
func Discard() Logger {
	return &implLogger{
		logger: log.New(io.Discard, "", 0),
		level:  "error",
	}
}

func (l *implLogger) shouldLog(level string) bool {
	currentLevel, ok := levels[l.level]
	if !ok {
		currentLevel = 1 // default to info
	}

	targetLevel, ok := levels[level]
	if !ok {
		return true
	}

	return targetLevel >= currentLevel
}

func (l *implLogger) write(ctx context.Context, level string, msg string, args []interface{}) {
	if !l.shouldLog(level) {
		return
	}

	reqID := RequestID(ctx)

	if l.json != nil {
		attrs := []any{}
		if reqID != "" {
			attrs = append(attrs, slog.String("request_id", reqID))
		}
		l.json.Log(ctx, slogLevel(level), fmt.Sprintf(msg, args...), attrs...)
		return
	}

	prefix := "[" + strings.ToUpper(level) + "] "
	if reqID != "" {
		prefix += "[" + reqID + "] "
	}
	l.logger.Printf("%s"+msg, append([]interface{}{prefix}, args...)...)
}

func slogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "debug", msg, args)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "info", msg, args)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "warn", msg, args)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "error", msg, args)
}
