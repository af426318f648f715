/*

	log.go - structured logging for the sweeper CLI tools and façade

*/

// Package log wraps log/slog with the console+rotating-file handler pair
// the rest of the retrieved pack uses for service logging. The solver's
// pure packages (bombeq, integrate, group, area, solution) never call
// this package — only the sweeper façade and the cmd/ tools do, so the
// core algebra stays a pure function of its inputs.
package log

import (
	"context"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls where and how the module logs.
type Config struct {
	Level          string // DEBUG, INFO, WARNING, ERROR
	ConsoleEnabled bool
	FileEnabled    bool
	FilePath       string
	FileMaxSizeMB  int
	FileMaxBackups int
	FileMaxAgeDays int
}

// DefaultConfig logs INFO and above to the console only.
func DefaultConfig() Config {
	return Config{Level: "INFO", ConsoleEnabled: true}
}

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

// Initialize installs the package-level logger per cfg. Safe to call
// more than once (e.g. after a config reload); the previous logger is
// discarded.
func Initialize(cfg Config) {
	var handlers []slog.Handler
	level := parseLevel(cfg.Level)

	if cfg.ConsoleEnabled {
		handlers = append(handlers, slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	}
	if cfg.FileEnabled {
		file := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.FileMaxSizeMB,
			MaxBackups: cfg.FileMaxBackups,
			MaxAge:     cfg.FileMaxAgeDays,
		}
		handlers = append(handlers, slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level}))
	}
	if len(handlers) == 0 {
		handlers = append(handlers, slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	}

	if len(handlers) == 1 {
		logger = slog.New(handlers[0])
		return
	}
	logger = slog.New(&multiHandler{handlers: handlers})
}

func parseLevel(level string) slog.Level {
	switch level {
	case "DEBUG":
		return slog.LevelDebug
	case "WARNING", "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Debug logs a debug-level message with structured attributes.
func Debug(msg string, args ...any) { logger.Debug(msg, args...) }

// Info logs an info-level message with structured attributes.
func Info(msg string, args ...any) { logger.Info(msg, args...) }

// Warn logs a warning-level message with structured attributes.
func Warn(msg string, args ...any) { logger.Warn(msg, args...) }

// Error logs an error-level message with structured attributes.
func Error(msg string, args ...any) { logger.Error(msg, args...) }

// multiHandler fans a single slog.Record out to every configured
// handler, letting the module log to the console and a rotating file
// simultaneously.
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, r.Level) {
			if err := handler.Handle(ctx, r.Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		out[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: out}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	out := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		out[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: out}
}
