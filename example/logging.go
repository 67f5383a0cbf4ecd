package main

import (
	"fmt"
	"log/slog"
	"runtime"

	"gopkg.in/natefinch/lumberjack.v2"
)

func parseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log level %q", level)
}

// newLogger returns a JSON logger writing to a size-rotated file.
func newLogger(cfg Config) (*slog.Logger, *lumberjack.Logger) {
	w := &lumberjack.Logger{
		Filename:   cfg.Log.File,
		MaxSize:    16, // MB
		MaxBackups: 1,
	}
	lvl, _ := parseLevel(cfg.Log.Level)

	l := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	l.Info("System information",
		slog.String("GOARCH", runtime.GOARCH),
		slog.String("GOOS", runtime.GOOS),
		slog.Int("NumCPUs", runtime.NumCPU()))
	return l, w
}
