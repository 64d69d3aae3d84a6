package logger

import (
	"log/slog"
	"os"
)

// LoggerAdapter implements ports.LoggerPort over slog with a JSON handler,
// so log lines are structured and machine-readable in every environment.
type LoggerAdapter struct {
	logger *slog.Logger
}

func NewLoggerAdapter(env string) *LoggerAdapter {
	level := slog.LevelDebug
	if env == "production" {
		level = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})

	return &LoggerAdapter{
		logger: slog.New(handler),
	}
}

func (l *LoggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, attrs(fields)...)
}

func (l *LoggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, attrs(fields)...)
}

func (l *LoggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, attrs(fields)...)
}

func attrs(fields map[string]interface{}) []any {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return args
}
