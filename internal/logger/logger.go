package logger

import (
	"go.uber.org/zap"
)

// New builds the application logger. The TUI owns the terminal, so
// logging is disabled unless a log file is configured; then a development
// logger writes there.
func New(logFile string) (*zap.Logger, error) {
	if logFile == "" {
		return zap.NewNop(), nil
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{logFile}
	cfg.ErrorOutputPaths = []string{logFile}
	return cfg.Build()
}
