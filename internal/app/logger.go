package app

import (
	"log/slog"
	"os"

	"fast-delivery-orders/internal/logx"
)

// NewLogger returns the process logger: JSON lines on stdout.
func NewLogger() logx.Logger {
	return logx.NewJSON(os.Stdout, slog.LevelInfo)
}
