package logger

import (
	"log/slog"
	"os"
)

// New builds the JSON slog logger every gameshop component shares. Level is
// fixed at Info; request logging, the banner worker and the image store
// client all write through this one handler.
func New() *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
