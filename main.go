package main

import (
	"os"

	"reminder-api/confs"
	"reminder-api/db"
	"reminder-api/server"

	"golang.org/x/exp/slog"
)

func main() {
	// load config
	cfg := confs.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))

	database, err := db.Connect(cfg)
	if err != nil {
		logger.Error("failed to connect to DB", "error", err)
		os.Exit(1)
	}

	// run server
	if err := server.NewServer(database, cfg, logger).Start(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func parseLevel(level string) slog.Level {
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
