package main

import (
	"os"

	"ai-processor/internal/shared/config"
	"ai-processor/internal/shared/server"
	"ai-processor/internal/shared/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		telemetry.Error("config.load_failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	telemetry.Init(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	r := server.NewRouter(cfg)

	addr := server.Addr(cfg.Port)
	telemetry.Info("server.starting", map[string]any{"addr": addr, "debug": cfg.Debug})

	if err := r.Run(addr); err != nil {
		telemetry.Error("server.error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
