package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/JaimeStill/snake-lab/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	srv, err := NewServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "startup: %v\n", err)
		os.Exit(1)
	}

	if err := srv.Start(); err != nil {
		srv.runtime.Logger.Error("start failed", "error", err)
		os.Exit(1)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := srv.Shutdown(cfg.ShutdownTimeoutDuration()); err != nil {
		srv.runtime.Logger.Error("shutdown failed", "error", err)
		os.Exit(1)
	}

	srv.runtime.Logger.Info("service stopped")
}
