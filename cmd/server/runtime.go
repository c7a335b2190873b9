package main

import (
	"log/slog"

	"github.com/JaimeStill/snake-lab/internal/config"
	"github.com/JaimeStill/snake-lab/internal/lifecycle"
	"github.com/JaimeStill/snake-lab/pkg/logging"
)

// Runtime is the process-wide application context handed to every
// subsystem at construction.
type Runtime struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
}

func NewRuntime(cfg *config.Config) *Runtime {
	return &Runtime{
		Lifecycle: lifecycle.New(),
		Logger:    logging.New(&cfg.Logging),
	}
}
