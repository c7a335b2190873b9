package main

import (
	"fmt"
	"time"

	"github.com/JaimeStill/snake-lab/internal/config"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	runtime *Runtime
	http    *httpServer
}

// NewServer builds the runtime and router. Template or route table errors
// are returned here, before anything listens.
func NewServer(cfg *config.Config) (*Server, error) {
	runtime := NewRuntime(cfg)

	router, err := buildRouter(runtime, cfg)
	if err != nil {
		return nil, fmt.Errorf("build router: %w", err)
	}

	runtime.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"env", cfg.Env(),
	)

	return &Server{
		runtime: runtime,
		http:    newHTTPServer(&cfg.Server, router, runtime.Logger),
	}, nil
}

// Start begins serving and marks the service ready once startup completes.
func (s *Server) Start() error {
	s.runtime.Logger.Info("starting service")

	if err := s.http.Start(s.runtime.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.runtime.Lifecycle.WaitForStartup()
		s.runtime.Logger.Info("all subsystems ready")
	}()

	return nil
}

// Shutdown stops all subsystems within timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.runtime.Logger.Info("initiating shutdown")
	return s.runtime.Lifecycle.Shutdown(timeout)
}
