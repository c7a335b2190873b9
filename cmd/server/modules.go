package main

import (
	"net/http"

	"github.com/JaimeStill/snake-lab/internal/config"
	"github.com/JaimeStill/snake-lab/internal/lifecycle"
	"github.com/JaimeStill/snake-lab/pkg/middleware"
	"github.com/JaimeStill/snake-lab/pkg/module"
	"github.com/JaimeStill/snake-lab/web/site"
)

// buildRouter assembles the site pages, static assets and probes.
func buildRouter(runtime *Runtime, cfg *config.Config) (http.Handler, error) {
	dispatcher, err := site.Pages(runtime.Logger, cfg.Site.BasePath)
	if err != nil {
		return nil, err
	}

	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", readyHandler(runtime.Lifecycle))

	router.HandleNativeHandler("/", dispatcher.Handler())
	router.Mount(site.Static())

	return buildMiddleware(runtime).Apply(router), nil
}

func readyHandler(rc lifecycle.ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !rc.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	}
}

func buildMiddleware(runtime *Runtime) middleware.System {
	mw := middleware.New()
	mw.Use(middleware.RequestID())
	mw.Use(middleware.Logger(runtime.Logger))
	mw.Use(middleware.Recovery(runtime.Logger))
	return mw
}
