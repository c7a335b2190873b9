// Package site holds the embedded templates and assets of the public site
// and its fixed page table.
package site

import (
	"embed"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/snake-lab/internal/pages"
	"github.com/JaimeStill/snake-lab/pkg/middleware"
	"github.com/JaimeStill/snake-lab/pkg/module"
	"github.com/JaimeStill/snake-lab/pkg/web"
)

//go:embed templates/layouts/*
var layoutFS embed.FS

//go:embed templates/views/*
var viewFS embed.FS

//go:embed static
var staticFS embed.FS

const layout = "site.html"

// StaticCacheControl is sent with every /static response.
const StaticCacheControl = "public, max-age=3600"

type page struct {
	web.ViewDef
	Message string
}

var sitePages = []page{
	{
		ViewDef: web.ViewDef{Route: "/", Template: "home.html", Title: "Home"},
		Message: "rendering home page",
	},
	{
		ViewDef: web.ViewDef{Route: "/snake", Template: "snake.html", Title: "Snake", Bundle: "snake"},
		Message: "rendering snake challenge",
	},
}

// Pages parses the site templates and registers every page on a new
// dispatcher. Any template or registration error is a startup failure.
func Pages(logger *slog.Logger, basePath string) (*pages.Dispatcher, error) {
	views := make([]web.ViewDef, len(sitePages))
	for i, p := range sitePages {
		views[i] = p.ViewDef
	}

	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"templates/layouts/*.html",
		"templates/views",
		basePath,
		views,
	)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	renderer := pages.RendererFunc(func(template string) ([]byte, error) {
		return ts.ExecuteView(layout, template)
	})

	d := pages.New(logger)
	for _, p := range sitePages {
		if err := d.Register(p.Route, pages.Render(logger, renderer, p.Template, p.Message)); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Static returns the module serving embedded assets under /static.
// Directories, /static itself included, are not served.
func Static() *module.Module {
	m := module.New("/static", web.DistServer(staticFS, "static"))
	m.Use(middleware.CacheControl(StaticCacheControl))
	return m
}
