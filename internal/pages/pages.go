// Package pages maps a fixed set of URL paths to handlers that render
// static page templates. The table is built at startup and is read-only
// once it has been turned into an http.Handler.
package pages

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/JaimeStill/snake-lab/pkg/web"
)

// Handler produces a rendered page.
type Handler func() ([]byte, error)

// Renderer renders a named template with no substitution context.
type Renderer interface {
	Execute(template string) ([]byte, error)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(template string) ([]byte, error)

func (f RendererFunc) Execute(template string) ([]byte, error) {
	return f(template)
}

// Render returns a Handler that logs message at info level and returns the
// rendered template unmodified.
func Render(logger *slog.Logger, renderer Renderer, template, message string) Handler {
	return func() ([]byte, error) {
		logger.Info(message)
		return renderer.Execute(template)
	}
}

// Dispatcher is the path to handler registration table.
type Dispatcher struct {
	logger   *slog.Logger
	handlers map[string]Handler
	paths    []string

	mu     sync.Mutex
	sealed bool
}

func New(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		logger:   logger,
		handlers: make(map[string]Handler),
	}
}

// Register adds a route. It fails for an invalid or duplicate path, a nil
// handler, or after Handler has sealed the table.
func (d *Dispatcher) Register(path string, handler Handler) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.sealed {
		return fmt.Errorf("register %s: %w", path, ErrSealed)
	}
	if !validPath(path) {
		return fmt.Errorf("register %q: %w", path, ErrInvalidPath)
	}
	if handler == nil {
		return fmt.Errorf("register %s: %w", path, ErrNilHandler)
	}
	if _, exists := d.handlers[path]; exists {
		return fmt.Errorf("register %s: %w", path, ErrDuplicateRoute)
	}

	d.handlers[path] = handler
	d.paths = append(d.paths, path)
	return nil
}

// Dispatch invokes the handler registered for path and returns its output.
func (d *Dispatcher) Dispatch(path string) ([]byte, error) {
	handler, ok := d.lookup(path)
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	return handler()
}

// Paths returns the registered paths in registration order.
func (d *Dispatcher) Paths() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]string, len(d.paths))
	copy(out, d.paths)
	return out
}

// Handler seals the table and returns an http.Handler serving GET for each
// registered path. Unmatched requests get the mux's default 404; handler
// errors are logged and answered with a plain 500.
func (d *Dispatcher) Handler() http.Handler {
	d.mu.Lock()
	d.sealed = true
	paths := make([]string, len(d.paths))
	copy(paths, d.paths)
	d.mu.Unlock()

	r := web.NewRouter()
	for _, path := range paths {
		handler := d.handlers[path]
		r.HandleFunc("GET "+pattern(path), d.serve(path, handler))
	}
	return r
}

func (d *Dispatcher) serve(path string, handler Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := handler()
		if err != nil {
			d.logger.Error("render failed", "path", path, "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if err := web.WriteHTML(w, http.StatusOK, body); err != nil {
			d.logger.Debug("write response", "path", path, "error", err)
		}
	}
}

func (d *Dispatcher) lookup(path string) (Handler, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	h, ok := d.handlers[path]
	return h, ok
}

// validPath accepts rooted literal paths. Braces and whitespace would be
// read as ServeMux wildcards or method separators.
func validPath(path string) bool {
	return strings.HasPrefix(path, "/") && !strings.ContainsAny(path, "{} \t")
}

// pattern converts a literal path into a ServeMux pattern that matches only
// that path. "/" alone would match every request.
func pattern(path string) string {
	if strings.HasSuffix(path, "/") {
		return path + "{$}"
	}
	return path
}
