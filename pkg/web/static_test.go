package web_test

import (
	"embed"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/snake-lab/pkg/web"
)

//go:embed testdata/static
var staticFS embed.FS

func TestDistServer(t *testing.T) {
	handler := web.DistServer(staticFS, "testdata/static")

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"serves file", "/app.js", http.StatusOK, "console.log"},
		{"serves nested file", "/js/game.js", http.StatusOK, "game"},
		{"missing file", "/nonexistent.js", http.StatusNotFound, ""},
		{"root", "/", http.StatusNotFound, ""},
		{"directory", "/js", http.StatusNotFound, ""},
		{"directory with slash", "/js/", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			handler(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if loc := w.Header().Get("Location"); loc != "" {
				t.Errorf("unexpected redirect to %q", loc)
			}
			if !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("body = %q, want it to contain %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestDistServer_InvalidSubdir(t *testing.T) {
	handler := web.DistServer(staticFS, "../outside")

	req := httptest.NewRequest(http.MethodGet, "/app.js", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}
