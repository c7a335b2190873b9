package web_test

import (
	"embed"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/snake-lab/pkg/web"
)

//go:embed testdata/layouts/*
var layoutFS embed.FS

//go:embed testdata/views/*
var viewFS embed.FS

var testViews = []web.ViewDef{
	{Route: "/{$}", Template: "home.html", Title: "Home", Bundle: "app"},
	{Route: "/about", Template: "about.html", Title: "About", Bundle: "app"},
}

func newTestSet(t *testing.T, views []web.ViewDef) *web.TemplateSet {
	t.Helper()
	ts, err := web.NewTemplateSet(layoutFS, viewFS, "testdata/layouts/*.html", "testdata/views", "/app", views)
	if err != nil {
		t.Fatalf("NewTemplateSet() error = %v", err)
	}
	return ts
}

func TestNewTemplateSet(t *testing.T) {
	ts := newTestSet(t, testViews)
	if ts.BasePath() != "/app" {
		t.Errorf("BasePath() = %q, want /app", ts.BasePath())
	}
}

func TestNewTemplateSet_Errors(t *testing.T) {
	tests := []struct {
		name       string
		layoutGlob string
		viewSubdir string
		views      []web.ViewDef
	}{
		{"invalid layout glob", "nonexistent/*.html", "testdata/views", testViews},
		{"invalid view subdir", "testdata/layouts/*.html", "nonexistent", testViews},
		{
			"missing view template",
			"testdata/layouts/*.html",
			"testdata/views",
			[]web.ViewDef{{Template: "nonexistent.html", Title: "Missing"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := web.NewTemplateSet(layoutFS, viewFS, tt.layoutGlob, tt.viewSubdir, "/app", tt.views)
			if err == nil {
				t.Error("NewTemplateSet() succeeded, want error")
			}
		})
	}
}

func TestExecute(t *testing.T) {
	ts := newTestSet(t, testViews)

	body, err := ts.Execute("test.html", "home.html", web.ViewData{
		Title:    "Test",
		Bundle:   "test-bundle",
		BasePath: "/app",
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	out := string(body)
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Test</title>",
		"Home Page",
		"test-bundle",
		`data-basepath="/app"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
}

func TestExecute_NotFound(t *testing.T) {
	ts := newTestSet(t, testViews)

	_, err := ts.Execute("test.html", "nonexistent.html", web.ViewData{})
	if !errors.Is(err, web.ErrTemplateNotFound) {
		t.Errorf("Execute() error = %v, want ErrTemplateNotFound", err)
	}
}

func TestExecute_TemplateError(t *testing.T) {
	ts := newTestSet(t, []web.ViewDef{{Template: "broken.html", Title: "Broken"}})

	body, err := ts.ExecuteView("test.html", "broken.html")
	if err == nil {
		t.Fatal("ExecuteView() succeeded for broken template, want error")
	}
	if body != nil {
		t.Errorf("body = %q, want nil on failure", body)
	}
}

func TestExecuteView(t *testing.T) {
	ts := newTestSet(t, testViews)

	body, err := ts.ExecuteView("test.html", "about.html")
	if err != nil {
		t.Fatalf("ExecuteView() error = %v", err)
	}

	out := string(body)
	if !strings.Contains(out, "<title>About</title>") {
		t.Error("output does not contain view title")
	}
	if !strings.Contains(out, "About Page") {
		t.Error("output does not contain view content")
	}
	if strings.Contains(out, "Home Page") {
		t.Error("about view leaked home content")
	}
}

func TestExecuteView_Idempotent(t *testing.T) {
	ts := newTestSet(t, testViews)

	first, err := ts.ExecuteView("test.html", "home.html")
	if err != nil {
		t.Fatalf("ExecuteView() error = %v", err)
	}
	for i := 0; i < 3; i++ {
		next, err := ts.ExecuteView("test.html", "home.html")
		if err != nil {
			t.Fatalf("ExecuteView() error = %v", err)
		}
		if string(next) != string(first) {
			t.Fatalf("render %d differs from first render", i)
		}
	}
}

func TestWriteHTML(t *testing.T) {
	w := httptest.NewRecorder()

	if err := web.WriteHTML(w, http.StatusOK, []byte("<p>hi</p>")); err != nil {
		t.Fatalf("WriteHTML() error = %v", err)
	}

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if ct := resp.Header.Get("Content-Type"); ct != web.ContentTypeHTML {
		t.Errorf("Content-Type = %q, want %q", ct, web.ContentTypeHTML)
	}
	if w.Body.String() != "<p>hi</p>" {
		t.Errorf("body = %q, want %q", w.Body.String(), "<p>hi</p>")
	}
}
