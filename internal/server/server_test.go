package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func previewDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	os.MkdirAll(filepath.Join(dir, "assets"), 0755)
	os.WriteFile(filepath.Join(dir, "index.html"), []byte("<!DOCTYPE html><title>t</title>"), 0644)
	os.WriteFile(filepath.Join(dir, "assets", "style.css"), []byte("body{}"), 0644)
	return dir
}

func get(t *testing.T, p *Preview, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		t.Fatal(err)
	}
	w := httptest.NewRecorder()
	p.Router().ServeHTTP(w, req)
	return w
}

func TestRouter_ServesPage(t *testing.T) {
	p := &Preview{Dir: previewDir(t), Port: 8080}
	w := get(t, p, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("GET / = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "<!DOCTYPE html>") {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestRouter_ServesAssets(t *testing.T) {
	p := &Preview{Dir: previewDir(t), Port: 8080}
	w := get(t, p, "/assets/style.css")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /assets/style.css = %d, want 200", w.Code)
	}
	if w.Body.String() != "body{}" {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestRouter_NoStoreHeader(t *testing.T) {
	p := &Preview{Dir: previewDir(t), Port: 8080}
	for _, path := range []string{"/", "/healthz", "/assets/style.css"} {
		w := get(t, p, path)
		if got := w.Header().Get("Cache-Control"); got != "no-store" {
			t.Errorf("%s: Cache-Control = %q, want no-store", path, got)
		}
	}
}

func TestRouter_Healthz(t *testing.T) {
	p := &Preview{Dir: previewDir(t), Port: 8080}
	w := get(t, p, "/healthz")
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Fatalf("GET /healthz = %d %q", w.Code, w.Body.String())
	}
}

func TestRouter_UnknownPath(t *testing.T) {
	p := &Preview{Dir: previewDir(t), Port: 8080}
	w := get(t, p, "/missing.html")
	if w.Code != http.StatusNotFound {
		t.Fatalf("GET /missing.html = %d, want 404", w.Code)
	}
}

func TestRun_RefusesEmptyDir(t *testing.T) {
	p := &Preview{Dir: t.TempDir(), Port: 8080}
	err := p.Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "no index.html") {
		t.Fatalf("expected missing-page error, got %v", err)
	}
}
