package handler

import (
	"net/http"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestWelcome(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(router, http.MethodGet, "/", "")
	expectStatus(t, rec, http.StatusOK)
	if rec.Body.String() != welcomeMessage {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(router, http.MethodGet, "/healthz", "")
	expectStatus(t, rec, http.StatusOK)
	var got map[string]string
	decodeBody(t, rec.Body, &got)
	if got["status"] != "ok" {
		t.Fatalf("unexpected body: %v", got)
	}
}

func TestPostsWithoutTrailingSlashRedirects(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(router, http.MethodGet, "/posts", "")
	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("expected redirect but got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/posts/" {
		t.Fatalf("unexpected location: %q", loc)
	}
}

func TestDocsHandler_JSON(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(router, http.MethodGet, "/swagger", "")
	expectStatus(t, rec, http.StatusOK)

	var doc openAPIDocument
	decodeBody(t, rec.Body, &doc)
	if doc.Info.Title != apiTitle || doc.Info.Version != apiVersion {
		t.Fatalf("unexpected info: %+v", doc.Info)
	}
	for _, path := range []string{"/posts/", "/posts/{id}"} {
		if _, ok := doc.Paths[path]; !ok {
			t.Fatalf("path %s missing from document", path)
		}
	}
	if _, ok := doc.Paths["/posts/{id}"]["delete"].Responses["404"]; !ok {
		t.Fatalf("delete must document 404")
	}
}

func TestDocsHandler_YAML(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(router, http.MethodGet, "/swagger.yaml", "")
	expectStatus(t, rec, http.StatusOK)

	var doc openAPIDocument
	if err := yaml.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("failed to parse yaml: %v", err)
	}
	model, ok := doc.Components.Schemas["BlogModel"]
	if !ok {
		t.Fatalf("BlogModel missing")
	}
	if !model.Properties["id"].ReadOnly {
		t.Fatalf("id must be read only")
	}
}

func TestDocsDisabled(t *testing.T) {
	router := NewRouter(nil, NewPostHandler(PostUsecases{}, nil), nil)

	rec := doJSON(router, http.MethodGet, "/swagger", "")
	expectStatus(t, rec, http.StatusNotFound)
}

func TestNewDocsHandler_InvalidPath(t *testing.T) {
	if _, err := NewDocsHandler("swagger"); err == nil {
		t.Fatalf("expected error for relative path")
	}
}
