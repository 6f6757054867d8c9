package extract

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/healthai/etl/internal/logger"
)

const catalogBody = `[
	{"name": "Squat", "category": "strength", "primaryMuscles": ["quadriceps", "glutes"], "images": [{"url": "x"}]},
	{"name": "Jog", "category": "cardio", "equipment": null}
]`

func TestFetchFromMirror(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(catalogBody))
	}))
	defer srv.Close()

	client := &CatalogClient{URL: srv.URL, Log: logger.NewNop()}
	f, err := client.Fetch(context.Background(), 0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if f.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", f.Len())
	}
	if f.Rows[0]["name"] != "Squat" {
		t.Fatalf("expected name Squat, got %v", f.Rows[0]["name"])
	}
	muscles, ok := f.Rows[0]["primaryMuscles"].([]string)
	if !ok {
		t.Fatalf("expected string list cell, got %T", f.Rows[0]["primaryMuscles"])
	}
	if !reflect.DeepEqual(muscles, []string{"quadriceps", "glutes"}) {
		t.Fatalf("expected muscles list, got %v", muscles)
	}
	if f.Has("images") {
		t.Fatalf("expected nested objects to be dropped from the column set")
	}
}

func TestFetchAppliesRowLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(catalogBody))
	}))
	defer srv.Close()

	client := &CatalogClient{URL: srv.URL, Log: logger.NewNop()}
	f, err := client.Fetch(context.Background(), 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if f.Len() != 1 {
		t.Fatalf("expected 1 row with limit, got %d", f.Len())
	}
}

func TestFetchFailsOverToKeyedProvider(t *testing.T) {
	var gotKey string
	fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		w.Write([]byte(`[{"name": "Row"}]`))
	}))
	defer fallback.Close()

	mirror := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer mirror.Close()

	client := &CatalogClient{
		URL:    mirror.URL,
		APIKey: "secret",
		// Route the hardcoded fallback host to the test server.
		HTTPClient: &http.Client{Transport: rewriteHost(fallback.URL)},
		Log:        logger.NewNop(),
	}

	f, err := client.Fetch(context.Background(), 0)
	if err != nil {
		t.Fatalf("expected failover to succeed, got %v", err)
	}
	if f.Len() != 1 || f.Rows[0]["name"] != "Row" {
		t.Fatalf("expected the fallback payload, got %v", f.Rows)
	}
	if gotKey != "secret" {
		t.Fatalf("expected API key header on the fallback request, got %q", gotKey)
	}
}

func TestFetchWithoutKeyPropagatesMirrorError(t *testing.T) {
	mirror := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer mirror.Close()

	client := &CatalogClient{URL: mirror.URL, Log: logger.NewNop()}
	_, err := client.Fetch(context.Background(), 0)
	if err == nil {
		t.Fatalf("expected error without a failover key")
	}
	var eerr *Error
	if !errors.As(err, &eerr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if eerr.Source != mirror.URL {
		t.Fatalf("expected the mirror as failing source, got %q", eerr.Source)
	}
}

// rewriteHost redirects requests bound for the keyed provider to the given
// test server, keeping the request path and headers intact. Other requests
// pass through unchanged.
type rewriteHost string

func (h rewriteHost) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Host != "api.api-ninjas.com" {
		return http.DefaultTransport.RoundTrip(req)
	}
	target := string(h)
	clone := req.Clone(req.Context())
	clone.URL.Scheme = "http"
	clone.URL.Host = target[len("http://"):]
	return http.DefaultTransport.RoundTrip(clone)
}
