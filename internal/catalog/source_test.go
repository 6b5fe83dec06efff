package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopverse/storefront-backend/pkg/config"
	pkgerrors "github.com/shopverse/storefront-backend/pkg/errors"
)

func sourceConfig(url string) config.CatalogConfig {
	return config.CatalogConfig{
		SourceURL:    url,
		FetchLimit:   100,
		FetchTimeout: 2 * time.Second,
	}
}

func TestSourceClientFetchProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "100" {
			t.Fatalf("expected limit=100, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"products":[{"id":1,"title":"Mouse","price":24.99,"rating":4.2,"category":"electronics","brand":"logi","stock":12,"thumbnail":"https://cdn/p1.jpg"}],"total":1}`))
	}))
	defer server.Close()

	client, err := NewSourceClient(sourceConfig(server.URL))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	products, err := client.FetchProducts(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	if products[0].ID != 1 || products[0].Brand != "logi" {
		t.Fatalf("unexpected product %+v", products[0])
	}
	if products[0].Price.String() != "24.99" {
		t.Fatalf("expected exact price 24.99, got %s", products[0].Price)
	}
}

func TestSourceClientNonOKStatusIsDependencyError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := NewSourceClient(sourceConfig(server.URL))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, gotErr := client.FetchProducts(context.Background())
	if gotErr == nil {
		t.Fatal("expected error")
	}
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency code, got %v", gotErr)
	}
}

func TestSourceClientMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products": "not-a-list"}`))
	}))
	defer server.Close()

	client, err := NewSourceClient(sourceConfig(server.URL))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if _, err := client.FetchProducts(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestNewSourceClientValidatesConfig(t *testing.T) {
	if _, err := NewSourceClient(sourceConfig("")); err == nil {
		t.Fatal("expected error for empty source url")
	}
	cfg := sourceConfig("http://localhost:9")
	cfg.FetchLimit = 0
	if _, err := NewSourceClient(cfg); err == nil {
		t.Fatal("expected error for zero fetch limit")
	}
}
