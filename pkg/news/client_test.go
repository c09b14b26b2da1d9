package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFetch_DecodesResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/news", r.URL.Path)
		assert.Equal(t, "golang", r.URL.Query().Get("query"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"title":"Go 1.24","link":"https://example.com/go","source_id":"example","image_url":"https://example.com/go.png","pubDate":"2025-08-30 10:00:00"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	items, err := client.Fetch(context.Background(), "golang")

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "Go 1.24", items[0].Title)
	assert.Equal(t, "example", items[0].SourceID)
	assert.Equal(t, "https://example.com/go.png", items[0].ImageURL)
	assert.Equal(t, "2025-08-30 10:00:00", items[0].PubDate)
}

func TestFetch_OmitsEmptyQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("query"))
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	items, err := client.Fetch(context.Background(), "")

	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestFetch_NonOKStatusIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"News API key not configured"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	items, err := client.Fetch(context.Background(), "golang")

	assert.Error(t, err)
	assert.Nil(t, items)
}

func TestFetch_GatewayUnreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", time.Second)

	_, err := client.Fetch(context.Background(), "golang")

	assert.Error(t, err)
}
