package searcher

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchWithoutCredentials(t *testing.T) {
	s := New("")
	assert.False(t, s.Enabled())

	results, err := s.Search(context.Background(), "anything")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body searchRequestBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "golang release", body.Query)
		assert.Equal(t, 2, body.MaxResults)

		json.NewEncoder(w).Encode(searchResponse{Results: []Result{
			{URL: "https://go.dev/blog", Title: "Go blog", Snippet: "release notes"},
			{URL: "https://go.dev/doc", Title: "Go docs", Snippet: "documentation"},
			{URL: "https://example.com", Title: "extra", Snippet: "over the limit"},
		}})
	}))
	defer srv.Close()

	s := New("test-key", WithEndpoint(srv.URL), WithLimit(2))
	require.True(t, s.Enabled())

	results, err := s.Search(context.Background(), "golang release")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Go blog", results[0].Title)
	assert.Equal(t, "https://go.dev/blog", results[0].URL)
}

func TestSearchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s := New("test-key", WithEndpoint(srv.URL))
	_, err := s.Search(context.Background(), "anything")
	assert.Error(t, err)
}
