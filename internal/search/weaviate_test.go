package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	var gotQuery string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/graphql", r.URL.Path)
		var req graphqlRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotQuery = req.Query

		_, _ = w.Write([]byte(`{
			"data": {"Get": {"Supplier": [
				{"_additional": {"id": "sup-003", "certainty": 0.93}},
				{"_additional": {"id": "sup-001", "certainty": 0.81}}
			]}}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")

	results, err := client.Search(context.Background(), "sustainable packaging", 10)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "sup-003", results[0].ID)
	assert.InDelta(t, 0.93, results[0].Certainty, 1e-9)
	assert.Contains(t, gotQuery, `"sustainable packaging"`)
	assert.Contains(t, gotQuery, "limit: 10")
}

func TestSearchGraphQLError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors": [{"message": "no such class"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")

	_, err := client.Search(context.Background(), "anything", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such class")
}

func TestSearchNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")

	_, err := client.Search(context.Background(), "anything", 5)
	require.Error(t, err)
}

func TestSearchSendsAPIKey(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"data": {"Get": {"Supplier": []}}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret")

	results, err := client.Search(context.Background(), "anything", 0)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, "Bearer secret", gotAuth)
}
