// Package search implements the Weaviate semantic-search collaborator used
// to re-rank supplier search results for free-text queries.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const maxResponseSize = 1 * 1024 * 1024

// Result is one ranked hit from the vector store. ID refers back to the
// supplier id held in the entity store.
type Result struct {
	ID        string
	Certainty float64
}

// Client queries a Weaviate instance over its GraphQL endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        zerolog.Logger
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(client *Client) {
		client.log = log
	}
}

func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type graphqlRequest struct {
	Query string `json:"query"`
}

type graphqlResponse struct {
	Data struct {
		Get struct {
			Supplier []struct {
				Additional struct {
					ID        string  `json:"id"`
					Certainty float64 `json:"certainty"`
				} `json:"_additional"`
			} `json:"Supplier"`
		} `json:"Get"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Search runs a nearText query against the Supplier class and returns hits
// ordered by certainty, best first.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	gql := fmt.Sprintf(`{
  Get {
    Supplier(limit: %d, nearText: {concepts: [%q]}) {
      _additional { id certainty }
    }
  }
}`, limit, query)

	body, err := json.Marshal(graphqlRequest{Query: gql})
	if err != nil {
		return nil, fmt.Errorf("marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/graphql", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call weaviate: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weaviate returned %d", resp.StatusCode)
	}

	var parsed graphqlResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Errors) > 0 {
		return nil, fmt.Errorf("weaviate query failed: %s", parsed.Errors[0].Message)
	}

	results := make([]Result, 0, len(parsed.Data.Get.Supplier))
	for _, hit := range parsed.Data.Get.Supplier {
		results = append(results, Result{ID: hit.Additional.ID, Certainty: hit.Additional.Certainty})
	}

	c.log.Debug().Int("hits", len(results)).Msg("semantic search complete")
	return results, nil
}
