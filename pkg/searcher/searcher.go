package searcher

// JSON-over-HTTP web search client. A missing API key degrades to zero
// results instead of failing the calling request.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	NAME = "searcher"

	DefaultEndpoint = "https://api.tavily.com/search"
	DefaultLimit    = 5
)

type Result struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Snippet string `json:"content"`
}

type Searcher struct {
	client   *http.Client
	endpoint string
	apiKey   string
	limit    int
}

type Option func(*Searcher)

func WithEndpoint(endpoint string) Option {
	return func(s *Searcher) {
		if endpoint != "" {
			s.endpoint = endpoint
		}
	}
}

func WithLimit(limit int) Option {
	return func(s *Searcher) {
		if limit > 0 {
			s.limit = limit
		}
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(s *Searcher) {
		if client != nil {
			s.client = client
		}
	}
}

func New(apiKey string, opts ...Option) *Searcher {
	s := &Searcher{
		client:   &http.Client{Timeout: time.Second * 15},
		endpoint: DefaultEndpoint,
		apiKey:   apiKey,
		limit:    DefaultLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enabled reports whether search credentials are configured.
func (s *Searcher) Enabled() bool {
	return s.apiKey != ""
}

type searchRequestBody struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type searchResponse struct {
	Results []Result `json:"results"`
}

// Search runs one web query. Without credentials it returns no results
// and no error so document answering keeps working.
func (s *Searcher) Search(ctx context.Context, query string) ([]Result, error) {
	if !s.Enabled() {
		slog.Debug("web search skipped, no api key configured", slog.String("driver", NAME))
		return nil, nil
	}

	raw, err := json.Marshal(searchRequestBody{
		Query:      query,
		MaxResults: s.limit,
	})
	if err != nil {
		return nil, fmt.Errorf("Failed to marshal search request, %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("Failed to build search request, %w", err)
	}
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	req.Header.Add("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Failed to request search service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Failed to request search service, %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var result searchResponse
	if err = json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("Failed to unmarshal search response, %w", err)
	}

	if len(result.Results) > s.limit {
		result.Results = result.Results[:s.limit]
	}
	return result.Results, nil
}
