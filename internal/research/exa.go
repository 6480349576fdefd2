package research

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultExaBaseURL = "https://api.exa.ai"

// ExaClient calls the Exa semantic-search API.
type ExaClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewExaClient builds a search client. A nil http.Client gets a default
// with a request timeout.
func NewExaClient(client *http.Client, baseURL, apiKey string) *ExaClient {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	if baseURL == "" {
		baseURL = defaultExaBaseURL
	}
	return &ExaClient{client: client, baseURL: baseURL, apiKey: apiKey}
}

type exaRequest struct {
	Query          string      `json:"query"`
	NumResults     int         `json:"numResults"`
	IncludeDomains []string    `json:"includeDomains,omitempty"`
	Contents       exaContents `json:"contents"`
}

type exaContents struct {
	Text       bool           `json:"text"`
	Highlights map[string]int `json:"highlights,omitempty"`
}

type exaResponse struct {
	Results []struct {
		Title      string   `json:"title"`
		URL        string   `json:"url"`
		Text       string   `json:"text"`
		Highlights []string `json:"highlights"`
	} `json:"results"`
}

// Search issues one search request and decodes the hits.
func (c *ExaClient) Search(ctx context.Context, q SearchQuery) ([]SearchResult, error) {
	if q.NumResults <= 0 {
		q.NumResults = 5
	}

	body, err := json.Marshal(exaRequest{
		Query:          q.Query,
		NumResults:     q.NumResults,
		IncludeDomains: q.IncludeDomains,
		Contents:       exaContents{Text: true, Highlights: map[string]int{"numSentences": 3}},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("search API returned %d: %s", resp.StatusCode, string(snippet))
	}

	var decoded exaResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	results := make([]SearchResult, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		results = append(results, SearchResult{
			Title:      r.Title,
			URL:        r.URL,
			Text:       r.Text,
			Highlights: r.Highlights,
		})
	}
	return results, nil
}

var _ SearchProvider = (*ExaClient)(nil)
