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

const defaultFirecrawlBaseURL = "https://api.firecrawl.dev"

// FirecrawlClient calls the Firecrawl scraping API.
type FirecrawlClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewFirecrawlClient builds a scrape client. A nil http.Client gets a
// default with a request timeout; scrapes are slower than searches.
func NewFirecrawlClient(client *http.Client, baseURL, apiKey string) *FirecrawlClient {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if baseURL == "" {
		baseURL = defaultFirecrawlBaseURL
	}
	return &FirecrawlClient{client: client, baseURL: baseURL, apiKey: apiKey}
}

type firecrawlRequest struct {
	URL     string   `json:"url"`
	Formats []string `json:"formats"`
}

type firecrawlResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Markdown string `json:"markdown"`
		Metadata struct {
			Title string `json:"title"`
		} `json:"metadata"`
	} `json:"data"`
	Error string `json:"error"`
}

// Scrape fetches one URL as markdown.
func (c *FirecrawlClient) Scrape(ctx context.Context, target string) (ScrapedPage, error) {
	body, err := json.Marshal(firecrawlRequest{URL: target, Formats: []string{"markdown"}})
	if err != nil {
		return ScrapedPage{}, fmt.Errorf("marshal scrape request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/scrape", bytes.NewReader(body))
	if err != nil {
		return ScrapedPage{}, fmt.Errorf("create scrape request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return ScrapedPage{}, fmt.Errorf("scrape request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return ScrapedPage{}, fmt.Errorf("scrape API returned %d: %s", resp.StatusCode, string(snippet))
	}

	var decoded firecrawlResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ScrapedPage{}, fmt.Errorf("decode scrape response: %w", err)
	}
	if !decoded.Success {
		return ScrapedPage{}, fmt.Errorf("scrape failed: %s", decoded.Error)
	}

	return ScrapedPage{
		URL:      target,
		Markdown: decoded.Data.Markdown,
		Title:    decoded.Data.Metadata.Title,
	}, nil
}

var _ Scraper = (*FirecrawlClient)(nil)
