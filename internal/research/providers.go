package research

import "context"

// SearchQuery is one semantic-search request.
type SearchQuery struct {
	Query          string
	NumResults     int
	IncludeDomains []string
}

// SearchResult is one hit returned by the search provider.
type SearchResult struct {
	Title      string
	URL        string
	Text       string
	Highlights []string
}

// SearchProvider abstracts the semantic-search API.
type SearchProvider interface {
	Search(ctx context.Context, q SearchQuery) ([]SearchResult, error)
}

// ScrapedPage is the content of one scraped URL.
type ScrapedPage struct {
	URL      string
	Markdown string
	Title    string
}

// Scraper abstracts the page-scraping API.
type Scraper interface {
	Scrape(ctx context.Context, url string) (ScrapedPage, error)
}
