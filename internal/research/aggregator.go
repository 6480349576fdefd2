// Package research aggregates third-party search and scrape results into
// a company profile for complaint targeting. Everything is request
// scoped; a partial upstream failure degrades the profile instead of
// failing the request.
package research

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
)

// CompanyProfile is the aggregated identity of the researched company.
type CompanyProfile struct {
	Name        string            `json:"name"`
	Domain      string            `json:"domain,omitempty"`
	Website     string            `json:"website,omitempty"`
	Favicon     string            `json:"favicon,omitempty"`
	Description string            `json:"description,omitempty"`
	Ratings     []Rating          `json:"ratings,omitempty"`
	Social      map[string]string `json:"social,omitempty"`
}

// ComplaintSummary is one complaint or review hit from a review site.
type ComplaintSummary struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet,omitempty"`
	Source  string `json:"source,omitempty"`
}

// Contacts carries everything a complainant can reach the company on.
type Contacts struct {
	Emails     []ContactEmail `json:"emails"`
	Executives []ContactEmail `json:"executives,omitempty"`
	Phones     []string       `json:"phones,omitempty"`
}

// Report is the full research response for one company.
type Report struct {
	Company    CompanyProfile     `json:"company"`
	Complaints []ComplaintSummary `json:"complaints"`
	Contacts   *Contacts          `json:"contacts"`
	Cached     bool               `json:"cached"`
	Mock       bool               `json:"mock"`
}

// Aggregator orchestrates the research fan-out. A nil SearchProvider
// means no search key is configured and research degrades to mock mode;
// a nil Scraper skips the scrape slice only.
type Aggregator struct {
	search      SearchProvider
	scraper     Scraper
	phoneRegion string
}

// NewAggregator wires an aggregator. phoneRegion is the default region
// for normalizing phone numbers found in scraped pages.
func NewAggregator(search SearchProvider, scraper Scraper, phoneRegion string) *Aggregator {
	if phoneRegion == "" {
		phoneRegion = "GB"
	}
	return &Aggregator{search: search, scraper: scraper, phoneRegion: phoneRegion}
}

const searchResultsPerQuery = 5

// Research builds the report for one company name or URL.
func (a *Aggregator) Research(ctx context.Context, companyInput string) (*Report, error) {
	name := strings.TrimSpace(companyInput)
	if name == "" {
		return nil, fmt.Errorf("company name is required")
	}

	domain := ExtractDomain(name)
	if domain != "" {
		name = companyLabelFromDomain(domain)
	} else {
		domain = GuessDomain(name)
	}

	if a.search == nil {
		return a.mockReport(name, domain), nil
	}

	searches := a.runSearches(ctx, name, domain)

	if domain == "" {
		domain = inferDomain(searches.companyInfo)
	}

	pages := a.runScrapes(ctx, domain)

	report := &Report{
		Company: CompanyProfile{
			Name:   name,
			Domain: domain,
		},
		Complaints: buildComplaints(searches.complaints),
		Contacts:   buildContacts(searches, pages, domain, a.phoneRegion),
	}
	if domain != "" {
		report.Company.Website = "https://" + domain
		report.Company.Favicon = "https://www.google.com/s2/favicons?domain=" + domain + "&sz=64"
	}
	report.Company.Description = firstDescription(searches.companyInfo)
	report.Company.Social = collectSocial(searches, pages)
	report.Company.Ratings = collectRatings(pages)

	return report, nil
}

func (a *Aggregator) mockReport(name, domain string) *Report {
	report := &Report{
		Company:    CompanyProfile{Name: name, Domain: domain},
		Complaints: []ComplaintSummary{},
		Mock:       true,
	}
	if domain != "" {
		report.Company.Website = "https://" + domain
		report.Company.Favicon = "https://www.google.com/s2/favicons?domain=" + domain + "&sz=64"
	}
	return report
}

type searchSet struct {
	companyInfo []SearchResult
	complaints  []SearchResult
	contactInfo []SearchResult
}

// runSearches fans the three queries out in parallel. A failed query
// leaves its slice empty; the others still count.
func (a *Aggregator) runSearches(ctx context.Context, name, domain string) searchSet {
	var set searchSet
	companyQuery := name + " company official website about"
	if domain != "" {
		companyQuery = name + " site:" + domain + " about"
	}

	type searchJob struct {
		dest *[]SearchResult
		q    SearchQuery
	}
	queries := []searchJob{
		{&set.companyInfo, SearchQuery{Query: companyQuery, NumResults: searchResultsPerQuery}},
		{&set.complaints, SearchQuery{Query: name + " complaints reviews", NumResults: searchResultsPerQuery, IncludeDomains: reviewSiteDomains}},
		{&set.contactInfo, SearchQuery{Query: name + " customer service contact email complaints department", NumResults: searchResultsPerQuery}},
	}

	var wg sync.WaitGroup
	for _, job := range queries {
		wg.Add(1)
		go func(dest *[]SearchResult, q SearchQuery) {
			defer wg.Done()
			results, err := a.search.Search(ctx, q)
			if err != nil {
				log.Printf("research search failed query=%q err=%v", q.Query, err)
				return
			}
			*dest = results
		}(job.dest, job.q)
	}
	wg.Wait()
	return set
}

type pageSet struct {
	home       *ScrapedPage
	contact    *ScrapedPage
	trustpilot *ScrapedPage
}

// runScrapes fetches the homepage, contact page, and Trustpilot profile
// in parallel when a scraper and domain are available. Failures leave the
// page nil.
func (a *Aggregator) runScrapes(ctx context.Context, domain string) pageSet {
	var pages pageSet
	if a.scraper == nil || domain == "" {
		return pages
	}

	targets := []struct {
		dest **ScrapedPage
		url  string
	}{
		{&pages.home, "https://" + domain},
		{&pages.contact, "https://" + domain + "/contact"},
		{&pages.trustpilot, "https://www.trustpilot.com/review/" + domain},
	}

	var wg sync.WaitGroup
	for _, target := range targets {
		wg.Add(1)
		go func(dest **ScrapedPage, url string) {
			defer wg.Done()
			page, err := a.scraper.Scrape(ctx, url)
			if err != nil {
				log.Printf("research scrape failed url=%s err=%v", url, err)
				return
			}
			*dest = &page
		}(target.dest, target.url)
	}
	wg.Wait()
	return pages
}

func buildComplaints(results []SearchResult) []ComplaintSummary {
	complaints := make([]ComplaintSummary, 0, len(results))
	for _, r := range results {
		snippet := ""
		if len(r.Highlights) > 0 {
			snippet = r.Highlights[0]
		}
		complaints = append(complaints, ComplaintSummary{
			Title:   r.Title,
			URL:     r.URL,
			Snippet: snippet,
			Source:  ExtractDomain(r.URL),
		})
	}
	return complaints
}

func buildContacts(searches searchSet, pages pageSet, domain, phoneRegion string) *Contacts {
	var corpus strings.Builder
	for _, r := range searches.contactInfo {
		corpus.WriteString(r.Text)
		corpus.WriteString("\n")
		for _, h := range r.Highlights {
			corpus.WriteString(h)
			corpus.WriteString("\n")
		}
	}
	for _, page := range []*ScrapedPage{pages.home, pages.contact} {
		if page != nil {
			corpus.WriteString(page.Markdown)
			corpus.WriteString("\n")
		}
	}
	text := corpus.String()

	emails := RankEmails(ExtractEmails(text), domain)
	phones := ExtractPhones(text, phoneRegion)
	if len(emails) == 0 && len(phones) == 0 {
		return nil
	}

	contacts := &Contacts{Emails: emails, Phones: phones}
	for _, email := range emails {
		if email.Role == RoleExecutive {
			contacts.Executives = append(contacts.Executives, email)
		}
	}
	return contacts
}

func collectSocial(searches searchSet, pages pageSet) map[string]string {
	var corpus strings.Builder
	for _, page := range []*ScrapedPage{pages.home, pages.contact} {
		if page != nil {
			corpus.WriteString(page.Markdown)
			corpus.WriteString("\n")
		}
	}
	for _, r := range searches.companyInfo {
		corpus.WriteString(r.Text)
		corpus.WriteString("\n")
	}
	return ExtractSocialLinks(corpus.String())
}

func collectRatings(pages pageSet) []Rating {
	var ratings []Rating
	if pages.trustpilot != nil {
		if rating := ExtractRating(pages.trustpilot.Markdown, "trustpilot"); rating != nil {
			ratings = append(ratings, *rating)
		}
	}
	if pages.home != nil {
		if rating := ExtractRating(pages.home.Markdown, "google"); rating != nil {
			ratings = append(ratings, *rating)
		}
	}
	return ratings
}

// inferDomain picks the first search-result domain that is not a review
// or aggregator site.
func inferDomain(results []SearchResult) string {
	for _, r := range results {
		domain := ExtractDomain(r.URL)
		if domain == "" || thirdPartyDomain(domain) {
			continue
		}
		return domain
	}
	return ""
}

func thirdPartyDomain(domain string) bool {
	for _, third := range thirdPartyEmailDomains {
		if domain == third || strings.HasSuffix(domain, "."+third) {
			return true
		}
	}
	for _, generic := range []string{"wikipedia.org", "linkedin.com", "facebook.com", "crunchbase.com"} {
		if domain == generic || strings.HasSuffix(domain, "."+generic) {
			return true
		}
	}
	return false
}

func firstDescription(results []SearchResult) string {
	for _, r := range results {
		for _, h := range r.Highlights {
			if len(h) > 40 {
				return h
			}
		}
	}
	return ""
}

func companyLabelFromDomain(domain string) string {
	label := domain
	if i := strings.Index(label, "."); i > 0 {
		label = label[:i]
	}
	if label == "" {
		return domain
	}
	return strings.ToUpper(label[:1]) + label[1:]
}
