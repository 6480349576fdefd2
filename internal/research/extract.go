package research

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-']+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	idnaProfile  = idna.Lookup
)

// EmailRole classifies who a mailbox is likely to reach.
type EmailRole string

const (
	RoleCustomerService EmailRole = "customer-service"
	RoleExecutive       EmailRole = "executive"
	RoleOther           EmailRole = "other"
)

// ContactEmail is one scored, classified address.
type ContactEmail struct {
	Address string    `json:"address"`
	Role    EmailRole `json:"role"`
	Score   int       `json:"score"`
}

// ExtractEmails regex-scans text for addresses, lowercased, in order of
// first appearance, deduplicated.
func ExtractEmails(text string) []string {
	matches := emailPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, raw := range matches {
		email := strings.ToLower(strings.Trim(raw, ".'"))
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}
		out = append(out, email)
	}
	return out
}

// FilterEmails drops useless, disposable, and third-party addresses. The
// filter is idempotent: filtering an already-filtered list returns the
// same list.
func FilterEmails(emails []string) []string {
	if len(emails) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(emails))
	valid := make([]string, 0, len(emails))
	for _, email := range emails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email == "" || !usableEmail(email) {
			continue
		}
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}
		valid = append(valid, email)
	}
	if len(valid) == 0 {
		return nil
	}
	return valid
}

func usableEmail(email string) bool {
	parts := strings.SplitN(email, "@", 2)
	if len(parts) != 2 {
		return false
	}
	local, domain := parts[0], parts[1]

	for _, useless := range uselessLocalParts {
		if strings.HasPrefix(local, useless) {
			return false
		}
	}
	for _, bad := range disposableEmailDomains {
		if domain == bad || strings.HasSuffix(domain, "."+bad) {
			return false
		}
	}
	for _, third := range thirdPartyEmailDomains {
		if domain == third || strings.HasSuffix(domain, "."+third) {
			return false
		}
	}
	if strings.Count(domain, ".") == 0 {
		return false
	}
	asciiDomain, err := idnaProfile.ToASCII(domain)
	return err == nil && asciiDomain != ""
}

// ClassifyEmail buckets an address by the keywords in its local part.
func ClassifyEmail(email string) EmailRole {
	local := email
	if at := strings.Index(email, "@"); at > 0 {
		local = email[:at]
	}
	local = strings.ToLower(local)

	for _, kw := range []string{"ceo", "founder", "director", "president", "md", "owner"} {
		if local == kw || strings.HasPrefix(local, kw+".") || strings.HasSuffix(local, "."+kw) {
			return RoleExecutive
		}
	}
	for _, kw := range []string{"customer", "support", "service", "help", "care", "complaint"} {
		if strings.Contains(local, kw) {
			return RoleCustomerService
		}
	}
	return RoleOther
}

// Social platform patterns, matched against URLs found in text. The
// pattern order does not matter; the per-platform first hit wins.
var socialPatterns = map[string]*regexp.Regexp{
	"twitter":   regexp.MustCompile(`https?://(?:www\.)?(?:twitter\.com|x\.com)/([A-Za-z0-9_]{1,15})(?:[/?#]|\b)`),
	"facebook":  regexp.MustCompile(`https?://(?:www\.)?facebook\.com/([A-Za-z0-9.\-]{3,})(?:[/?#]|\b)`),
	"instagram": regexp.MustCompile(`https?://(?:www\.)?instagram\.com/([A-Za-z0-9._]{2,30})(?:[/?#]|\b)`),
	"linkedin":  regexp.MustCompile(`https?://(?:[a-z]{2}\.)?linkedin\.com/company/([A-Za-z0-9\-_%]+)(?:[/?#]|\b)`),
	"youtube":   regexp.MustCompile(`https?://(?:www\.)?youtube\.com/(@?[A-Za-z0-9._\-]+)(?:[/?#]|\b)`),
	"tiktok":    regexp.MustCompile(`https?://(?:www\.)?tiktok\.com/@([A-Za-z0-9._]+)(?:[/?#]|\b)`),
}

// ExtractSocialLinks returns one canonical profile URL per platform,
// rejecting share/auth/hashtag paths via the reserved-path denylist.
func ExtractSocialLinks(text string) map[string]string {
	links := make(map[string]string)
	for platform, pattern := range socialPatterns {
		matches := pattern.FindAllStringSubmatch(text, -1)
		for _, match := range matches {
			handle := strings.TrimSuffix(match[1], "/")
			if reservedSocialPath(handle) {
				continue
			}
			links[platform] = canonicalSocialURL(platform, handle)
			break
		}
	}
	if len(links) == 0 {
		return nil
	}
	return links
}

func reservedSocialPath(handle string) bool {
	h := strings.ToLower(strings.TrimPrefix(handle, "@"))
	for _, reserved := range socialReservedPaths {
		if h == reserved {
			return true
		}
	}
	return false
}

func canonicalSocialURL(platform, handle string) string {
	switch platform {
	case "twitter":
		return "https://x.com/" + handle
	case "facebook":
		return "https://facebook.com/" + handle
	case "instagram":
		return "https://instagram.com/" + handle
	case "linkedin":
		return "https://linkedin.com/company/" + handle
	case "youtube":
		return "https://youtube.com/" + handle
	case "tiktok":
		return "https://tiktok.com/@" + handle
	default:
		return handle
	}
}

// Rating is a review-site score.
type Rating struct {
	Source      string  `json:"source"`
	Score       float64 `json:"score"`
	ReviewCount int     `json:"review_count"`
}

// ratingPatterns are ordered most-specific first; the first pattern whose
// score parses into [1,5] wins.
var ratingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)TrustScore\s*([0-5](?:\.\d)?)\s*(?:out of 5)?[^\d]{0,40}([\d,]+)\s*reviews`),
	regexp.MustCompile(`(?i)rated\s*([0-5](?:\.\d)?)\s*(?:/|out of)\s*5[^\d]{0,40}(?:based on\s*)?([\d,]+)\s*reviews`),
	regexp.MustCompile(`(?i)([0-5](?:\.\d)?)\s*(?:/|out of)\s*5\s*(?:stars?)?[^\d]{0,40}([\d,]+)\s*reviews`),
	regexp.MustCompile(`(?i)([0-5](?:\.\d)?)\s*stars?[^\d]{0,40}([\d,]+)\s*reviews`),
}

// ExtractRating pulls the first plausible score and review count from
// scraped markdown for the given source label.
func ExtractRating(markdown, source string) *Rating {
	for _, pattern := range ratingPatterns {
		match := pattern.FindStringSubmatch(markdown)
		if match == nil {
			continue
		}
		score, err := strconv.ParseFloat(match[1], 64)
		if err != nil || score < 1 || score > 5 {
			continue
		}
		count := 0
		if len(match) > 2 {
			count, _ = strconv.Atoi(strings.ReplaceAll(match[2], ",", ""))
		}
		return &Rating{Source: source, Score: score, ReviewCount: count}
	}
	return nil
}

var phoneCandidatePattern = regexp.MustCompile(`\+?[\d][\d\s().\-]{7,18}\d`)

// ExtractPhones finds phone numbers in text and normalizes them to E.164
// for the given default region, deduplicated.
func ExtractPhones(text, region string) []string {
	candidates := phoneCandidatePattern.FindAllString(text, -1)
	if len(candidates) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(candidates))
	valid := make([]string, 0, len(candidates))
	for _, raw := range candidates {
		number, err := phonenumbers.Parse(strings.TrimSpace(raw), region)
		if err != nil {
			continue
		}
		if !phonenumbers.IsPossibleNumber(number) || !phonenumbers.IsValidNumber(number) {
			continue
		}
		formatted := phonenumbers.Format(number, phonenumbers.E164)
		if _, dup := seen[formatted]; dup {
			continue
		}
		seen[formatted] = struct{}{}
		valid = append(valid, formatted)
	}
	if len(valid) == 0 {
		return nil
	}
	return valid
}

// ExtractDomain pulls the registrable host out of a URL or bare domain,
// lowercased, without a www prefix. Returns "" for non-URLs.
func ExtractDomain(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.ContainsAny(raw, " \t") {
		return ""
	}
	lowered := strings.ToLower(raw)
	if !strings.Contains(lowered, "://") {
		if !strings.Contains(lowered, ".") {
			return ""
		}
		lowered = "https://" + lowered
	}
	parsed, err := url.Parse(lowered)
	if err != nil || parsed.Host == "" {
		return ""
	}
	host := strings.TrimPrefix(parsed.Host, "www.")
	if i := strings.Index(host, ":"); i > 0 {
		host = host[:i]
	}
	return host
}

// GuessDomain resolves a company name to a domain using the static table,
// or returns "" when unknown.
func GuessDomain(companyName string) string {
	return knownCompanyDomains[strings.ToLower(strings.TrimSpace(companyName))]
}
