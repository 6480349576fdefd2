package research

import (
	"sort"
	"strings"
)

// emailPriorityRules is an ordered list of substring checks. The order is
// significant: the first matching rule sets the base score, so
// "customer.service" must be tested before the broader "service" and
// "support@" before "support". Do not re-sort or re-derive these.
var emailPriorityRules = []struct {
	substring string
	score     int
}{
	{"customer.service", 100},
	{"customerservice", 100},
	{"customer.care", 95},
	{"customercare", 95},
	{"complaints", 95},
	{"complaint", 90},
	{"support@", 85},
	{"help@", 85},
	{"support", 80},
	{"help", 75},
	{"care", 70},
	{"ceo", 65},
	{"founder", 60},
	{"director", 60},
	{"contact", 55},
	{"hello", 50},
	{"info", 45},
	{"enquiries", 45},
	{"inquiries", 45},
	{"admin", 30},
	{"sales", 20},
}

const (
	baseEmailScore      = 10
	ownDomainBonus      = 25
	maxContactEmails    = 5
	executiveScoreFloor = 60
)

// ScoreEmail applies the ordered priority rules to one address.
// companyDomain, when known, grants the own-domain bonus to addresses on
// the company's own domain over ones found on third-party pages.
func ScoreEmail(email, companyDomain string) int {
	email = strings.ToLower(email)
	score := baseEmailScore
	for _, rule := range emailPriorityRules {
		if strings.Contains(email, rule.substring) {
			score = rule.score
			break
		}
	}
	if companyDomain != "" {
		if at := strings.Index(email, "@"); at > 0 {
			domain := email[at+1:]
			if domain == companyDomain || strings.HasSuffix(domain, "."+companyDomain) {
				score += ownDomainBonus
			}
		}
	}
	return score
}

// RankEmails filters, classifies, and scores the raw addresses and
// returns the top entries by score. Ties keep input order, so the ranking
// is stable across identical inputs.
func RankEmails(raw []string, companyDomain string) []ContactEmail {
	filtered := FilterEmails(raw)
	if len(filtered) == 0 {
		return nil
	}

	contacts := make([]ContactEmail, 0, len(filtered))
	for _, email := range filtered {
		contacts = append(contacts, ContactEmail{
			Address: email,
			Role:    ClassifyEmail(email),
			Score:   ScoreEmail(email, companyDomain),
		})
	}

	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].Score > contacts[j].Score
	})

	if len(contacts) > maxContactEmails {
		contacts = contacts[:maxContactEmails]
	}
	return contacts
}
