package research

import "testing"

func TestScoreEmail(t *testing.T) {
	tests := map[string]struct {
		email  string
		domain string
		score  int
	}{
		"customer service outranks service":  {email: "customer.service@acme.com", score: 100},
		"complaints scores high":             {email: "complaints@acme.com", score: 95},
		"support at sign beats bare support": {email: "support@acme.com", score: 85},
		"embedded support scores lower":      {email: "tech.support.team@acme.com", score: 80},
		"info is low priority":               {email: "info@acme.com", score: 45},
		"sales is near the floor":            {email: "sales@acme.com", score: 20},
		"unmatched gets the base score":      {email: "zzz@acme.com", score: 10},
		"own domain bonus applies":           {email: "info@acme.com", domain: "acme.com", score: 70},
		"subdomain gets the bonus too":       {email: "info@mail.acme.com", domain: "acme.com", score: 70},
		"other domain gets no bonus":         {email: "info@other.com", domain: "acme.com", score: 45},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ScoreEmail(tt.email, tt.domain); got != tt.score {
				t.Fatalf("ScoreEmail(%q, %q) = %d, want %d", tt.email, tt.domain, got, tt.score)
			}
		})
	}
}

func TestRankEmails(t *testing.T) {
	raw := []string{
		"sales@acme.com",
		"noreply@acme.com",
		"customer.service@acme.com",
		"info@acme.com",
		"ceo@acme.com",
		"support@acme.com",
		"hello@acme.com",
		"admin@acme.com",
	}

	ranked := RankEmails(raw, "acme.com")
	if len(ranked) != maxContactEmails {
		t.Fatalf("expected top %d contacts, got %d", maxContactEmails, len(ranked))
	}
	if ranked[0].Address != "customer.service@acme.com" {
		t.Fatalf("expected customer service first, got %q", ranked[0].Address)
	}
	if ranked[0].Role != RoleCustomerService {
		t.Fatalf("expected customer-service role, got %s", ranked[0].Role)
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Fatalf("ranking not descending at %d: %+v", i, ranked)
		}
	}
	for _, c := range ranked {
		if c.Address == "sales@acme.com" || c.Address == "noreply@acme.com" {
			t.Fatalf("expected %q to be cut, got %+v", c.Address, ranked)
		}
	}

	if got := RankEmails(nil, "acme.com"); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}

func TestRankEmails_StableTies(t *testing.T) {
	// Identical scores keep first-appearance order.
	first := RankEmails([]string{"a.zz@acme.com", "b.zz@acme.com"}, "")
	if len(first) != 2 || first[0].Address != "a.zz@acme.com" {
		t.Fatalf("expected stable order, got %+v", first)
	}
}
