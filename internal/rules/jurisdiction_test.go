package rules

import "testing"

func TestParseJurisdiction(t *testing.T) {
	tests := map[string]struct {
		input     string
		expected  Jurisdiction
		expectErr bool
	}{
		"uk":                  {input: "uk", expected: JurisdictionUK},
		"uppercase":           {input: "UK", expected: JurisdictionUK},
		"padded":              {input: "  eu  ", expected: JurisdictionEU},
		"empty defaults":      {input: "", expected: JurisdictionOther},
		"other":               {input: "other", expected: JurisdictionOther},
		"unsupported country": {input: "mars", expectErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseJurisdiction(tt.input)
			if tt.expectErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Fatalf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	if ParseCategory("Faulty-Goods") != CategoryFaultyGoods {
		t.Fatal("expected case-insensitive parse")
	}
	if ParseCategory("anything else") != CategoryGeneral {
		t.Fatal("expected unknown category to fall back to general")
	}
}

func TestRights_Fallbacks(t *testing.T) {
	// Category the jurisdiction lacks falls back to its general entry.
	au := Rights(JurisdictionAU, CategoryTravel)
	if au.Citation != "Australian Consumer Law" {
		t.Fatalf("expected au general fallback, got %q", au.Citation)
	}

	// Unknown jurisdiction falls back to the generic entry.
	other := Rights(Jurisdiction("zz"), CategoryGeneral)
	if other.ResponseDays != 30 || other.Citation != "Local consumer protection law" {
		t.Fatalf("unexpected generic fallback: %+v", other)
	}

	uk := Rights(JurisdictionUK, CategoryFinancial)
	if uk.ResponseDays != 56 {
		t.Fatalf("expected 56-day financial response period, got %d", uk.ResponseDays)
	}
}
