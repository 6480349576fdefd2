// Package rules implements the jurisdiction-aware consumer-rights
// evaluators behind the free tools. Every evaluator is a pure function:
// ineligibility is a fully populated result, never an error.
package rules

import (
	"fmt"
	"strings"
)

// Jurisdiction identifies a supported country or region.
type Jurisdiction string

const (
	JurisdictionUK    Jurisdiction = "uk"
	JurisdictionUS    Jurisdiction = "us"
	JurisdictionEU    Jurisdiction = "eu"
	JurisdictionAU    Jurisdiction = "au"
	JurisdictionCA    Jurisdiction = "ca"
	JurisdictionOther Jurisdiction = "other"
)

// ParseJurisdiction normalizes user input into a known jurisdiction.
func ParseJurisdiction(value string) (Jurisdiction, error) {
	switch Jurisdiction(strings.ToLower(strings.TrimSpace(value))) {
	case JurisdictionUK:
		return JurisdictionUK, nil
	case JurisdictionUS:
		return JurisdictionUS, nil
	case JurisdictionEU:
		return JurisdictionEU, nil
	case JurisdictionAU:
		return JurisdictionAU, nil
	case JurisdictionCA:
		return JurisdictionCA, nil
	case JurisdictionOther, "":
		return JurisdictionOther, nil
	default:
		return "", fmt.Errorf("unsupported jurisdiction: %q", value)
	}
}

// Category identifies a complaint domain.
type Category string

const (
	CategoryFaultyGoods     Category = "faulty-goods"
	CategoryRefunds         Category = "refunds"
	CategoryOnlinePurchases Category = "online-purchases"
	CategoryDelivery        Category = "delivery"
	CategoryServices        Category = "services"
	CategorySubscriptions   Category = "subscriptions"
	CategoryTravel          Category = "travel"
	CategoryFinancial       Category = "financial"
	CategoryGeneral         Category = "general"
)

// ParseCategory normalizes user input into a known category, falling back
// to the general bucket for anything unrecognized.
func ParseCategory(value string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(value))) {
	case CategoryFaultyGoods:
		return CategoryFaultyGoods
	case CategoryRefunds:
		return CategoryRefunds
	case CategoryOnlinePurchases:
		return CategoryOnlinePurchases
	case CategoryDelivery:
		return CategoryDelivery
	case CategoryServices:
		return CategoryServices
	case CategorySubscriptions:
		return CategorySubscriptions
	case CategoryTravel:
		return CategoryTravel
	case CategoryFinancial:
		return CategoryFinancial
	default:
		return CategoryGeneral
	}
}

// ConsumerRights captures the statutory baseline for one jurisdiction and
// category: how long the trader has to respond, the law the complaint
// should cite, and where to escalate when the trader does not engage.
type ConsumerRights struct {
	ResponseDays int      `json:"response_days"`
	Citation     string   `json:"citation"`
	Regulator    string   `json:"regulator"`
	Escalation   []string `json:"escalation"`
	KeyPhrases   []string `json:"key_phrases"`
}

// rightsTable is reference data. The day counts, statute names, and
// escalation bodies are the product's factual claims and must not be
// edited without checking the underlying law.
var rightsTable = map[Jurisdiction]map[Category]ConsumerRights{
	JurisdictionUK: {
		CategoryFaultyGoods: {
			ResponseDays: 14,
			Citation:     "Consumer Rights Act 2015",
			Regulator:    "Trading Standards",
			Escalation:   []string{"Retail ADR scheme", "Trading Standards", "Small claims court (Money Claim Online)"},
			KeyPhrases:   []string{"of satisfactory quality", "fit for purpose", "short-term right to reject"},
		},
		CategoryRefunds: {
			ResponseDays: 14,
			Citation:     "Consumer Rights Act 2015",
			Regulator:    "Trading Standards",
			Escalation:   []string{"Chargeback via card issuer", "Section 75 claim (credit card, £100–£30,000)", "Small claims court"},
			KeyPhrases:   []string{"full refund", "within 14 days", "breach of contract"},
		},
		CategoryOnlinePurchases: {
			ResponseDays: 14,
			Citation:     "Consumer Contracts Regulations 2013",
			Regulator:    "Trading Standards",
			Escalation:   []string{"Chargeback via card issuer", "Trading Standards", "Small claims court"},
			KeyPhrases:   []string{"14-day cancellation right", "distance contract", "right to a refund within 14 days"},
		},
		CategoryDelivery: {
			ResponseDays: 14,
			Citation:     "Consumer Rights Act 2015, s.28",
			Regulator:    "Trading Standards",
			Escalation:   []string{"Chargeback via card issuer", "Small claims court"},
			KeyPhrases:   []string{"delivery within 30 days", "time is of the essence"},
		},
		CategoryServices: {
			ResponseDays: 14,
			Citation:     "Consumer Rights Act 2015, s.49",
			Regulator:    "Trading Standards",
			Escalation:   []string{"Sector ADR scheme", "Small claims court"},
			KeyPhrases:   []string{"reasonable care and skill", "repeat performance", "price reduction"},
		},
		CategorySubscriptions: {
			ResponseDays: 14,
			Citation:     "Consumer Rights Act 2015 and Consumer Contracts Regulations 2013",
			Regulator:    "Competition and Markets Authority",
			Escalation:   []string{"CMA unfair-terms complaint", "Small claims court"},
			KeyPhrases:   []string{"unfair contract term", "cancellation right", "automatic renewal"},
		},
		CategoryTravel: {
			ResponseDays: 28,
			Citation:     "UK261 (Regulation EC 261/2004 as retained)",
			Regulator:    "Civil Aviation Authority",
			Escalation:   []string{"Airline ADR scheme (CEDR/AviationADR)", "Civil Aviation Authority", "Small claims court"},
			KeyPhrases:   []string{"fixed compensation", "extraordinary circumstances", "duty of care"},
		},
		CategoryFinancial: {
			ResponseDays: 56,
			Citation:     "FCA DISP rules",
			Regulator:    "Financial Conduct Authority",
			Escalation:   []string{"Financial Ombudsman Service (after 8 weeks or final response)"},
			KeyPhrases:   []string{"final response", "eight weeks", "FOS referral rights"},
		},
		CategoryGeneral: {
			ResponseDays: 14,
			Citation:     "Consumer Rights Act 2015",
			Regulator:    "Trading Standards",
			Escalation:   []string{"Citizens Advice consumer service", "Trading Standards", "Small claims court"},
			KeyPhrases:   []string{"statutory rights", "reasonable time"},
		},
	},
	JurisdictionEU: {
		CategoryFaultyGoods: {
			ResponseDays: 14,
			Citation:     "Sale of Goods Directive (EU) 2019/771",
			Regulator:    "National consumer protection authority",
			Escalation:   []string{"National ADR body", "European Consumer Centre (cross-border)", "ODR platform"},
			KeyPhrases:   []string{"lack of conformity", "two-year legal guarantee", "repair or replacement"},
		},
		CategoryOnlinePurchases: {
			ResponseDays: 14,
			Citation:     "Consumer Rights Directive 2011/83/EU",
			Regulator:    "National consumer protection authority",
			Escalation:   []string{"National ADR body", "ODR platform", "European Consumer Centre"},
			KeyPhrases:   []string{"14-day right of withdrawal", "refund within 14 days"},
		},
		CategoryTravel: {
			ResponseDays: 42,
			Citation:     "Regulation (EC) No 261/2004",
			Regulator:    "National enforcement body",
			Escalation:   []string{"National enforcement body for EC261", "ADR scheme", "Court"},
			KeyPhrases:   []string{"fixed compensation", "extraordinary circumstances", "right to care"},
		},
		CategoryFinancial: {
			ResponseDays: 15,
			Citation:     "PSD2 (Directive (EU) 2015/2366)",
			Regulator:    "National financial ombudsman",
			Escalation:   []string{"National financial ombudsman", "FIN-NET (cross-border)"},
			KeyPhrases:   []string{"15 business days", "payment service provider"},
		},
		CategoryGeneral: {
			ResponseDays: 14,
			Citation:     "Consumer Rights Directive 2011/83/EU",
			Regulator:    "National consumer protection authority",
			Escalation:   []string{"National ADR body", "European Consumer Centre"},
			KeyPhrases:   []string{"consumer guarantee", "conformity with the contract"},
		},
	},
	JurisdictionUS: {
		CategoryFaultyGoods: {
			ResponseDays: 30,
			Citation:     "Magnuson-Moss Warranty Act and UCC §2-314",
			Regulator:    "Federal Trade Commission",
			Escalation:   []string{"State attorney general", "FTC complaint", "Small claims court"},
			KeyPhrases:   []string{"implied warranty of merchantability", "breach of warranty"},
		},
		CategoryRefunds: {
			ResponseDays: 30,
			Citation:     "FTC Act §5 and state consumer protection statutes",
			Regulator:    "Federal Trade Commission",
			Escalation:   []string{"Chargeback under Fair Credit Billing Act", "State attorney general", "Small claims court"},
			KeyPhrases:   []string{"deceptive practice", "posted refund policy"},
		},
		CategoryFinancial: {
			ResponseDays: 15,
			Citation:     "CFPB complaint process",
			Regulator:    "Consumer Financial Protection Bureau",
			Escalation:   []string{"CFPB complaint (company must respond within 15 days)", "State regulator"},
			KeyPhrases:   []string{"CFPB complaint", "written response"},
		},
		CategoryTravel: {
			ResponseDays: 30,
			Citation:     "DOT consumer protection rules (14 CFR Part 259)",
			Regulator:    "U.S. Department of Transportation",
			Escalation:   []string{"DOT Office of Aviation Consumer Protection", "Small claims court"},
			KeyPhrases:   []string{"involuntarily denied boarding", "significant change"},
		},
		CategoryGeneral: {
			ResponseDays: 30,
			Citation:     "State consumer protection statutes",
			Regulator:    "State attorney general",
			Escalation:   []string{"Better Business Bureau", "State attorney general", "Small claims court"},
			KeyPhrases:   []string{"unfair or deceptive acts and practices"},
		},
	},
	JurisdictionAU: {
		CategoryFaultyGoods: {
			ResponseDays: 14,
			Citation:     "Australian Consumer Law, s.54",
			Regulator:    "ACCC",
			Escalation:   []string{"State fair trading office", "ACCC report", "Civil and Administrative Tribunal"},
			KeyPhrases:   []string{"consumer guarantee", "acceptable quality", "major failure"},
		},
		CategoryGeneral: {
			ResponseDays: 14,
			Citation:     "Australian Consumer Law",
			Regulator:    "ACCC",
			Escalation:   []string{"State fair trading office", "ACCC report"},
			KeyPhrases:   []string{"consumer guarantee", "remedy for failure"},
		},
	},
	JurisdictionCA: {
		CategoryFaultyGoods: {
			ResponseDays: 14,
			Citation:     "Provincial consumer protection acts (e.g. Ontario CPA 2002)",
			Regulator:    "Provincial consumer protection office",
			Escalation:   []string{"Provincial consumer protection office", "Small claims court"},
			KeyPhrases:   []string{"implied condition of merchantable quality"},
		},
		CategoryTravel: {
			ResponseDays: 30,
			Citation:     "Air Passenger Protection Regulations (APPR)",
			Regulator:    "Canadian Transportation Agency",
			Escalation:   []string{"Canadian Transportation Agency complaint"},
			KeyPhrases:   []string{"within the carrier's control", "large carrier"},
		},
		CategoryGeneral: {
			ResponseDays: 14,
			Citation:     "Provincial consumer protection acts",
			Regulator:    "Provincial consumer protection office",
			Escalation:   []string{"Provincial consumer protection office", "Small claims court"},
			KeyPhrases:   []string{"unfair practice"},
		},
	},
	JurisdictionOther: {
		CategoryGeneral: {
			ResponseDays: 30,
			Citation:     "Local consumer protection law",
			Regulator:    "Local consumer protection authority",
			Escalation:   []string{"Local consumer protection authority", "Local court"},
			KeyPhrases:   []string{"consumer protection", "refund or remedy"},
		},
	},
}

// Rights returns the statutory baseline for a jurisdiction and category.
// Unknown categories fall back to the jurisdiction's general entry, and
// unknown jurisdictions fall back to the generic entry, so a populated
// result is always returned.
func Rights(j Jurisdiction, cat Category) ConsumerRights {
	byCategory, ok := rightsTable[j]
	if !ok {
		byCategory = rightsTable[JurisdictionOther]
	}
	if rights, ok := byCategory[cat]; ok {
		return rights
	}
	if rights, ok := byCategory[CategoryGeneral]; ok {
		return rights
	}
	return rightsTable[JurisdictionOther][CategoryGeneral]
}
