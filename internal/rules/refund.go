package rules

import (
	"errors"
	"fmt"
	"time"
)

// ErrFaultBeforePurchase is returned when the reported fault date
// precedes the purchase date.
var ErrFaultBeforePurchase = errors.New("fault date must not be before the purchase date")

// RefundInput carries the facts for a refund-timeline check. FaultDate is
// optional and only meaningful for faulty-goods complaints.
type RefundInput struct {
	Country      Jurisdiction
	Category     Category
	PurchaseDate time.Time
	FaultDate    *time.Time
	Now          time.Time
}

// RefundResult describes which refund route is open and its deadlines.
type RefundResult struct {
	RefundDue      bool     `json:"refund_due"`
	Route          string   `json:"route"`
	RefundDays     int      `json:"refund_days"`
	WindowDays     int      `json:"window_days"`
	DaysSince      int      `json:"days_since_purchase"`
	LegalBasis     []string `json:"legal_basis"`
	Explanation    string   `json:"explanation"`
	Warnings       []string `json:"warnings"`
	NextSteps      []string `json:"next_steps"`
	EscalationPath []string `json:"escalation_path"`
}

type refundRule struct {
	windowDays int // days from purchase during which the strongest remedy is open
	refundDays int // days the trader has to pay once the refund is agreed/required
	route      string
	legalBasis []string
	warnings   []string
}

// refundTable is keyed by jurisdiction and category. Day counts and
// statute names are factual claims; preserve them verbatim.
var refundTable = map[Jurisdiction]map[Category]refundRule{
	JurisdictionUK: {
		CategoryFaultyGoods: {
			windowDays: 30,
			refundDays: 14,
			route:      "Short-term right to reject",
			legalBasis: []string{"Consumer Rights Act 2015, s.20–s.24"},
			warnings:   []string{"After 30 days the trader may insist on one repair or replacement before a refund."},
		},
		CategoryOnlinePurchases: {
			windowDays: 14,
			refundDays: 14,
			route:      "Distance-selling cancellation",
			legalBasis: []string{"Consumer Contracts Regulations 2013"},
			warnings:   []string{"The trader can withhold the refund until the goods are back or you prove postage."},
		},
		CategoryDelivery: {
			windowDays: 30,
			refundDays: 14,
			route:      "Non-delivery refund",
			legalBasis: []string{"Consumer Rights Act 2015, s.28"},
			warnings:   []string{"If you agreed a specific delivery date, missing it entitles you to cancel immediately."},
		},
		CategoryServices: {
			windowDays: 0,
			refundDays: 14,
			route:      "Repeat performance or price reduction",
			legalBasis: []string{"Consumer Rights Act 2015, s.49–s.56"},
		},
		CategoryGeneral: {
			windowDays: 30,
			refundDays: 14,
			route:      "Statutory quality rights",
			legalBasis: []string{"Consumer Rights Act 2015"},
		},
	},
	JurisdictionEU: {
		CategoryFaultyGoods: {
			windowDays: 730,
			refundDays: 14,
			route:      "Legal guarantee of conformity",
			legalBasis: []string{"Sale of Goods Directive (EU) 2019/771"},
			warnings:   []string{"The seller may first offer repair or replacement; a refund follows if neither works within a reasonable time."},
		},
		CategoryOnlinePurchases: {
			windowDays: 14,
			refundDays: 14,
			route:      "Right of withdrawal",
			legalBasis: []string{"Consumer Rights Directive 2011/83/EU"},
		},
		CategoryGeneral: {
			windowDays: 730,
			refundDays: 14,
			route:      "Legal guarantee of conformity",
			legalBasis: []string{"Sale of Goods Directive (EU) 2019/771"},
		},
	},
	JurisdictionUS: {
		CategoryFaultyGoods: {
			windowDays: 0,
			refundDays: 30,
			route:      "Warranty claim",
			legalBasis: []string{"Magnuson-Moss Warranty Act", "UCC §2-314 implied warranty"},
			warnings:   []string{"Remedies depend heavily on the written warranty and state law."},
		},
		CategoryGeneral: {
			windowDays: 0,
			refundDays: 30,
			route:      "Retailer policy plus state law",
			legalBasis: []string{"FTC Act §5", "State consumer protection statutes"},
			warnings:   []string{"There is no federal refund right for change of mind; the posted store policy governs."},
		},
	},
	JurisdictionAU: {
		CategoryFaultyGoods: {
			windowDays: 0,
			refundDays: 14,
			route:      "Consumer guarantee remedy",
			legalBasis: []string{"Australian Consumer Law, s.54 and s.259"},
			warnings:   []string{"For a major failure you choose the remedy (refund, replacement, or repair); for minor failures the seller chooses."},
		},
		CategoryGeneral: {
			windowDays: 0,
			refundDays: 14,
			route:      "Consumer guarantee remedy",
			legalBasis: []string{"Australian Consumer Law"},
		},
	},
	JurisdictionCA: {
		CategoryGeneral: {
			windowDays: 0,
			refundDays: 15,
			route:      "Provincial consumer protection claim",
			legalBasis: []string{"Provincial consumer protection acts (e.g. Ontario CPA 2002)"},
		},
	},
	JurisdictionOther: {
		CategoryGeneral: {
			windowDays: 0,
			refundDays: 30,
			route:      "Local consumer protection claim",
			legalBasis: []string{"Local consumer protection law"},
			warnings:   []string{"Deadlines vary widely; confirm the local limitation period before relying on it."},
		},
	},
}

// RefundTimeline evaluates which refund route is open for the purchase.
// The only cross-field invariant: a fault cannot predate the purchase.
func RefundTimeline(in RefundInput) (RefundResult, error) {
	if in.Now.IsZero() {
		in.Now = time.Now()
	}
	if in.FaultDate != nil && in.FaultDate.Before(in.PurchaseDate) {
		return RefundResult{}, ErrFaultBeforePurchase
	}

	rule := lookupRefund(in.Country, in.Category)
	rights := Rights(in.Country, in.Category)
	daysSince := daysBetween(in.PurchaseDate, in.Now)

	result := RefundResult{
		Route:          rule.route,
		RefundDays:     rule.refundDays,
		WindowDays:     rule.windowDays,
		DaysSince:      daysSince,
		LegalBasis:     rule.legalBasis,
		Warnings:       rule.warnings,
		EscalationPath: rights.Escalation,
	}

	switch {
	case rule.windowDays == 0:
		result.RefundDue = true
		result.Explanation = fmt.Sprintf("The %s route has no fixed purchase-date window. Once the trader accepts (or the law requires) a refund, it must be paid within %d days.", rule.route, rule.refundDays)
	case daysSince <= rule.windowDays:
		result.RefundDue = true
		result.Explanation = fmt.Sprintf("You are %d day(s) from purchase, inside the %d-day window for the %s. A refund, once due, must be paid within %d days.", daysSince, rule.windowDays, rule.route, rule.refundDays)
	default:
		result.Explanation = fmt.Sprintf("The %d-day window for the %s closed %d day(s) ago. Weaker remedies (repair, replacement, or partial refund) may still be open.", rule.windowDays, rule.route, daysSince-rule.windowDays)
	}

	result.NextSteps = []string{
		fmt.Sprintf("Put the complaint in writing, citing %s.", rule.legalBasis[0]),
		fmt.Sprintf("Give the trader %d days to respond before escalating.", rights.ResponseDays),
		"Keep the goods, packaging, and all correspondence until the claim is resolved.",
	}
	return result, nil
}

func lookupRefund(j Jurisdiction, cat Category) refundRule {
	byCategory, ok := refundTable[j]
	if !ok {
		byCategory = refundTable[JurisdictionOther]
	}
	if rule, ok := byCategory[cat]; ok {
		return rule
	}
	if rule, ok := byCategory[CategoryGeneral]; ok {
		return rule
	}
	return refundTable[JurisdictionOther][CategoryGeneral]
}
