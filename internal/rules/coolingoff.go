package rules

import (
	"fmt"
	"time"
)

// PurchaseLocation is the sales channel of the purchase.
type PurchaseLocation string

const (
	PurchaseOnline   PurchaseLocation = "online"
	PurchaseInStore  PurchaseLocation = "in-store"
	PurchasePhone    PurchaseLocation = "phone"
	PurchaseDoorstep PurchaseLocation = "doorstep"
)

// ProductType is the kind of thing bought.
type ProductType string

const (
	ProductPhysicalGoods  ProductType = "physical-goods"
	ProductDigitalContent ProductType = "digital-content"
	ProductService        ProductType = "services"
)

// CoolingOffInput carries the facts for a cancellation-window check.
// ReceiveDate is the delivery date for goods and the contract date for
// services and digital content.
type CoolingOffInput struct {
	Country     Jurisdiction
	Location    PurchaseLocation
	ProductType ProductType
	ReceiveDate time.Time
	Now         time.Time
}

// CoolingOffResult reports whether a statutory cancellation window exists
// and how much of it remains.
type CoolingOffResult struct {
	HasCoolingOff bool       `json:"has_cooling_off"`
	PeriodDays    int        `json:"period_days"`
	DaysRemaining int        `json:"days_remaining"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	Regulation    string     `json:"regulation"`
	Explanation   string     `json:"explanation"`
	Warnings      []string   `json:"warnings"`
	NextSteps     []string   `json:"next_steps"`
}

type coolingOffRule struct {
	periodDays int
	regulation string
	warnings   []string
}

// coolingOffTable holds the statutory windows keyed by jurisdiction and
// sales channel. A zero period means no statutory right.
var coolingOffTable = map[Jurisdiction]map[PurchaseLocation]coolingOffRule{
	JurisdictionUK: {
		PurchaseOnline: {
			periodDays: 14,
			regulation: "Consumer Contracts Regulations 2013",
			warnings: []string{
				"The right is waived for digital content once you start the download with consent.",
				"Bespoke, perishable, and sealed hygiene items are excluded.",
			},
		},
		PurchasePhone: {
			periodDays: 14,
			regulation: "Consumer Contracts Regulations 2013",
		},
		PurchaseDoorstep: {
			periodDays: 14,
			regulation: "Consumer Contracts Regulations 2013 (off-premises contracts)",
		},
		PurchaseInStore: {
			periodDays: 0,
			regulation: "No statutory cooling-off for in-store purchases",
			warnings:   []string{"Any return right for in-store purchases is the shop's own goodwill policy, not law."},
		},
	},
	JurisdictionEU: {
		PurchaseOnline: {
			periodDays: 14,
			regulation: "Consumer Rights Directive 2011/83/EU",
			warnings:   []string{"The right is waived for digital content once performance begins with your consent."},
		},
		PurchasePhone: {
			periodDays: 14,
			regulation: "Consumer Rights Directive 2011/83/EU",
		},
		PurchaseDoorstep: {
			periodDays: 14,
			regulation: "Consumer Rights Directive 2011/83/EU (off-premises contracts)",
		},
		PurchaseInStore: {
			periodDays: 0,
			regulation: "No statutory cooling-off for on-premises purchases",
		},
	},
	JurisdictionUS: {
		PurchaseDoorstep: {
			periodDays: 3,
			regulation: "FTC Cooling-Off Rule (16 CFR Part 429)",
			warnings:   []string{"Applies to door-to-door and off-premises sales of $25 or more only."},
		},
		PurchaseOnline: {
			periodDays: 0,
			regulation: "No federal cooling-off right for online purchases",
			warnings:   []string{"Return rights for online purchases come from the retailer's own policy and some state laws."},
		},
		PurchaseInStore: {
			periodDays: 0,
			regulation: "No federal cooling-off right for in-store purchases",
		},
		PurchasePhone: {
			periodDays: 3,
			regulation: "FTC Cooling-Off Rule (16 CFR Part 429)",
			warnings:   []string{"Telephone sales are covered only when the sale is completed away from the seller's permanent place of business."},
		},
	},
	JurisdictionAU: {
		PurchaseDoorstep: {
			periodDays: 10,
			regulation: "Australian Consumer Law (unsolicited consumer agreements)",
			warnings:   []string{"The 10 business-day window applies to unsolicited sales, not purchases you initiated."},
		},
		PurchaseOnline: {
			periodDays: 0,
			regulation: "No general cooling-off under the ACL",
			warnings:   []string{"ACL consumer guarantees still apply if the product is faulty or not as described."},
		},
		PurchaseInStore: {
			periodDays: 0,
			regulation: "No general cooling-off under the ACL",
		},
		PurchasePhone: {
			periodDays: 10,
			regulation: "Australian Consumer Law (unsolicited consumer agreements)",
		},
	},
	JurisdictionCA: {
		PurchaseDoorstep: {
			periodDays: 10,
			regulation: "Provincial direct-sales rules (e.g. Ontario CPA 2002)",
			warnings:   []string{"Windows vary by province; 10 days is the common direct-sales period."},
		},
		PurchaseOnline: {
			periodDays: 0,
			regulation: "No general cooling-off; provincial internet-agreement rules give cancellation rights for disclosure failures",
		},
		PurchaseInStore: {
			periodDays: 0,
			regulation: "No general cooling-off for in-store purchases",
		},
		PurchasePhone: {
			periodDays: 10,
			regulation: "Provincial remote-agreement rules",
		},
	},
	JurisdictionOther: {
		PurchaseOnline: {
			periodDays: 0,
			regulation: "Check local distance-selling law",
			warnings:   []string{"Many jurisdictions provide a 7–14 day distance-selling withdrawal right; confirm locally."},
		},
	},
}

// CheckCoolingOff evaluates whether a statutory cancellation window is
// still open. daysRemaining = max(0, periodDays - daysSinceReceived) in
// every branch.
func CheckCoolingOff(in CoolingOffInput) CoolingOffResult {
	if in.Now.IsZero() {
		in.Now = time.Now()
	}

	rule := lookupCoolingOff(in.Country, in.Location)

	result := CoolingOffResult{
		PeriodDays: rule.periodDays,
		Regulation: rule.regulation,
		Warnings:   rule.warnings,
	}

	if rule.periodDays == 0 {
		result.Explanation = "There is no statutory cooling-off period for this kind of purchase. Any return right depends on the seller's own policy."
		result.NextSteps = []string{
			"Check the seller's published returns policy.",
			"If the item is faulty or not as described, statutory quality rights apply instead; use the refund timeline checker.",
		}
		return result
	}

	daysSince := daysBetween(in.ReceiveDate, in.Now)
	remaining := rule.periodDays - daysSince
	if remaining < 0 {
		remaining = 0
	}
	result.DaysRemaining = remaining
	result.HasCoolingOff = remaining > 0
	deadline := in.ReceiveDate.AddDate(0, 0, rule.periodDays)
	result.Deadline = &deadline

	if result.HasCoolingOff {
		result.Explanation = fmt.Sprintf("You have a %d-day cancellation right under the %s and %d day(s) of it remain. Cancel in writing before the deadline for a full refund.", rule.periodDays, rule.regulation, remaining)
		result.NextSteps = []string{
			"Tell the seller in writing (email is fine) that you are cancelling; you do not need to give a reason.",
			"Return the goods within 14 days of cancelling; the refund is due within 14 days of the seller receiving them back.",
			"Keep proof of postage and a copy of your cancellation notice.",
		}
		if in.ProductType == ProductDigitalContent {
			result.Warnings = append(result.Warnings, "If you already started downloading or streaming with consent, the cancellation right is lost.")
		}
	} else {
		result.Explanation = fmt.Sprintf("The %d-day cancellation window closed %d day(s) ago.", rule.periodDays, daysSince-rule.periodDays)
		result.NextSteps = []string{
			"The cooling-off route is closed, but quality rights have no such window; if the item is faulty, use the refund timeline checker.",
			"Ask the seller about a goodwill return; many accept returns beyond the statutory window.",
		}
	}

	return result
}

func lookupCoolingOff(j Jurisdiction, loc PurchaseLocation) coolingOffRule {
	byLocation, ok := coolingOffTable[j]
	if !ok {
		byLocation = coolingOffTable[JurisdictionOther]
	}
	if rule, ok := byLocation[loc]; ok {
		return rule
	}
	if rule, ok := byLocation[PurchaseOnline]; ok {
		return rule
	}
	return coolingOffRule{regulation: "Check local consumer law"}
}

// daysBetween counts whole calendar days from a to b, never negative.
func daysBetween(a, b time.Time) int {
	if b.Before(a) {
		return 0
	}
	return int(b.Sub(a).Hours() / 24)
}
