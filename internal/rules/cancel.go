package rules

import (
	"fmt"
	"time"
)

// CancelReason is the customer's stated reason for ending a subscription.
type CancelReason string

const (
	ReasonMoving         CancelReason = "moving"
	ReasonPriceIncrease  CancelReason = "price-increase"
	ReasonPoorService    CancelReason = "poor-service"
	ReasonNoLongerNeeded CancelReason = "no-longer-needed"
	ReasonFinancial      CancelReason = "financial-hardship"
	ReasonOtherCancel    CancelReason = "other"
)

// SubscriptionType is the kind of recurring contract being cancelled.
type SubscriptionType string

const (
	SubscriptionGym       SubscriptionType = "gym"
	SubscriptionStreaming SubscriptionType = "streaming"
	SubscriptionTelecom   SubscriptionType = "telecom"
	SubscriptionSoftware  SubscriptionType = "software"
	SubscriptionOtherType SubscriptionType = "other"
)

// CancelInput carries the facts for a subscription-cancellation check.
type CancelInput struct {
	Country      Jurisdiction
	Subscription SubscriptionType
	Reason       CancelReason
	SignupDate   time.Time
	Now          time.Time
}

// CancelResult reports the notice the customer must give and the rights
// that shorten or remove it.
type CancelResult struct {
	NoticeDays    int        `json:"notice_days"`
	EarliestEnd   time.Time  `json:"earliest_end"`
	InCoolingOff  bool       `json:"in_cooling_off"`
	CoolingOffEnd *time.Time `json:"cooling_off_end,omitempty"`
	Rights        []string   `json:"rights"`
	Explanation   string     `json:"explanation"`
	Warnings      []string   `json:"warnings"`
	NextSteps     []string   `json:"next_steps"`
}

type cancelRule struct {
	noticeDays int
	rights     []string
	warnings   []string
}

// cancelTable holds the customary notice period and the statutory hooks
// per jurisdiction and subscription type.
var cancelTable = map[Jurisdiction]map[SubscriptionType]cancelRule{
	JurisdictionUK: {
		SubscriptionGym: {
			noticeDays: 30,
			rights: []string{
				"Terms locking you in after a material change of circumstances (such as moving away) may be unfair under the Consumer Rights Act 2015, Part 2.",
				"The CMA's gym-contract guidance says you should be able to exit if you move too far away to use the gym.",
			},
			warnings: []string{"Check the contract for a minimum term before relying on the notice period alone."},
		},
		SubscriptionStreaming: {
			noticeDays: 0,
			rights:     []string{"Monthly digital subscriptions normally end at the close of the paid period without notice."},
		},
		SubscriptionTelecom: {
			noticeDays: 30,
			rights: []string{
				"Ofcom rules cap notice at 30 days and require exit without penalty after a mid-contract price rise beyond the agreed terms.",
			},
		},
		SubscriptionSoftware: {
			noticeDays: 30,
			rights:     []string{"Auto-renewal terms must be prominent; buried renewals may be unenforceable as unfair terms."},
		},
		SubscriptionOtherType: {
			noticeDays: 30,
			rights:     []string{"Unfair-terms protections in the Consumer Rights Act 2015, Part 2 apply to standard-form subscription contracts."},
		},
	},
	JurisdictionEU: {
		SubscriptionOtherType: {
			noticeDays: 30,
			rights: []string{
				"Unfair-terms protections under Directive 93/13/EEC apply to standard-form contracts.",
				"Several member states cap post-renewal notice at one month.",
			},
		},
	},
	JurisdictionUS: {
		SubscriptionOtherType: {
			noticeDays: 30,
			rights: []string{
				"Automatic-renewal statutes in many states (e.g. California ARL) require clear disclosure and an online cancellation route for online signups.",
			},
			warnings: []string{"State law varies; the contract's own notice clause governs unless a statute overrides it."},
		},
	},
	JurisdictionAU: {
		SubscriptionOtherType: {
			noticeDays: 30,
			rights:     []string{"Unfair contract term protections under the Australian Consumer Law apply to standard-form consumer contracts."},
		},
	},
	JurisdictionCA: {
		SubscriptionOtherType: {
			noticeDays: 30,
			rights:     []string{"Provincial consumer protection acts restrict unilateral amendment and renewal of consumer agreements."},
		},
	},
	JurisdictionOther: {
		SubscriptionOtherType: {
			noticeDays: 30,
			rights:     []string{"Check the contract's notice clause and local unfair-terms protections."},
		},
	},
}

const cancelCoolingOffDays = 14

// CheckCancellation evaluates the notice period and statutory exits for a
// subscription.
func CheckCancellation(in CancelInput) CancelResult {
	if in.Now.IsZero() {
		in.Now = time.Now()
	}

	rule := lookupCancel(in.Country, in.Subscription)
	result := CancelResult{
		NoticeDays:  rule.noticeDays,
		EarliestEnd: in.Now.AddDate(0, 0, rule.noticeDays),
		Rights:      rule.rights,
		Warnings:    rule.warnings,
	}

	// Distance and off-premises signups carry the standard 14-day
	// cancellation window in the UK and EU.
	if in.Country == JurisdictionUK || in.Country == JurisdictionEU {
		end := in.SignupDate.AddDate(0, 0, cancelCoolingOffDays)
		if !in.SignupDate.IsZero() && in.Now.Before(end) {
			result.InCoolingOff = true
			result.CoolingOffEnd = &end
			result.EarliestEnd = in.Now
		}
	}

	switch {
	case result.InCoolingOff:
		result.Explanation = fmt.Sprintf("You signed up %d day(s) ago, so if this was an online or off-premises signup you are still inside the 14-day cancellation window and can end the contract immediately with a refund of unused fees.", daysBetween(in.SignupDate, in.Now))
	case rule.noticeDays == 0:
		result.Explanation = "No notice period applies; cancel before the next billing date and the subscription ends with the paid period."
	default:
		result.Explanation = fmt.Sprintf("Give %d days' written notice; the earliest contract end is %s.", rule.noticeDays, result.EarliestEnd.Format("2 January 2006"))
	}

	if in.Reason == ReasonPriceIncrease {
		result.Rights = append(result.Rights, "A price rise not clearly permitted by the contract generally lets you exit without penalty; say so in your letter.")
	}
	if in.Reason == ReasonMoving && in.Subscription == SubscriptionGym {
		result.Rights = append(result.Rights, "Relocation beyond reasonable travel distance is an accepted ground for early gym-contract exit.")
	}

	result.NextSteps = []string{
		"Send the cancellation in writing and keep a dated copy.",
		"Cancel any continuous payment authority with your bank as well as with the company.",
		"If the company keeps billing, dispute the payments in writing before involving your card issuer.",
	}
	return result
}

func lookupCancel(j Jurisdiction, sub SubscriptionType) cancelRule {
	byType, ok := cancelTable[j]
	if !ok {
		byType = cancelTable[JurisdictionOther]
	}
	if rule, ok := byType[sub]; ok {
		return rule
	}
	if rule, ok := byType[SubscriptionOtherType]; ok {
		return rule
	}
	return cancelTable[JurisdictionOther][SubscriptionOtherType]
}
