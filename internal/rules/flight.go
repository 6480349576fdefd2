package rules

import (
	"fmt"
	"time"
)

// DelayReason is the airline-reported cause of the disruption.
type DelayReason string

const (
	ReasonTechnical         DelayReason = "technical"
	ReasonWeather           DelayReason = "weather"
	ReasonStrike            DelayReason = "strike"
	ReasonAirTrafficControl DelayReason = "air-traffic-control"
	ReasonOverbooking       DelayReason = "overbooking"
	ReasonCancellation      DelayReason = "cancellation"
	ReasonUnknown           DelayReason = "unknown"
)

// FlightDistance buckets a route into the fixed compensation tiers used by
// UK261/EU261: short (≤1,500km), medium (1,500–3,500km), long (>3,500km).
type FlightDistance string

const (
	DistanceShort  FlightDistance = "short"
	DistanceMedium FlightDistance = "medium"
	DistanceLong   FlightDistance = "long"
)

// FlightInput carries the facts of one disrupted flight. Now is the
// evaluation clock; callers outside tests pass time.Now().
type FlightInput struct {
	Region          Jurisdiction
	DepartureRegion Jurisdiction
	ArrivalRegion   Jurisdiction
	DelayHours      float64
	DelayReason     DelayReason
	Distance        FlightDistance
	FlightDate      time.Time
	Now             time.Time
}

// FlightResult is the outcome of a compensation assessment. Compensation
// is nil whenever no cash compensation is due; ineligibility is a valid
// result, not an error.
type FlightResult struct {
	Eligible          bool       `json:"eligible"`
	EligibilityReason string     `json:"eligibility_reason"`
	Compensation      *int       `json:"compensation"`
	Currency          string     `json:"currency,omitempty"`
	Regulation        string     `json:"regulation"`
	AdditionalRights  []string   `json:"additional_rights"`
	Steps             []string   `json:"steps"`
	Warnings          []string   `json:"warnings"`
	ClaimDeadline     *time.Time `json:"claim_deadline,omitempty"`
}

// Fixed compensation tiers by distance bucket. Hard thresholds, never
// prorated by actual delay length.
var (
	uk261Tiers = map[FlightDistance]int{DistanceShort: 220, DistanceMedium: 350, DistanceLong: 520}
	eu261Tiers = map[FlightDistance]int{DistanceShort: 250, DistanceMedium: 400, DistanceLong: 600}
)

// US DOT involuntary denied-boarding tiers by arrival-delay bucket.
const (
	dotShortDelayCap = 775  // 1–2h domestic arrival delay, 200% of fare up to this cap
	dotLongDelayCap  = 1550 // over 2h, 400% of fare up to this cap
)

// Canada APPR tiers for large carriers, by arrival-delay bucket.
const (
	apprThreeToSixHours = 400
	apprSixToNineHours  = 700
	apprNineHoursPlus   = 1000
)

const (
	ukClaimYears = 6
	euClaimYears = 3
)

// CalculateCompensation maps one flight disruption to the governing
// regime and its fixed compensation table.
func CalculateCompensation(in FlightInput) FlightResult {
	if in.Now.IsZero() {
		in.Now = time.Now()
	}

	switch {
	case in.Region == JurisdictionUK || in.DepartureRegion == JurisdictionUK:
		return evaluateUKEU(in, JurisdictionUK)
	case in.Region == JurisdictionEU || in.DepartureRegion == JurisdictionEU:
		return evaluateUKEU(in, JurisdictionEU)
	case in.Region == JurisdictionUS:
		return evaluateUS(in)
	case in.Region == JurisdictionCA:
		return evaluateCanada(in)
	case in.Region == JurisdictionAU:
		return evaluateAustralia(in)
	default:
		return evaluateGeneric(in)
	}
}

func evaluateUKEU(in FlightInput, regime Jurisdiction) FlightResult {
	regulation := "EU261 (Regulation EC 261/2004)"
	currency := "EUR"
	tiers := eu261Tiers
	claimYears := euClaimYears
	regulator := "your national enforcement body"
	if regime == JurisdictionUK {
		regulation = "UK261 (Regulation EC 261/2004 as retained in UK law)"
		currency = "GBP"
		tiers = uk261Tiers
		claimYears = ukClaimYears
		regulator = "the Civil Aviation Authority"
	}

	deadline := in.FlightDate.AddDate(claimYears, 0, 0)
	result := FlightResult{
		Regulation:    regulation,
		ClaimDeadline: &deadline,
	}

	if in.Now.After(deadline) {
		result.EligibilityReason = fmt.Sprintf("The claim window of %d years from the flight date has expired.", claimYears)
		result.Steps = []string{"Check whether the airline runs a goodwill scheme; statutory routes are closed."}
		return result
	}

	// Extraordinary circumstances carve-out: weather always defeats cash
	// compensation regardless of delay length.
	if in.DelayReason == ReasonWeather {
		result.EligibilityReason = "Severe weather counts as an extraordinary circumstance, so no cash compensation is due."
		result.AdditionalRights = []string{
			"Meals and refreshments after a 2+ hour wait",
			"Hotel accommodation and transfers if delayed overnight",
			"Rerouting or a full refund if the delay exceeds 5 hours",
		}
		result.Steps = []string{
			"Ask the airline to confirm the cause of the disruption in writing.",
			"Keep receipts for food, hotels, and transport and claim them back under the duty of care.",
		}
		return result
	}

	// Denied boarding and short-notice cancellation pay the distance tier
	// without a delay threshold.
	if in.DelayReason == ReasonOverbooking || in.DelayReason == ReasonCancellation {
		amount := tiers[in.Distance]
		result.Eligible = true
		result.Compensation = &amount
		result.Currency = currency
		if in.DelayReason == ReasonOverbooking {
			result.EligibilityReason = "You were denied boarding against your will, which carries fixed compensation."
		} else {
			result.EligibilityReason = "Your flight was cancelled; with less than 14 days' notice, fixed compensation applies."
			result.Warnings = []string{"If the airline gave 14 or more days' notice, compensation does not apply; check the notification date."}
		}
		result.AdditionalRights = []string{
			"Rerouting at the earliest opportunity or a full refund",
			"Meals, refreshments, and accommodation while you wait",
		}
		result.Steps = ukEUClaimSteps(regulator)
		return result
	}

	if in.DelayHours < 3 {
		result.EligibilityReason = "Compensation requires an arrival delay of 3 hours or more."
		if in.DelayHours >= 2 {
			result.AdditionalRights = []string{
				"Meals and refreshments under the duty of care (delays of 2+ hours on short routes)",
				"Two free communications (calls or emails)",
			}
		}
		result.Steps = []string{"Keep your boarding pass and any delay confirmation in case the final delay was longer than announced."}
		return result
	}

	if in.DelayReason == ReasonUnknown {
		result.EligibilityReason = "The cause of the delay is unknown; compensation depends on whether it was within the airline's control."
		result.Warnings = []string{"Ask the airline to state the cause in writing; the burden of proving extraordinary circumstances is on the airline."}
		result.AdditionalRights = []string{"Meals and refreshments after a 2+ hour wait", "Hotel accommodation if delayed overnight"}
		result.Steps = ukEUClaimSteps(regulator)
		return result
	}

	amount := tiers[in.Distance]
	result.Eligible = true
	result.Compensation = &amount
	result.Currency = currency
	result.EligibilityReason = fmt.Sprintf("A delay of 3 hours or more for a reason within the airline's control carries fixed compensation of %d %s.", amount, currency)
	result.AdditionalRights = []string{
		"Meals and refreshments during the delay",
		"Hotel accommodation and transfers if delayed overnight",
	}
	result.Steps = ukEUClaimSteps(regulator)
	return result
}

func ukEUClaimSteps(regulator string) []string {
	return []string{
		"Submit a written claim to the airline citing the regulation and your flight details.",
		"Give the airline 8 weeks to respond.",
		"Escalate to the airline's ADR scheme or " + regulator + " if the claim is refused or ignored.",
	}
}

func evaluateUS(in FlightInput) FlightResult {
	result := FlightResult{
		Regulation: "US DOT rules (14 CFR Part 250/259)",
	}

	if in.DelayReason == ReasonOverbooking {
		var amount int
		switch {
		case in.DelayHours < 1:
			amount = 0
		case in.DelayHours < 2:
			amount = dotShortDelayCap
		default:
			amount = dotLongDelayCap
		}
		if amount == 0 {
			result.EligibilityReason = "No compensation is due when the airline gets you to your destination within 1 hour of the original arrival."
			result.Steps = []string{"Keep your boarding documents in case the substitute flight arrives later than promised."}
			return result
		}
		result.Eligible = true
		result.Compensation = &amount
		result.Currency = "USD"
		result.EligibilityReason = fmt.Sprintf("Involuntary denied boarding with this arrival delay carries up to $%d (a percentage of your one-way fare, capped).", amount)
		result.Steps = []string{
			"Request denied-boarding compensation in cash at the airport; you do not have to accept vouchers.",
			"File a DOT complaint if the airline refuses to pay.",
		}
		return result
	}

	if in.DelayReason == ReasonCancellation {
		result.EligibilityReason = "US rules do not set cash compensation for cancellations, but you are entitled to a full refund if you choose not to travel."
		result.AdditionalRights = []string{
			"Full refund of the unused ticket (including for non-refundable fares)",
			"Refund of bag fees and seat selection for the cancelled flight",
		}
		result.Steps = []string{
			"Ask for a refund rather than a voucher if you no longer wish to travel.",
			"Check the airline's customer service plan for rebooking and meal commitments.",
			"File a DOT complaint if the refund is refused.",
		}
		return result
	}

	result.EligibilityReason = "US federal rules do not require cash compensation for delays; remedies depend on the airline's own customer service plan."
	result.AdditionalRights = []string{
		"Commitments in the airline's customer service plan (meals, hotels) for controllable delays",
		"Full refund if the delay is significant and you choose not to travel",
	}
	result.Steps = []string{
		"Check the DOT airline customer service dashboard for what your airline has committed to.",
		"Claim meal and hotel costs for controllable delays per the airline's plan.",
	}
	return result
}

func evaluateCanada(in FlightInput) FlightResult {
	deadline := in.FlightDate.AddDate(1, 0, 0)
	result := FlightResult{
		Regulation:    "Canada Air Passenger Protection Regulations (APPR)",
		ClaimDeadline: &deadline,
	}

	if in.DelayReason == ReasonWeather {
		result.EligibilityReason = "Disruptions outside the carrier's control (such as weather) do not carry APPR compensation."
		result.AdditionalRights = []string{"Rebooking on the next available flight, including partner airlines for delays over 9 hours"}
		result.Steps = []string{"Ask the carrier to confirm the disruption category in writing."}
		return result
	}

	var amount int
	switch {
	case in.DelayHours >= 9:
		amount = apprNineHoursPlus
	case in.DelayHours >= 6:
		amount = apprSixToNineHours
	case in.DelayHours >= 3:
		amount = apprThreeToSixHours
	}
	if amount == 0 {
		result.EligibilityReason = "APPR compensation starts at an arrival delay of 3 hours."
		if in.DelayHours >= 2 {
			result.AdditionalRights = []string{"Food and drink in reasonable quantities after a 2-hour delay", "Access to communication"}
		}
		result.Steps = []string{"Keep records in case the arrival delay ends up at 3 hours or more."}
		return result
	}

	result.Eligible = true
	result.Compensation = &amount
	result.Currency = "CAD"
	result.EligibilityReason = fmt.Sprintf("A delay within the carrier's control of this length carries C$%d for large carriers.", amount)
	result.Warnings = []string{"Small carriers pay reduced tiers (C$125–C$500)."}
	result.Steps = []string{
		"File the claim with the airline within 1 year of the flight; it must respond within 30 days.",
		"Escalate to the Canadian Transportation Agency if refused.",
	}
	return result
}

func evaluateAustralia(in FlightInput) FlightResult {
	return FlightResult{
		Regulation:        "No statutory compensation scheme (Australian Consumer Law applies)",
		EligibilityReason: "Australia has no fixed compensation scheme for delays; remedies come from the airline's conditions of carriage and the ACL consumer guarantees.",
		AdditionalRights: []string{
			"Refund or rebooking under the airline's own policy",
			"ACL remedies where the service was not supplied within a reasonable time",
		},
		Steps: []string{
			"Claim under the airline's delay policy first.",
			"Complain to the Airline Customer Advocate if unresolved.",
			"Raise an ACL claim through your state fair trading office for significant losses.",
		},
	}
}

func evaluateGeneric(in FlightInput) FlightResult {
	return FlightResult{
		Regulation:        "Montreal Convention (international carriage)",
		EligibilityReason: "No regional scheme applies; the Montreal Convention may cover provable losses caused by the delay.",
		AdditionalRights: []string{
			"Damages for provable delay losses up to the convention limit",
			"Airline policy benefits for meals and accommodation",
		},
		Steps: []string{
			"Keep receipts for every expense the disruption caused.",
			"Submit a written claim to the airline citing the Montreal Convention.",
			"Seek local legal advice if the airline refuses a documented claim.",
		},
		Warnings: []string{"Montreal Convention claims compensate actual losses only; there is no fixed payout."},
	}
}
