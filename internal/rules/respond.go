package rules

import (
	"fmt"
	"time"
)

// ResponseDeadlineInput carries the facts for a response-deadline check.
type ResponseDeadlineInput struct {
	Country       Jurisdiction
	Industry      Category
	ComplaintSent time.Time
	Now           time.Time
}

// ResponseDeadlineResult reports how long the company has to respond and
// what to do once the clock runs out.
type ResponseDeadlineResult struct {
	ResponseDays  int       `json:"response_days"`
	Deadline      time.Time `json:"deadline"`
	DaysRemaining int       `json:"days_remaining"`
	Overdue       bool      `json:"overdue"`
	Citation      string    `json:"citation"`
	Regulator     string    `json:"regulator"`
	Explanation   string    `json:"explanation"`
	Escalation    []string  `json:"escalation"`
	NextSteps     []string  `json:"next_steps"`
	Warnings      []string  `json:"warnings"`
}

// ResponseDeadline computes when a complaint becomes escalatable. The day
// counts come straight from the jurisdiction table.
func ResponseDeadline(in ResponseDeadlineInput) ResponseDeadlineResult {
	if in.Now.IsZero() {
		in.Now = time.Now()
	}

	rights := Rights(in.Country, in.Industry)
	deadline := in.ComplaintSent.AddDate(0, 0, rights.ResponseDays)
	remaining := rights.ResponseDays - daysBetween(in.ComplaintSent, in.Now)
	overdue := remaining < 0
	if remaining < 0 {
		remaining = 0
	}

	result := ResponseDeadlineResult{
		ResponseDays:  rights.ResponseDays,
		Deadline:      deadline,
		DaysRemaining: remaining,
		Overdue:       overdue,
		Citation:      rights.Citation,
		Regulator:     rights.Regulator,
		Escalation:    rights.Escalation,
	}

	if overdue {
		result.Explanation = fmt.Sprintf("The %d-day response period under the %s has passed. You can escalate now.", rights.ResponseDays, rights.Citation)
		result.NextSteps = []string{
			"Send a final chaser stating that you will escalate within 7 days without a substantive reply.",
			fmt.Sprintf("Escalate to: %s.", rights.Escalation[0]),
			"Include your original complaint, proof of sending, and any acknowledgement.",
		}
	} else {
		result.Explanation = fmt.Sprintf("The company has %d day(s) left of the %d-day response period under the %s.", remaining, rights.ResponseDays, rights.Citation)
		result.NextSteps = []string{
			"Diarise the deadline and keep proof that the complaint was sent.",
			"Do not accept a bare acknowledgement as a response; the period runs until a substantive reply.",
		}
	}

	if in.Country == JurisdictionUK && in.Industry == CategoryFinancial {
		result.Warnings = append(result.Warnings,
			"You can go to the Financial Ombudsman after 8 weeks or as soon as you receive a final response letter, whichever is earlier.")
	}

	return result
}
