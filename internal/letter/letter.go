// Package letter renders the deterministic cancellation letter offered by
// the free tools. It is plain string assembly; the paid product's
// AI-drafted letters are generated by an external service.
package letter

import (
	"fmt"
	"strings"
	"time"

	"github.com/fairclaim/complaint-api/internal/rules"
)

// Facts holds everything interpolated into the letter skeleton.
type Facts struct {
	CustomerName string
	CompanyName  string
	AccountRef   string
	Subscription rules.SubscriptionType
	Reason       rules.CancelReason
	EndDate      time.Time
	Today        time.Time
}

// reasonSentences maps each cancellation reason to the sentence used in
// the opening paragraph. The order of checks elsewhere depends on these
// exact keys.
var reasonSentences = map[rules.CancelReason]string{
	rules.ReasonMoving:         "I am relocating and will no longer be able to use the service.",
	rules.ReasonPriceIncrease:  "I do not accept the recent price increase to my subscription.",
	rules.ReasonPoorService:    "The standard of service has fallen below what was agreed when I signed up.",
	rules.ReasonNoLongerNeeded: "I no longer require the service.",
	rules.ReasonFinancial:      "A change in my financial circumstances means I can no longer continue the subscription.",
	rules.ReasonOtherCancel:    "I wish to end my subscription.",
}

var confirmations = []string{
	"the date on which my subscription will end",
	"that no further payments will be taken after that date",
	"the amount of any final or pro-rata refund due to me",
	"that my cancellation has been recorded in writing",
}

// Generate renders the cancellation letter for the given jurisdiction and
// facts. Same inputs always produce the same letter.
func Generate(j rules.Jurisdiction, f Facts) string {
	if f.Today.IsZero() {
		f.Today = time.Now()
	}
	reason, ok := reasonSentences[f.Reason]
	if !ok {
		reason = reasonSentences[rules.ReasonOtherCancel]
	}

	rights := rules.Rights(j, rules.CategorySubscriptions)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", f.Today.Format("2 January 2006"))
	fmt.Fprintf(&b, "Customer Services\n%s\n\n", f.CompanyName)
	fmt.Fprintf(&b, "Re: Cancellation of subscription")
	if f.AccountRef != "" {
		fmt.Fprintf(&b, " (account reference %s)", f.AccountRef)
	}
	b.WriteString("\n\nDear Sir or Madam,\n\n")

	fmt.Fprintf(&b, "I am writing to cancel my %s subscription with immediate effect from the end of my current notice period. %s\n\n", subscriptionLabel(f.Subscription), reason)

	if f.Reason == rules.ReasonMoving {
		b.WriteString("As I am moving outside the area served by your business, I ask that you treat this cancellation as effective at the earliest date your terms allow, and that you waive any early-termination charge in line with your obligations on fair contract terms.\n\n")
	}
	if f.Reason == rules.ReasonPriceIncrease {
		b.WriteString("As this change was made during my contract term, I am exercising my right to exit the agreement without penalty rather than accept the revised price.\n\n")
	}

	fmt.Fprintf(&b, "Please note that I am aware of my rights under the %s.\n\n", rights.Citation)

	if !f.EndDate.IsZero() {
		fmt.Fprintf(&b, "I understand my subscription should end no later than %s.\n\n", f.EndDate.Format("2 January 2006"))
	}

	b.WriteString("Please confirm the following in writing:\n\n")
	for _, item := range confirmations {
		fmt.Fprintf(&b, "- %s\n", item)
	}

	b.WriteString("\nIf I do not receive confirmation within 14 days, I will cancel the payment authority with my bank and, if necessary, escalate the matter to ")
	b.WriteString(rights.Regulator)
	b.WriteString(".\n\nYours faithfully,\n\n")
	b.WriteString(f.CustomerName)
	b.WriteString("\n")

	return b.String()
}

func subscriptionLabel(s rules.SubscriptionType) string {
	switch s {
	case rules.SubscriptionGym:
		return "gym membership"
	case rules.SubscriptionStreaming:
		return "streaming"
	case rules.SubscriptionTelecom:
		return "telecoms"
	case rules.SubscriptionSoftware:
		return "software"
	default:
		return "recurring"
	}
}
