package letter

import (
	"strings"
	"testing"
	"time"

	"github.com/fairclaim/complaint-api/internal/rules"
)

var today = time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC)

func TestGenerate(t *testing.T) {
	facts := Facts{
		CustomerName: "Jordan Smith",
		CompanyName:  "FitLife Gyms Ltd",
		AccountRef:   "FL-29481",
		Subscription: rules.SubscriptionGym,
		Reason:       rules.ReasonMoving,
		EndDate:      today.AddDate(0, 1, 0),
		Today:        today,
	}

	out := Generate(rules.JurisdictionUK, facts)

	for _, want := range []string{
		"20 May 2025",
		"FitLife Gyms Ltd",
		"account reference FL-29481",
		"gym membership",
		"I am relocating and will no longer be able to use the service.",
		"waive any early-termination charge",
		"Consumer Rights Act 2015 and Consumer Contracts Regulations 2013",
		"20 June 2025",
		"Competition and Markets Authority",
		"Jordan Smith",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected letter to contain %q\n\n%s", want, out)
		}
	}

	for _, item := range []string{
		"the date on which my subscription will end",
		"that no further payments will be taken after that date",
	} {
		if !strings.Contains(out, "- "+item) {
			t.Fatalf("expected confirmation bullet %q", item)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	facts := Facts{
		CustomerName: "Sam Doe",
		CompanyName:  "StreamCo",
		Subscription: rules.SubscriptionStreaming,
		Reason:       rules.ReasonPriceIncrease,
		Today:        today,
	}

	first := Generate(rules.JurisdictionUK, facts)
	second := Generate(rules.JurisdictionUK, facts)
	if first != second {
		t.Fatal("expected identical letters for identical inputs")
	}
	if !strings.Contains(first, "exit the agreement without penalty") {
		t.Fatal("expected price-increase paragraph")
	}
}

func TestGenerate_UnknownReasonFallsBack(t *testing.T) {
	out := Generate(rules.JurisdictionUS, Facts{
		CustomerName: "Sam Doe",
		CompanyName:  "AnyCo",
		Reason:       rules.CancelReason("confused"),
		Today:        today,
	})
	if !strings.Contains(out, "I wish to end my subscription.") {
		t.Fatal("expected fallback reason sentence")
	}
	if strings.Contains(out, "account reference") {
		t.Fatal("expected no account reference line when none given")
	}
}
