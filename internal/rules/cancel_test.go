package rules

import (
	"testing"
	"time"
)

func TestCheckCancellation(t *testing.T) {
	now := time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		input        CancelInput
		noticeDays   int
		inCoolingOff bool
	}{
		"uk gym outside cooling-off needs thirty days": {
			input: CancelInput{
				Country:      JurisdictionUK,
				Subscription: SubscriptionGym,
				Reason:       ReasonNoLongerNeeded,
				SignupDate:   now.AddDate(0, -6, 0),
				Now:          now,
			},
			noticeDays: 30,
		},
		"uk signup five days ago is in cooling-off": {
			input: CancelInput{
				Country:      JurisdictionUK,
				Subscription: SubscriptionGym,
				Reason:       ReasonNoLongerNeeded,
				SignupDate:   now.AddDate(0, 0, -5),
				Now:          now,
			},
			noticeDays:   30,
			inCoolingOff: true,
		},
		"uk streaming ends with the paid period": {
			input: CancelInput{
				Country:      JurisdictionUK,
				Subscription: SubscriptionStreaming,
				Reason:       ReasonNoLongerNeeded,
				SignupDate:   now.AddDate(-1, 0, 0),
				Now:          now,
			},
			noticeDays: 0,
		},
		"us has no cooling-off shortcut": {
			input: CancelInput{
				Country:      JurisdictionUS,
				Subscription: SubscriptionSoftware,
				Reason:       ReasonNoLongerNeeded,
				SignupDate:   now.AddDate(0, 0, -5),
				Now:          now,
			},
			noticeDays: 30,
		},
		"unknown type falls back to the general rule": {
			input: CancelInput{
				Country:      JurisdictionEU,
				Subscription: SubscriptionTelecom,
				Reason:       ReasonNoLongerNeeded,
				SignupDate:   now.AddDate(-1, 0, 0),
				Now:          now,
			},
			noticeDays: 30,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			result := CheckCancellation(tt.input)
			if result.NoticeDays != tt.noticeDays {
				t.Fatalf("expected %d notice days, got %d", tt.noticeDays, result.NoticeDays)
			}
			if result.InCoolingOff != tt.inCoolingOff {
				t.Fatalf("expected inCoolingOff=%v, got %v (%s)", tt.inCoolingOff, result.InCoolingOff, result.Explanation)
			}
			if tt.inCoolingOff {
				if result.CoolingOffEnd == nil {
					t.Fatal("expected cooling-off end date")
				}
				if !result.EarliestEnd.Equal(now) {
					t.Fatalf("expected immediate exit inside cooling-off, got %s", result.EarliestEnd)
				}
			} else {
				want := now.AddDate(0, 0, tt.noticeDays)
				if !result.EarliestEnd.Equal(want) {
					t.Fatalf("expected earliest end %s, got %s", want, result.EarliestEnd)
				}
			}
			if len(result.NextSteps) == 0 {
				t.Fatal("expected next steps")
			}
		})
	}
}

func TestCheckCancellation_ReasonRights(t *testing.T) {
	now := time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC)
	base := CancelInput{
		Country:      JurisdictionUK,
		Subscription: SubscriptionGym,
		SignupDate:   now.AddDate(-1, 0, 0),
		Now:          now,
	}

	base.Reason = ReasonNoLongerNeeded
	baseline := len(CheckCancellation(base).Rights)

	base.Reason = ReasonPriceIncrease
	if got := len(CheckCancellation(base).Rights); got != baseline+1 {
		t.Fatalf("expected price-increase right appended, got %d rights", got)
	}

	base.Reason = ReasonMoving
	if got := len(CheckCancellation(base).Rights); got != baseline+1 {
		t.Fatalf("expected relocation right appended for gym contracts, got %d rights", got)
	}

	base.Subscription = SubscriptionStreaming
	streamingBaseline := len(CheckCancellation(CancelInput{
		Country: JurisdictionUK, Subscription: SubscriptionStreaming,
		Reason: ReasonNoLongerNeeded, SignupDate: base.SignupDate, Now: now,
	}).Rights)
	if got := len(CheckCancellation(base).Rights); got != streamingBaseline {
		t.Fatalf("relocation right should be gym-specific, got %d rights", got)
	}
}
