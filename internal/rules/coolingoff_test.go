package rules

import (
	"testing"
	"time"
)

func TestCheckCoolingOff(t *testing.T) {
	now := time.Date(2025, time.May, 20, 12, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		input         CoolingOffInput
		hasCoolingOff bool
		periodDays    int
		daysRemaining int
	}{
		"uk online purchase ten days in has four days left": {
			input: CoolingOffInput{
				Country:     JurisdictionUK,
				Location:    PurchaseOnline,
				ProductType: ProductPhysicalGoods,
				ReceiveDate: now.AddDate(0, 0, -10),
				Now:         now,
			},
			hasCoolingOff: true,
			periodDays:    14,
			daysRemaining: 4,
		},
		"uk online delivery today has the full window": {
			input: CoolingOffInput{
				Country:     JurisdictionUK,
				Location:    PurchaseOnline,
				ProductType: ProductPhysicalGoods,
				ReceiveDate: now,
				Now:         now,
			},
			hasCoolingOff: true,
			periodDays:    14,
			daysRemaining: 14,
		},
		"uk window closed never goes negative": {
			input: CoolingOffInput{
				Country:     JurisdictionUK,
				Location:    PurchaseOnline,
				ProductType: ProductPhysicalGoods,
				ReceiveDate: now.AddDate(0, 0, -30),
				Now:         now,
			},
			periodDays: 14,
		},
		"uk in-store has no statutory right": {
			input: CoolingOffInput{
				Country:     JurisdictionUK,
				Location:    PurchaseInStore,
				ProductType: ProductPhysicalGoods,
				ReceiveDate: now,
				Now:         now,
			},
		},
		"eu online mirrors the uk window": {
			input: CoolingOffInput{
				Country:     JurisdictionEU,
				Location:    PurchaseOnline,
				ProductType: ProductPhysicalGoods,
				ReceiveDate: now.AddDate(0, 0, -5),
				Now:         now,
			},
			hasCoolingOff: true,
			periodDays:    14,
			daysRemaining: 9,
		},
		"us online has no federal right": {
			input: CoolingOffInput{
				Country:     JurisdictionUS,
				Location:    PurchaseOnline,
				ProductType: ProductPhysicalGoods,
				ReceiveDate: now,
				Now:         now,
			},
		},
		"us doorstep sale has three days": {
			input: CoolingOffInput{
				Country:     JurisdictionUS,
				Location:    PurchaseDoorstep,
				ProductType: ProductPhysicalGoods,
				ReceiveDate: now.AddDate(0, 0, -1),
				Now:         now,
			},
			hasCoolingOff: true,
			periodDays:    3,
			daysRemaining: 2,
		},
		"au doorstep sale has ten days": {
			input: CoolingOffInput{
				Country:     JurisdictionAU,
				Location:    PurchaseDoorstep,
				ProductType: ProductPhysicalGoods,
				ReceiveDate: now,
				Now:         now,
			},
			hasCoolingOff: true,
			periodDays:    10,
			daysRemaining: 10,
		},
		"ca doorstep sale has ten days": {
			input: CoolingOffInput{
				Country:     JurisdictionCA,
				Location:    PurchaseDoorstep,
				ProductType: ProductPhysicalGoods,
				ReceiveDate: now.AddDate(0, 0, -9),
				Now:         now,
			},
			hasCoolingOff: true,
			periodDays:    10,
			daysRemaining: 1,
		},
		"unknown jurisdiction falls back to other": {
			input: CoolingOffInput{
				Country:     JurisdictionOther,
				Location:    PurchaseOnline,
				ProductType: ProductPhysicalGoods,
				ReceiveDate: now,
				Now:         now,
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			result := CheckCoolingOff(tt.input)
			if result.HasCoolingOff != tt.hasCoolingOff {
				t.Fatalf("expected hasCoolingOff=%v, got %v (%s)", tt.hasCoolingOff, result.HasCoolingOff, result.Explanation)
			}
			if result.PeriodDays != tt.periodDays {
				t.Fatalf("expected period %d, got %d", tt.periodDays, result.PeriodDays)
			}
			if result.DaysRemaining != tt.daysRemaining {
				t.Fatalf("expected %d days remaining, got %d", tt.daysRemaining, result.DaysRemaining)
			}
			if result.DaysRemaining < 0 {
				t.Fatal("days remaining must never be negative")
			}
			if result.Regulation == "" {
				t.Fatal("expected a regulation reference")
			}
		})
	}
}

func TestCheckCoolingOff_DigitalContentWarning(t *testing.T) {
	now := time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC)
	result := CheckCoolingOff(CoolingOffInput{
		Country:     JurisdictionUK,
		Location:    PurchaseOnline,
		ProductType: ProductDigitalContent,
		ReceiveDate: now.AddDate(0, 0, -2),
		Now:         now,
	})
	if !result.HasCoolingOff {
		t.Fatal("expected open window")
	}
	found := false
	for _, w := range result.Warnings {
		if w == "If you already started downloading or streaming with consent, the cancellation right is lost." {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected digital-content waiver warning, got %v", result.Warnings)
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	if got := daysBetween(a, a.AddDate(0, 0, 10)); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
	if got := daysBetween(a.AddDate(0, 0, 5), a); got != 0 {
		t.Fatalf("expected 0 for reversed dates, got %d", got)
	}
}
