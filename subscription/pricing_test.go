package subscription

import (
	"math"
	"testing"

	"cinepass-cli/model"
)

func activeSub(discount float64, freeRemaining int) *model.UserSubscription {
	return &model.UserSubscription{
		Id:                   1,
		Plan:                 model.PlanBasic,
		Status:               model.SubscriptionActive,
		DiscountPercent:      discount,
		FreeTicketsRemaining: freeRemaining,
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculatePrice_NoSubscription(t *testing.T) {
	got := CalculatePrice(nil, 10, 3)
	if !approx(got.OriginalTotal, 30) || !approx(got.FinalTotal, 30) {
		t.Fatalf("expected 30/30, got %v/%v", got.OriginalTotal, got.FinalTotal)
	}
	if got.FreeTicketsApplied != 0 || got.DiscountAmount != 0 || got.DiscountPercent != 0 {
		t.Fatalf("expected zero benefits, got %+v", got)
	}
}

func TestCalculatePrice_InactiveSubscriptionGetsNoBenefits(t *testing.T) {
	sub := activeSub(50, 16)
	sub.Status = model.SubscriptionCanceled
	got := CalculatePrice(sub, 8, 2)
	if !approx(got.FinalTotal, 16) || got.FreeTicketsApplied != 0 {
		t.Fatalf("expected full price for canceled subscription, got %+v", got)
	}
}

func TestCalculatePrice_TrialingCountsAsActive(t *testing.T) {
	sub := activeSub(25, 0)
	sub.Status = model.SubscriptionTrialing
	got := CalculatePrice(sub, 10, 2)
	if !approx(got.FinalTotal, 15) {
		t.Fatalf("expected 15 after 25%% discount, got %v", got.FinalTotal)
	}
}

func TestCalculatePrice_FreeTicketsFirstThenDiscount(t *testing.T) {
	// 3 tickets at $10, one free ticket, 25% off the remaining two:
	// pay 2*10*0.75 = 15, total benefit 5 + 10 = 15.
	got := CalculatePrice(activeSub(25, 1), 10, 3)
	if got.FreeTicketsApplied != 1 {
		t.Fatalf("expected 1 free ticket applied, got %d", got.FreeTicketsApplied)
	}
	if !approx(got.OriginalTotal, 30) {
		t.Fatalf("expected original 30, got %v", got.OriginalTotal)
	}
	if !approx(got.FinalTotal, 15) {
		t.Fatalf("expected final 15, got %v", got.FinalTotal)
	}
	if !approx(got.DiscountAmount, 15) {
		t.Fatalf("expected discount amount 15, got %v", got.DiscountAmount)
	}
	if !approx(got.DiscountPercent, 25) {
		t.Fatalf("expected discount percent 25, got %v", got.DiscountPercent)
	}
}

func TestCalculatePrice_AllTicketsFree(t *testing.T) {
	got := CalculatePrice(activeSub(50, 16), 12.5, 4)
	if got.FreeTicketsApplied != 4 {
		t.Fatalf("expected all 4 tickets free, got %d", got.FreeTicketsApplied)
	}
	if !approx(got.FinalTotal, 0) {
		t.Fatalf("expected final 0, got %v", got.FinalTotal)
	}
	if !approx(got.DiscountAmount, 50) {
		t.Fatalf("expected discount amount 50, got %v", got.DiscountAmount)
	}
}

func TestCalculatePrice_ZeroQuantity(t *testing.T) {
	got := CalculatePrice(activeSub(25, 8), 10, 0)
	if !approx(got.OriginalTotal, 0) || !approx(got.FinalTotal, 0) || got.FreeTicketsApplied != 0 {
		t.Fatalf("expected empty breakdown, got %+v", got)
	}
}

func TestPlanBySlug(t *testing.T) {
	basic, ok := PlanBySlug(model.PlanBasic)
	if !ok || basic.DiscountPercent != 25 || basic.FreeTicketsPerMonth != 8 {
		t.Fatalf("unexpected basic plan: %+v ok=%v", basic, ok)
	}
	premium, ok := PlanBySlug(model.PlanPremium)
	if !ok || premium.DiscountPercent != 50 || premium.FreeTicketsPerMonth != 16 {
		t.Fatalf("unexpected premium plan: %+v ok=%v", premium, ok)
	}
	if _, ok := PlanBySlug("gold"); ok {
		t.Fatal("expected unknown slug to miss")
	}
}

func TestPlanName(t *testing.T) {
	if got := PlanName(nil); got != "" {
		t.Fatalf("expected empty name without subscription, got %q", got)
	}
	sub := activeSub(25, 8)
	if got := PlanName(sub); got != "Basic" {
		t.Fatalf("expected Basic, got %q", got)
	}
	sub.Status = model.SubscriptionPastDue
	if got := PlanName(sub); got != "" {
		t.Fatalf("expected empty name for inactive subscription, got %q", got)
	}
}
