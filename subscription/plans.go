package subscription

import "cinepass-cli/model"

// Plan describes one subscription tier. The catalog is fixed on the client;
// the backend owns billing and enforcement.
type Plan struct {
	Slug                model.PlanSlug
	Name                string
	Price               float64 // monthly, USD
	DiscountPercent     float64
	FreeTicketsPerMonth int
	Features            []string
}

// Plans lists the available tiers in display order.
var Plans = []Plan{
	{
		Slug:                model.PlanBasic,
		Name:                "Basic",
		Price:               9.99,
		DiscountPercent:     25,
		FreeTicketsPerMonth: 8,
		Features: []string{
			"25% off tickets",
			"8 free tickets per month",
			"Early access to premieres",
			"Email support",
		},
	},
	{
		Slug:                model.PlanPremium,
		Name:                "Premium",
		Price:               19.99,
		DiscountPercent:     50,
		FreeTicketsPerMonth: 16,
		Features: []string{
			"50% off tickets",
			"16 free tickets per month",
			"Early access to premieres",
			"VIP seats when available",
			"Priority 24/7 support",
			"Cancel anytime",
		},
	},
}

// PlanBySlug resolves a plan by its slug.
func PlanBySlug(slug model.PlanSlug) (Plan, bool) {
	for _, p := range Plans {
		if p.Slug == slug {
			return p, true
		}
	}
	return Plan{}, false
}

// PlanName returns the display name for a subscription's plan, or "" when the
// subscription is absent or inactive.
func PlanName(sub *model.UserSubscription) string {
	if !sub.Active() {
		return ""
	}
	if p, ok := PlanBySlug(sub.Plan); ok {
		return p.Name
	}
	return string(sub.Plan)
}
