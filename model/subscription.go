package model

type PlanSlug string

const (
	PlanBasic   PlanSlug = "basic"
	PlanPremium PlanSlug = "premium"
)

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionTrialing SubscriptionStatus = "trialing"
)

type UserSubscription struct {
	Id                   int                `json:"id"`
	Plan                 PlanSlug           `json:"plan"`
	Status               SubscriptionStatus `json:"status"`
	CurrentPeriodStart   string             `json:"current_period_start"`
	CurrentPeriodEnd     string             `json:"current_period_end"`
	CancelAtPeriodEnd    bool               `json:"cancel_at_period_end"`
	FreeTicketsRemaining int                `json:"free_tickets_remaining"`
	FreeTicketsUsed      int                `json:"free_tickets_used"`
	DiscountPercent      float64            `json:"discount_percent"`
}

// Active reports whether the subscription entitles the user to discounts
// right now. A canceled subscription stays active until the period ends.
func (s *UserSubscription) Active() bool {
	if s == nil {
		return false
	}
	return s.Status == SubscriptionActive || s.Status == SubscriptionTrialing
}

type CancelSubscriptionResponse struct {
	Message           string `json:"message"`
	CancelAtPeriodEnd bool   `json:"cancel_at_period_end"`
	CurrentPeriodEnd  string `json:"current_period_end"`
}

type ReactivateSubscriptionResponse struct {
	Message string             `json:"message"`
	Status  SubscriptionStatus `json:"status"`
}
