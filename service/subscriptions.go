package service

import (
	"context"
	"errors"

	"cinepass-cli/model"
)

// GetMySubscription returns the authenticated user's subscription, or
// (nil, nil) when they have none.
func (c *Client) GetMySubscription(ctx context.Context) (*model.UserSubscription, error) {
	var sub model.UserSubscription
	if err := c.getJSON(ctx, c.endpoint("/subscriptions/my-subscription"), &sub); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if sub.Id == 0 {
		return nil, nil
	}
	return &sub, nil
}

// CreateSubscriptionCheckout starts an external checkout for a plan.
func (c *Client) CreateSubscriptionCheckout(ctx context.Context, plan model.PlanSlug) (model.CheckoutSession, error) {
	if plan == "" {
		return model.CheckoutSession{}, errors.New("plan is required")
	}
	body := struct {
		Plan model.PlanSlug `json:"plan"`
	}{Plan: plan}
	var session model.CheckoutSession
	if err := c.postJSON(ctx, c.endpoint("/subscriptions/create-checkout"), body, &session); err != nil {
		return model.CheckoutSession{}, err
	}
	if session.Url == "" {
		return model.CheckoutSession{}, errors.New("backend returned no checkout url")
	}
	return session, nil
}

// CancelSubscription cancels at the end of the current billing period.
func (c *Client) CancelSubscription(ctx context.Context) (model.CancelSubscriptionResponse, error) {
	var res model.CancelSubscriptionResponse
	if err := c.postJSON(ctx, c.endpoint("/subscriptions/cancel"), nil, &res); err != nil {
		return model.CancelSubscriptionResponse{}, err
	}
	return res, nil
}

// ReactivateSubscription undoes a pending cancellation.
func (c *Client) ReactivateSubscription(ctx context.Context) (model.ReactivateSubscriptionResponse, error) {
	var res model.ReactivateSubscriptionResponse
	if err := c.postJSON(ctx, c.endpoint("/subscriptions/reactivate"), nil, &res); err != nil {
		return model.ReactivateSubscriptionResponse{}, err
	}
	return res, nil
}
