package service

import (
	"context"
	"errors"
	"net/url"

	"cinepass-cli/model"
)

// PurchaseTickets buys the given seats for a showtime directly, without the
// external checkout page. The backend guarantees seat-booking atomicity.
func (c *Client) PurchaseTickets(ctx context.Context, showtimeID int, seatIDs []int) (model.TicketPurchaseResponse, error) {
	if showtimeID <= 0 || len(seatIDs) == 0 {
		return model.TicketPurchaseResponse{}, errors.New("showtime id and seats are required")
	}
	req := model.TicketPurchaseRequest{ShowtimeId: showtimeID, Seats: seatIDs}
	var res model.TicketPurchaseResponse
	if err := c.postJSON(ctx, c.endpoint("/tickets"), req, &res); err != nil {
		return model.TicketPurchaseResponse{}, err
	}
	return res, nil
}

// CreateCheckoutSession asks the backend for an external payment page URL.
// Payment completes out-of-band; the caller is expected to open the URL and
// later resolve the order by session id.
func (c *Client) CreateCheckoutSession(ctx context.Context, req model.CheckoutSessionRequest) (model.CheckoutSession, error) {
	if req.ShowtimeId <= 0 || len(req.SeatIds) == 0 {
		return model.CheckoutSession{}, errors.New("showtime id and seats are required")
	}
	var session model.CheckoutSession
	if err := c.postJSON(ctx, c.endpoint("/payments/create-checkout-session"), req, &session); err != nil {
		return model.CheckoutSession{}, err
	}
	if session.Url == "" {
		return model.CheckoutSession{}, errors.New("backend returned no checkout url")
	}
	return session, nil
}

// GetOrderBySession resolves the tickets bought through a checkout session.
// Returns (nil, nil) when the backend has no order for the id yet.
func (c *Client) GetOrderBySession(ctx context.Context, sessionID string) (*model.TicketPurchaseResponse, error) {
	if sessionID == "" {
		return nil, errors.New("session id is required")
	}
	endpoint := c.endpoint("/payments/order-by-session?session_id=" + url.QueryEscape(sessionID))

	var res model.TicketPurchaseResponse
	if err := c.getJSON(ctx, endpoint, &res); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}
