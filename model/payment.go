package model

type CheckoutSessionRequest struct {
	ShowtimeId    int    `json:"showtime_id"`
	SeatIds       []int  `json:"seat_ids"`
	MovieId       int    `json:"movie_id,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
}

// CheckoutSession points at the external payment page. The client redirects
// the browser to Url; payment completes out-of-band.
type CheckoutSession struct {
	Url       string `json:"url"`
	SessionId string `json:"sessionId,omitempty"`
}
