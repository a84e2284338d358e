package store

import "time"

const (
	stashFile = "checkout_stash.json"
	stashTTL  = time.Hour
)

// CheckoutStash keeps the purchase context across the external payment
// redirect: the user leaves for the payment page and, on return, the success
// view needs to know which movie and date the session was for.
type CheckoutStash struct {
	MovieId      int       `json:"movie_id"`
	SelectedDate string    `json:"selected_date"`
	SavedAt      time.Time `json:"saved_at"`
}

// SaveCheckoutStash stores the purchase context before redirecting out.
func SaveCheckoutStash(movieID int, selectedDate string) error {
	return writeFile(stashFile, CheckoutStash{
		MovieId:      movieID,
		SelectedDate: selectedDate,
		SavedAt:      time.Now(),
	})
}

// TakeCheckoutStash returns the stashed context and clears it, so a stash is
// consumed at most once. Stashes older than an hour are treated as absent;
// an abandoned checkout should not resurface days later.
func TakeCheckoutStash() (*CheckoutStash, error) {
	var stash CheckoutStash
	ok, err := readFile(stashFile, &stash)
	if err != nil || !ok {
		return nil, err
	}
	if err := removeFile(stashFile); err != nil {
		return nil, err
	}
	if stash.MovieId == 0 || time.Since(stash.SavedAt) > stashTTL {
		return nil, nil
	}
	return &stash, nil
}
