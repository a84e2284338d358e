package store

import "strings"

const (
	recentFile       = "recent_cinemas.json"
	maxRecentCinemas = 8
)

// RecentCinema is one entry of the recently-picked cinema history, shown
// first when a new purchase flow starts.
type RecentCinema struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

type cinemaHistory struct {
	Cinemas []RecentCinema `json:"cinemas"`
}

func LoadRecentCinemas() ([]RecentCinema, error) {
	var history cinemaHistory
	if _, err := readFile(recentFile, &history); err != nil {
		return nil, err
	}
	return history.Cinemas, nil
}

// RememberCinema moves the cinema to the front of the history, dropping
// duplicates and trimming to the cap.
func RememberCinema(cinema RecentCinema) error {
	history, _ := LoadRecentCinemas()
	next := []RecentCinema{cinema}

	for _, existing := range history {
		if existing.Id == cinema.Id && existing.Id != 0 {
			continue
		}
		if existing.Name != "" && strings.EqualFold(existing.Name, cinema.Name) &&
			strings.EqualFold(existing.City, cinema.City) {
			continue
		}
		next = append(next, existing)
		if len(next) >= maxRecentCinemas {
			break
		}
	}

	return writeFile(recentFile, cinemaHistory{Cinemas: next})
}
