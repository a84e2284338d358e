package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"

	"cinepass-cli/model"
	"cinepass-cli/store"
	"cinepass-cli/subscription"
)

type movieListItem struct {
	movie    model.Movie
	favorite bool
}

func (m movieListItem) Title() string {
	if m.favorite {
		return "★ " + m.movie.Title
	}
	return m.movie.Title
}

func (m movieListItem) Description() string {
	parts := []string{}
	if m.movie.Year > 0 {
		parts = append(parts, fmt.Sprintf("%d", m.movie.Year))
	}
	if m.movie.Rating > 0 {
		parts = append(parts, fmt.Sprintf("%.1f/10", m.movie.Rating))
	}
	if names := genreNames(m.movie.Genres); names != "" {
		parts = append(parts, names)
	}
	return strings.Join(parts, " • ")
}

func (m movieListItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{m.movie.Title, genreNames(m.movie.Genres)}, " "))
}

func genreNames(genres []model.Genre) string {
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		if g.Name != "" {
			names = append(names, g.Name)
		}
	}
	return strings.Join(names, ", ")
}

func buildMovieItems(movies []model.Movie, favorites map[int]bool, favoritesOnly bool) []list.Item {
	items := make([]list.Item, 0, len(movies))
	for _, movie := range movies {
		fav := favorites[movie.Id]
		if favoritesOnly && !fav {
			continue
		}
		items = append(items, movieListItem{movie: movie, favorite: fav})
	}
	return items
}

type cinemaItem struct {
	cinema model.Cinema
	recent bool
}

func (c cinemaItem) Title() string {
	return c.cinema.Name
}

func (c cinemaItem) Description() string {
	parts := []string{}
	if c.recent {
		parts = append(parts, "Recent")
	}
	if c.cinema.City != "" {
		parts = append(parts, c.cinema.City)
	}
	if c.cinema.Address != "" {
		parts = append(parts, c.cinema.Address)
	}
	return strings.Join(parts, " • ")
}

func (c cinemaItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{c.cinema.Name, c.cinema.City, c.cinema.Address}, " "))
}

func buildCinemaItems(cinemas []model.Cinema) []list.Item {
	recents, _ := store.LoadRecentCinemas()
	byID := map[int]model.Cinema{}
	byName := map[string]model.Cinema{}
	for _, cinema := range cinemas {
		byID[cinema.Id] = cinema
		byName[strings.ToLower(cinema.Name)] = cinema
	}

	var items []list.Item
	used := map[int]bool{}
	for _, recent := range recents {
		if recent.Id != 0 {
			if cinema, ok := byID[recent.Id]; ok {
				items = append(items, cinemaItem{cinema: cinema, recent: true})
				used[cinema.Id] = true
				continue
			}
		}
		if recent.Name != "" {
			if cinema, ok := byName[strings.ToLower(recent.Name)]; ok && !used[cinema.Id] {
				items = append(items, cinemaItem{cinema: cinema, recent: true})
				used[cinema.Id] = true
			}
		}
	}

	remaining := make([]model.Cinema, 0, len(cinemas))
	for _, cinema := range cinemas {
		if !used[cinema.Id] {
			remaining = append(remaining, cinema)
		}
	}
	sort.Slice(remaining, func(i, j int) bool {
		return strings.ToLower(remaining[i].Name) < strings.ToLower(remaining[j].Name)
	})
	for _, cinema := range remaining {
		items = append(items, cinemaItem{cinema: cinema})
	}
	return items
}

type dateItem struct {
	date time.Time
}

func (d dateItem) Title() string {
	if isSameDay(d.date, time.Now()) {
		return fmt.Sprintf("%s • %s (Today)", d.date.Format("Mon"), d.date.Format("02/01"))
	}
	return fmt.Sprintf("%s • %s", d.date.Format("Mon"), d.date.Format("02/01"))
}

func (d dateItem) Description() string {
	return d.date.Format(time.DateOnly)
}

func (d dateItem) FilterValue() string {
	return d.Title()
}

func buildDateItems(base time.Time) []list.Item {
	start := truncateDate(base)
	items := make([]list.Item, 0, 7)
	for i := 0; i < 7; i++ {
		items = append(items, dateItem{date: start.AddDate(0, 0, i)})
	}
	return items
}

func isSameDay(a time.Time, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

type showtimeItem struct {
	showtime model.ShowtimeItem
	roomName string
}

func (s showtimeItem) Title() string {
	room := strings.TrimSpace(s.roomName)
	if room == "" {
		room = "Room"
	}
	return fmt.Sprintf("%s • %s", s.showtime.StartTime, room)
}

func (s showtimeItem) Description() string {
	return fmt.Sprintf("ends %s • %s • %d seats taken",
		s.showtime.EndTime, formatPrice(s.showtime.TicketPrice), s.showtime.BookedSeats)
}

func (s showtimeItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{s.showtime.StartTime, s.roomName}, " "))
}

func buildShowtimeItems(results []model.ShowtimeSearchResult) []list.Item {
	var items []showtimeItem
	for _, result := range results {
		for _, showtime := range result.Showtimes {
			items = append(items, showtimeItem{showtime: showtime, roomName: result.RoomName})
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].showtime.StartTime != items[j].showtime.StartTime {
			return items[i].showtime.StartTime < items[j].showtime.StartTime
		}
		return strings.ToLower(items[i].roomName) < strings.ToLower(items[j].roomName)
	})

	out := make([]list.Item, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}

type planItem struct {
	plan    subscription.Plan
	current bool
}

func (p planItem) Title() string {
	if p.current {
		return fmt.Sprintf("%s • %s/month (current)", p.plan.Name, formatPrice(p.plan.Price))
	}
	return fmt.Sprintf("%s • %s/month", p.plan.Name, formatPrice(p.plan.Price))
}

func (p planItem) Description() string {
	return fmt.Sprintf("%.0f%% off • %d free tickets/month", p.plan.DiscountPercent, p.plan.FreeTicketsPerMonth)
}

func (p planItem) FilterValue() string {
	return strings.ToLower(p.plan.Name)
}

func buildPlanItems(sub *model.UserSubscription) []list.Item {
	items := make([]list.Item, 0, len(subscription.Plans))
	for _, plan := range subscription.Plans {
		current := sub.Active() && sub.Plan == plan.Slug
		items = append(items, planItem{plan: plan, current: current})
	}
	return items
}

func formatPrice(price float64) string {
	if price <= 0 {
		return "free"
	}
	return fmt.Sprintf("$%.2f", price)
}
