package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"cinepass-cli/model"
	"cinepass-cli/seatmap"
	"cinepass-cli/service"
)

type testItem struct {
	value string
}

func (t testItem) Title() string       { return t.value }
func (t testItem) Description() string { return "" }
func (t testItem) FilterValue() string { return strings.ToLower(t.value) }

func newFilterModel(items []list.Item) *appModel {
	m := New(service.NewClient(nil, "http://localhost")).(appModel)
	m.state = stateSelectMovie
	m.movieList = newList("Movies")
	m.movieList.SetItems(items)
	return &m
}

func TestHandleFilterInput_AppendsRunes(t *testing.T) {
	m := newFilterModel([]list.Item{
		testItem{value: "Dune"},
		testItem{value: "Oppenheimer"},
	})

	if !m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")}) {
		t.Fatal("expected filter input to be handled")
	}
	if got := m.movieList.FilterValue(); got != "d" {
		t.Fatalf("expected filter value to be %q, got %q", "d", got)
	}

	if !m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("u")}) {
		t.Fatal("expected filter input to be handled")
	}
	if got := m.movieList.FilterValue(); got != "du" {
		t.Fatalf("expected filter value to be %q, got %q", "du", got)
	}
}

func TestHandleFilterInput_Backspace(t *testing.T) {
	m := newFilterModel([]list.Item{
		testItem{value: "Dune"},
		testItem{value: "Oppenheimer"},
	})

	_ = m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	_ = m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("u")})

	if got := m.movieList.FilterValue(); got != "du" {
		t.Fatalf("expected filter value to be %q, got %q", "du", got)
	}

	if !m.handleFilterInput(tea.KeyMsg{Type: tea.KeyBackspace}) {
		t.Fatal("expected backspace to be handled")
	}
	if got := m.movieList.FilterValue(); got != "d" {
		t.Fatalf("expected filter value to be %q, got %q", "d", got)
	}
}

func TestHandleFilterInput_Space(t *testing.T) {
	m := newFilterModel([]list.Item{
		testItem{value: "The Batman"},
	})

	_ = m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	_ = m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
	_ = m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})

	if !m.handleFilterInput(tea.KeyMsg{Type: tea.KeySpace}) {
		t.Fatal("expected space to be handled")
	}

	if got := m.movieList.FilterValue(); got != "the " {
		t.Fatalf("expected filter value to be %q, got %q", "the ", got)
	}
}

func TestHandleFilterInput_IgnoresNonFilterableState(t *testing.T) {
	m := newFilterModel(nil)
	m.state = stateSelectSeats

	if m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}) {
		t.Fatal("expected key to pass through outside list states")
	}
}

// cursorLayout builds two single-row block rows of two blocks each:
//
//	1 2 _ 3 4
//	(aisle)
//	5 6 _ 7 8
func cursorLayout() *seatmap.Layout {
	blockSeats := func(firstID, seatRow, colFrom int, rowLabel string) []model.RoomSeat {
		seats := make([]model.RoomSeat, 0, 2)
		for i := 0; i < 2; i++ {
			seats = append(seats, model.RoomSeat{
				Id:              firstID + i,
				SeatRow:         seatRow,
				SeatColumn:      colFrom + i,
				SeatRowLabel:    rowLabel,
				SeatColumnLabel: colFrom + i + 1,
			})
		}
		return seats
	}
	room := model.RoomWithSeats{
		Room: model.Room{Id: 1, Name: "Sala 1"},
		Blocks: []model.RoomBlock{
			{Id: 1, BlockRow: 0, BlockColumn: 0, Seats: blockSeats(1, 0, 0, "A")},
			{Id: 2, BlockRow: 0, BlockColumn: 1, Seats: blockSeats(3, 0, 2, "A")},
			{Id: 3, BlockRow: 1, BlockColumn: 0, Seats: blockSeats(5, 1, 0, "B")},
			{Id: 4, BlockRow: 1, BlockColumn: 1, Seats: blockSeats(7, 1, 2, "B")},
		},
	}
	return seatmap.Build(room)
}

func TestSeatCursor_StartsAtFirstSeat(t *testing.T) {
	layout := cursorLayout()
	cursor := firstSeatCursor(layout)
	id, ok := cursor.seatID(layout)
	if !ok {
		t.Fatal("expected cursor to start on a seat")
	}
	if id != 1 {
		t.Fatalf("expected first seat id 1, got %d", id)
	}
}

func TestSeatCursor_HorizontalSkipsGap(t *testing.T) {
	layout := cursorLayout()
	cursor := firstSeatCursor(layout)

	cursor = cursor.moveHorizontal(layout, 1) // seat 2
	cursor = cursor.moveHorizontal(layout, 1) // over the gap to seat 3
	id, ok := cursor.seatID(layout)
	if !ok || id != 3 {
		t.Fatalf("expected cursor on seat 3 after crossing the gap, got %d (ok=%v)", id, ok)
	}

	cursor = cursor.moveHorizontal(layout, -1)
	id, _ = cursor.seatID(layout)
	if id != 2 {
		t.Fatalf("expected cursor back on seat 2, got %d", id)
	}
}

func TestSeatCursor_HorizontalStopsAtRowEdge(t *testing.T) {
	layout := cursorLayout()
	cursor := firstSeatCursor(layout)

	moved := cursor.moveHorizontal(layout, -1)
	if moved != cursor {
		t.Fatalf("expected cursor to stay at the left edge, got %+v", moved)
	}
}

func TestSeatCursor_VerticalSkipsAisle(t *testing.T) {
	layout := cursorLayout()
	cursor := firstSeatCursor(layout)

	cursor = cursor.moveVertical(layout, 1)
	id, ok := cursor.seatID(layout)
	if !ok || id != 5 {
		t.Fatalf("expected cursor on seat 5 below the aisle, got %d (ok=%v)", id, ok)
	}

	cursor = cursor.moveVertical(layout, 1)
	id, _ = cursor.seatID(layout)
	if id != 5 {
		t.Fatalf("expected cursor to stay on the bottom row, got %d", id)
	}

	cursor = cursor.moveVertical(layout, -1)
	id, _ = cursor.seatID(layout)
	if id != 1 {
		t.Fatalf("expected cursor back on seat 1, got %d", id)
	}
}

func TestBuildShowtimeItems_SortsByTimeThenRoom(t *testing.T) {
	results := []model.ShowtimeSearchResult{
		{
			RoomName: "Sala B",
			Showtimes: []model.ShowtimeItem{
				{Id: 1, StartTime: "21:00"},
				{Id: 2, StartTime: "18:30"},
			},
		},
		{
			RoomName: "Sala A",
			Showtimes: []model.ShowtimeItem{
				{Id: 3, StartTime: "21:00"},
			},
		},
	}

	items := buildShowtimeItems(results)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}

	got := make([]int, 0, len(items))
	for _, item := range items {
		got = append(got, item.(showtimeItem).showtime.Id)
	}
	want := []int{2, 3, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestBuildDateItems_SevenDaysFromBase(t *testing.T) {
	base := time.Date(2026, time.March, 10, 15, 45, 0, 0, time.UTC)
	items := buildDateItems(base)
	if len(items) != 7 {
		t.Fatalf("expected 7 date items, got %d", len(items))
	}

	first := items[0].(dateItem)
	if got := first.date.Format(time.DateOnly); got != "2026-03-10" {
		t.Fatalf("expected first date to be base day, got %s", got)
	}
	if first.date.Hour() != 0 || first.date.Minute() != 0 {
		t.Fatalf("expected date truncated to midnight, got %s", first.date)
	}

	last := items[6].(dateItem)
	if got := last.date.Format(time.DateOnly); got != "2026-03-16" {
		t.Fatalf("expected last date six days out, got %s", got)
	}
}

func TestBuildMovieItems_FavoritesOnly(t *testing.T) {
	movies := []model.Movie{
		{Id: 1, Title: "Dune"},
		{Id: 2, Title: "Oppenheimer"},
		{Id: 3, Title: "The Batman"},
	}
	favorites := map[int]bool{2: true}

	all := buildMovieItems(movies, favorites, false)
	if len(all) != 3 {
		t.Fatalf("expected all movies listed, got %d", len(all))
	}

	only := buildMovieItems(movies, favorites, true)
	if len(only) != 1 {
		t.Fatalf("expected one favorite, got %d", len(only))
	}
	item := only[0].(movieListItem)
	if item.movie.Id != 2 || !item.favorite {
		t.Fatalf("expected favorite movie 2, got %+v", item)
	}
	if !strings.HasPrefix(item.Title(), "★") {
		t.Fatalf("expected starred title, got %q", item.Title())
	}
}

func TestFormatPrice(t *testing.T) {
	if got := formatPrice(8); got != "$8.00" {
		t.Fatalf("expected $8.00, got %q", got)
	}
	if got := formatPrice(0); got != "free" {
		t.Fatalf("expected free, got %q", got)
	}
}
