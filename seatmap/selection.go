package seatmap

import "sort"

// Selection is the set of seats the user has picked for one showtime. It is
// bounded by the showtime's booked-seat list: a booked seat can never enter
// the set, so the selection is always a subset of the free seats.
type Selection struct {
	booked map[int]bool
	chosen map[int]bool
}

// NewSelection creates an empty selection bounded by the given booked ids.
func NewSelection(booked []int) *Selection {
	s := &Selection{
		booked: make(map[int]bool, len(booked)),
		chosen: make(map[int]bool),
	}
	for _, id := range booked {
		s.booked[id] = true
	}
	return s
}

// Toggle adds the seat if absent and removes it if present. Toggling a
// booked seat is a silent no-op.
func (s *Selection) Toggle(id int) {
	if s.booked[id] {
		return
	}
	if s.chosen[id] {
		delete(s.chosen, id)
		return
	}
	s.chosen[id] = true
}

// Has reports whether the seat is currently selected.
func (s *Selection) Has(id int) bool {
	return s.chosen[id]
}

// Booked reports whether the seat is in the showtime's booked list.
func (s *Selection) Booked(id int) bool {
	return s.booked[id]
}

// Count returns the number of selected seats.
func (s *Selection) Count() int {
	return len(s.chosen)
}

// IDs returns the selected seat ids in ascending order.
func (s *Selection) IDs() []int {
	ids := make([]int, 0, len(s.chosen))
	for id := range s.chosen {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Clear empties the selection but keeps the booked bound.
func (s *Selection) Clear() {
	s.chosen = make(map[int]bool)
}
