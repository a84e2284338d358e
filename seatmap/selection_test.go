package seatmap

import "testing"

func TestSelection_ToggleAddsAndRemoves(t *testing.T) {
	sel := NewSelection(nil)
	sel.Toggle(3)
	sel.Toggle(1)
	if !sel.Has(3) || !sel.Has(1) {
		t.Fatal("expected seats 1 and 3 selected")
	}
	sel.Toggle(3)
	if sel.Has(3) {
		t.Fatal("expected second toggle to deselect seat 3")
	}
	if got := sel.Count(); got != 1 {
		t.Fatalf("expected 1 selected seat, got %d", got)
	}
}

func TestSelection_BookedSeatsCannotBeSelected(t *testing.T) {
	sel := NewSelection([]int{5, 9})
	sel.Toggle(5)
	sel.Toggle(9)
	if sel.Count() != 0 {
		t.Fatalf("expected booked toggles to be no-ops, got %d selected", sel.Count())
	}
	if !sel.Booked(5) || !sel.Booked(9) {
		t.Fatal("expected seats 5 and 9 reported as booked")
	}
	sel.Toggle(4)
	if !sel.Has(4) {
		t.Fatal("expected free seat 4 to be selectable")
	}
}

func TestSelection_IDsAreSorted(t *testing.T) {
	sel := NewSelection(nil)
	for _, id := range []int{12, 3, 7, 1} {
		sel.Toggle(id)
	}
	got := sel.IDs()
	want := []int{1, 3, 7, 12}
	if len(got) != len(want) {
		t.Fatalf("expected %d ids, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ids[%d] = %d, expected %d", i, got[i], want[i])
		}
	}
}

func TestSelection_ClearKeepsBooked(t *testing.T) {
	sel := NewSelection([]int{2})
	sel.Toggle(1)
	sel.Clear()
	if sel.Count() != 0 {
		t.Fatalf("expected empty selection after clear, got %d", sel.Count())
	}
	if !sel.Booked(2) {
		t.Fatal("expected booked seats to survive clear")
	}
}
