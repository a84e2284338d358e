package purchase

import (
	"cinepass-cli/model"
	"cinepass-cli/seatmap"
)

// Step identifies one stage of the ticket purchase flow.
type Step int

const (
	StepCinema Step = iota
	StepShowtime
	StepSeats
	StepConfirm
	StepSuccess
)

func (s Step) String() string {
	switch s {
	case StepCinema:
		return "cinema"
	case StepShowtime:
		return "showtime"
	case StepSeats:
		return "seats"
	case StepConfirm:
		return "confirm"
	case StepSuccess:
		return "success"
	}
	return "unknown"
}

// Flow is the purchase state machine for one movie: cinema, then showtime,
// then seats, then confirm, then success. Each step owns its slice of the
// state; moving backward clears everything owned by later steps. Flow does
// no I/O itself: fetches happen outside and their results are applied
// through the Apply methods, which discard responses staged for an
// abandoned selection.
type Flow struct {
	MovieID int

	step     Step
	fetchSeq int
	err      error

	// cinema step
	Cinema *model.Cinema

	// showtime step
	Date    string
	Results []model.ShowtimeSearchResult

	// seats step
	Showtime  *model.ShowtimeItem
	RoomName  string
	Details   *model.ShowtimeDetails
	Room      model.RoomWithSeats
	Selection *seatmap.Selection

	// success step
	Result *model.TicketPurchaseResponse

	builder seatmap.Builder
}

func NewFlow(movieID int) *Flow {
	return &Flow{MovieID: movieID}
}

func (f *Flow) Step() Step { return f.step }

// Err returns the step-scoped error, if any.
func (f *Flow) Err() error { return f.err }

// Fail records a step-scoped failure. The flow stays where it is; the error
// clears on the next attempt of the same action or on navigation.
func (f *Flow) Fail(err error) { f.err = err }

// SelectCinema picks the cinema and advances to showtime selection,
// dropping any date, showtime and seat state from a previous pick.
func (f *Flow) SelectCinema(cinema model.Cinema) {
	c := cinema
	f.Cinema = &c
	f.clearFrom(StepShowtime)
	f.step = StepShowtime
}

// ApplySearch installs the showtime search results for a date.
func (f *Flow) ApplySearch(date string, results []model.ShowtimeSearchResult) {
	if f.step != StepShowtime {
		return
	}
	f.Date = date
	f.Results = results
	f.err = nil
}

// StageShowtime marks a showtime as the pending selection and returns the
// sequence number the caller must pass back to ApplyShowtimeData. Staging a
// new showtime invalidates any fetch still in flight for the previous one.
func (f *Flow) StageShowtime(showtime model.ShowtimeItem, roomName string) int {
	st := showtime
	f.Showtime = &st
	f.RoomName = roomName
	f.Details = nil
	f.Room = model.RoomWithSeats{}
	f.Selection = nil
	f.err = nil
	f.fetchSeq++
	return f.fetchSeq
}

// ApplyShowtimeData installs the joined detail+room fetch result and
// advances to seat selection. A result carrying a stale sequence number is
// discarded. The selection set always starts empty, bounded by the booked
// ids the detail reports.
func (f *Flow) ApplyShowtimeData(seq int, details model.ShowtimeDetails, room model.RoomWithSeats) bool {
	if seq != f.fetchSeq || f.Showtime == nil {
		return false
	}
	d := details
	f.Details = &d
	f.Room = room
	f.builder.Reset()
	f.Selection = seatmap.NewSelection(details.BookedSeats)
	f.err = nil
	f.step = StepSeats
	return true
}

// FailShowtimeData records a failed detail+room fetch. The flow stays at
// the showtime step and the staged selection is dropped.
func (f *Flow) FailShowtimeData(seq int, err error) {
	if seq != f.fetchSeq {
		return
	}
	f.Showtime = nil
	f.RoomName = ""
	f.err = err
}

// Layout returns the seat layout for the current room, built lazily and
// reused across redraws.
func (f *Flow) Layout() *seatmap.Layout {
	return f.builder.Layout(f.Room)
}

// ToggleSeat flips a seat in the selection. Booked seats never enter it.
func (f *Flow) ToggleSeat(seatID int) {
	if f.step != StepSeats || f.Selection == nil {
		return
	}
	f.Selection.Toggle(seatID)
}

// SeatLabel resolves a seat id to its display label.
func (f *Flow) SeatLabel(seatID int) string {
	return f.Layout().Label(seatID)
}

// TotalPrice is the undiscounted total for the current selection.
func (f *Flow) TotalPrice() float64 {
	if f.Showtime == nil || f.Selection == nil {
		return 0
	}
	return f.Showtime.TicketPrice * float64(f.Selection.Count())
}

// ContinueToConfirm advances from seats to confirm. No-op unless at the
// seats step with a non-empty selection.
func (f *Flow) ContinueToConfirm() bool {
	if f.step != StepSeats || f.Selection == nil || f.Selection.Count() == 0 {
		return false
	}
	f.err = nil
	f.step = StepConfirm
	return true
}

// CanConfirm reports whether a purchase may be submitted: a selected
// showtime and at least one seat.
func (f *Flow) CanConfirm() bool {
	return f.step == StepConfirm && f.Showtime != nil &&
		f.Selection != nil && f.Selection.Count() > 0
}

// SeatIDs returns the selected seat ids in ascending order.
func (f *Flow) SeatIDs() []int {
	if f.Selection == nil {
		return nil
	}
	return f.Selection.IDs()
}

// ApplyPurchase installs the purchase result and reaches the terminal
// success step.
func (f *Flow) ApplyPurchase(result model.TicketPurchaseResponse) {
	r := result
	f.Result = &r
	f.err = nil
	f.step = StepSuccess
}

// GoToStep navigates backward. Moving forward this way is not allowed;
// forward movement happens only through the transition methods. All state
// owned by steps after the target is cleared.
func (f *Flow) GoToStep(target Step) {
	if target >= f.step {
		return
	}
	f.clearFrom(target + 1)
	if target == StepSeats && f.Selection != nil {
		f.Selection.Clear()
	}
	f.step = target
}

// Reset returns the flow to its initial state for the same movie.
func (f *Flow) Reset() {
	f.clearFrom(StepCinema)
	f.Cinema = nil
	f.step = StepCinema
}

// clearFrom drops the state owned by step from and everything after it,
// and invalidates in-flight fetches.
func (f *Flow) clearFrom(from Step) {
	f.fetchSeq++
	f.err = nil
	if from <= StepShowtime {
		f.Date = ""
		f.Results = nil
	}
	if from <= StepSeats {
		f.Showtime = nil
		f.RoomName = ""
		f.Details = nil
		f.Room = model.RoomWithSeats{}
		f.Selection = nil
		f.builder.Reset()
	}
	if from <= StepSuccess {
		f.Result = nil
	}
}
