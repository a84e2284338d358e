package seatmap

import (
	"fmt"
	"sort"

	"cinepass-cli/model"
)

// CellKind classifies one position of a visual row.
type CellKind int

const (
	// CellGap marks a position with no seat: either a vertical aisle
	// between blocks or a hole in an irregular block. The two are
	// indistinguishable at the cell level.
	CellGap CellKind = iota
	CellSeat
)

type Cell struct {
	Kind CellKind
	Seat model.RoomSeat // valid only when Kind == CellSeat
}

// Row is one visual row of the reconstructed grid. An aisle row carries no
// cells; it stands for the full-width walkway between block rows.
type Row struct {
	Aisle bool
	Cells []Cell
}

// Layout is the deterministic 2-D reconstruction of a room's seat blocks:
// rows ordered top to bottom, cells left to right, with aisle markers at
// block boundaries and a seat lookup by id. It is immutable once built.
type Layout struct {
	Rows []Row

	byID map[int]model.RoomSeat
}

// Build reconstructs the visual grid from a room's blocks. Blocks and the
// seats inside them may arrive in any order; the output depends only on the
// seat coordinates and block origins. A room with no seats yields an empty
// layout, never an error. Pure function of its input.
func Build(room model.RoomWithSeats) *Layout {
	byID := make(map[int]model.RoomSeat)
	grid := make(map[int]map[int]model.RoomSeat)
	rowBlock := make(map[int]int) // seatRow -> owning blockRow
	colBlock := make(map[int]int) // seatColumn -> owning blockColumn

	for _, block := range room.Blocks {
		for _, seat := range block.Seats {
			byID[seat.Id] = seat
			cols := grid[seat.SeatRow]
			if cols == nil {
				cols = make(map[int]model.RoomSeat)
				grid[seat.SeatRow] = cols
			}
			cols[seat.SeatColumn] = seat
			rowBlock[seat.SeatRow] = block.BlockRow
			colBlock[seat.SeatColumn] = block.BlockColumn
		}
	}

	if len(byID) == 0 {
		return &Layout{byID: byID}
	}

	rows := make([]int, 0, len(grid))
	for r := range grid {
		rows = append(rows, r)
	}
	sort.Ints(rows)

	colSet := make(map[int]struct{})
	for _, cols := range grid {
		for c := range cols {
			colSet[c] = struct{}{}
		}
	}
	cols := make([]int, 0, len(colSet))
	for c := range colSet {
		cols = append(cols, c)
	}
	sort.Ints(cols)

	// A boundary exists where the owning block changes between adjacent
	// sorted coordinates. Numeric gaps inside one block never produce an
	// aisle; two blocks sharing a block coordinate never get one either.
	rowBoundary := make(map[int]bool)
	for i := 1; i < len(rows); i++ {
		if rowBlock[rows[i]] != rowBlock[rows[i-1]] {
			rowBoundary[rows[i]] = true
		}
	}
	colBoundary := make(map[int]bool)
	for i := 1; i < len(cols); i++ {
		if colBlock[cols[i]] != colBlock[cols[i-1]] {
			colBoundary[cols[i]] = true
		}
	}

	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if rowBoundary[r] {
			out = append(out, Row{Aisle: true})
		}
		cells := make([]Cell, 0, len(cols))
		for _, c := range cols {
			if colBoundary[c] {
				cells = append(cells, Cell{Kind: CellGap})
			}
			if seat, ok := grid[r][c]; ok {
				cells = append(cells, Cell{Kind: CellSeat, Seat: seat})
			} else {
				cells = append(cells, Cell{Kind: CellGap})
			}
		}
		out = append(out, Row{Cells: cells})
	}

	return &Layout{Rows: out, byID: byID}
}

// Seat resolves a seat id to its record.
func (l *Layout) Seat(id int) (model.RoomSeat, bool) {
	seat, ok := l.byID[id]
	return seat, ok
}

// Label returns the human-facing label for a seat id, e.g. "B7". Unknown ids
// get a synthetic "#<id>" label; Label never fails.
func (l *Layout) Label(id int) string {
	if l != nil {
		if seat, ok := l.byID[id]; ok {
			return fmt.Sprintf("%s%d", seat.SeatRowLabel, seat.SeatColumnLabel)
		}
	}
	return fmt.Sprintf("#%d", id)
}

// SeatCount reports how many seats the layout holds.
func (l *Layout) SeatCount() int {
	return len(l.byID)
}

// Builder memoizes the last computed layout keyed by room id, so redrawing
// the grid on every interaction does not rebuild it.
type Builder struct {
	roomID int
	layout *Layout
}

// Layout returns the layout for room, reusing the cached one when the room
// reference has not changed.
func (b *Builder) Layout(room model.RoomWithSeats) *Layout {
	if b.layout != nil && b.roomID == room.Id {
		return b.layout
	}
	b.roomID = room.Id
	b.layout = Build(room)
	return b.layout
}

// Reset drops the cached layout.
func (b *Builder) Reset() {
	b.roomID = 0
	b.layout = nil
}
