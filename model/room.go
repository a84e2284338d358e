package model

// RoomSeat has two independent coordinate systems: SeatRow/SeatColumn place
// the seat in the room-wide grid shared by every block, while SeatRowLabel
// and SeatColumnLabel are what gets printed on the ticket.
type RoomSeat struct {
	Id              int    `json:"id"`
	SeatRowLabel    string `json:"seatRowLabel"`
	SeatRow         int    `json:"seatRow"`
	SeatColumnLabel int    `json:"seatColumnLabel"`
	SeatColumn      int    `json:"seatColumn"`
}

// RoomBlock is a rectangular group of seats with its own origin in block
// space. Blocks never overlap in seat coordinates.
type RoomBlock struct {
	Id           int        `json:"id"`
	BlockRow     int        `json:"blockRow"`
	BlockColumn  int        `json:"blockColumn"`
	RowSeats     int        `json:"rowSeats"`
	ColumnsSeats int        `json:"columnsSeats"`
	Seats        []RoomSeat `json:"seats"`
}

type Room struct {
	Id           int    `json:"id"`
	Name         string `json:"name"`
	RowsBlocks   int    `json:"rowsBlocks"`
	ColumnsBlocks int   `json:"columnsBlocks"`
	Details      string `json:"details,omitempty"`
}

type RoomWithSeats struct {
	Room
	Blocks []RoomBlock `json:"blocks"`
}
