package model

type ShowtimeSearchParams struct {
	MovieId  int    `json:"movie_id,omitempty"`
	CinemaId int    `json:"cinema_id,omitempty"`
	Date     string `json:"date,omitempty"` // YYYY-MM-DD
}

// ShowtimeSearchResult groups a room's showtimes for one search hit.
type ShowtimeSearchResult struct {
	Id        int            `json:"id"`
	RoomId    int            `json:"room_id"`
	RoomName  string         `json:"room_name"`
	Showtimes []ShowtimeItem `json:"showtimes"`
}

// ShowtimeItem is the search projection: BookedSeats here is a COUNT of
// reserved seats, not a list of ids. The id list only exists on
// ShowtimeDetails.
type ShowtimeItem struct {
	Id          int     `json:"id"`
	RoomId      int     `json:"room_id"`
	StartTime   string  `json:"start_time"` // HH:mm
	EndTime     string  `json:"end_time"`   // HH:mm
	BookedSeats int     `json:"booked_seats"`
	TicketPrice float64 `json:"ticket_price"`
}

type ShowtimeDetails struct {
	Id          int     `json:"id"`
	RoomId      int     `json:"room_id"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	BookedSeats []int   `json:"booked_seats"`
	RoomSeats   int     `json:"room_seats"`
	TicketPrice float64 `json:"ticket_price"`
}
