package model

type TicketPurchaseRequest struct {
	ShowtimeId int   `json:"showtime_id"`
	Seats      []int `json:"seats"`
}

type TicketPurchaseResponse struct {
	ShowtimeId int          `json:"showtime_id"`
	RoomId     int          `json:"room_id"`
	RoomName   string       `json:"room_name"`
	CinemaId   int          `json:"cinema_id"`
	CinemaName string       `json:"cinema_name"`
	MovieId    int          `json:"movie_id"`
	MovieTitle string       `json:"movie_title"`
	StartTime  string       `json:"start_time"`
	EndTime    string       `json:"end_time"`
	Tickets    []TicketSeat `json:"tickets"`
}

type TicketSeat struct {
	Id   int `json:"id"`
	Seat struct {
		Id     int    `json:"id"`
		Row    string `json:"row"`
		Column string `json:"column"`
	} `json:"seat"`
}
