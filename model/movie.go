package model

type Movie struct {
	Id          int      `json:"id"`
	Title       string   `json:"title"`
	Overview    string   `json:"overview"`
	Poster      string   `json:"poster"`
	Backdrop    string   `json:"backdrop"`
	ReleaseDate string   `json:"releaseDate"`
	Year        int      `json:"year"`
	Rating      float64  `json:"rating"`
	Genres      []Genre  `json:"genres"`
	Language    string   `json:"language"`
	Trailer     string   `json:"trailer,omitempty"`
}

type Genre struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type Pagination struct {
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
	TotalItems  int `json:"totalItems"`
	TotalPages  int `json:"totalPages"`
}

type MovieListResponse struct {
	Movies     []Movie    `json:"movies"`
	Pagination Pagination `json:"pagination"`
}

type MovieListParams struct {
	Page     int    `json:"page,omitempty"`
	Genre    string `json:"genre,omitempty"`
	Year     string `json:"year,omitempty"`
	Language string `json:"language,omitempty"`
}
