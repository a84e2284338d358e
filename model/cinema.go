package model

type Cinema struct {
	Id          int    `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`
	PhoneNumber int    `json:"phoneNumber,omitempty"`
	CountryCode int    `json:"countryCode,omitempty"`
}

type CinemaSearchParams struct {
	Page  int    `json:"page,omitempty"`
	Limit int    `json:"limit,omitempty"`
	Name  string `json:"name,omitempty"`
	City  string `json:"city,omitempty"`
}

type CinemaSearchResponse struct {
	Cinemas    []Cinema   `json:"cinemas"`
	Pagination Pagination `json:"pagination"`
}
