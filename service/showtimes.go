package service

import (
	"context"
	"errors"
	"fmt"

	"cinepass-cli/model"
)

// SearchShowtimes finds showtimes for a movie on a date, grouped by room.
// Each entry carries only a booked-seat COUNT; the id list requires
// GetShowtime.
func (c *Client) SearchShowtimes(ctx context.Context, params model.ShowtimeSearchParams) ([]model.ShowtimeSearchResult, error) {
	if params.MovieId <= 0 {
		return nil, errors.New("movie id is required")
	}
	var res struct {
		Showtimes []model.ShowtimeSearchResult `json:"showtimes"`
	}
	if err := c.postJSON(ctx, c.endpoint("/showtimes/search"), params, &res); err != nil {
		return nil, err
	}
	return res.Showtimes, nil
}

// GetShowtime fetches the detail projection of one showtime, including the
// explicit list of booked seat ids.
func (c *Client) GetShowtime(ctx context.Context, showtimeID int) (model.ShowtimeDetails, error) {
	if showtimeID <= 0 {
		return model.ShowtimeDetails{}, errors.New("showtime id is required")
	}
	var details model.ShowtimeDetails
	if err := c.getJSON(ctx, c.endpoint(fmt.Sprintf("/showtimes/%d", showtimeID)), &details); err != nil {
		return model.ShowtimeDetails{}, err
	}
	return details, nil
}

// GetRoomWithSeats fetches a room together with its seat blocks.
func (c *Client) GetRoomWithSeats(ctx context.Context, roomID int) (model.RoomWithSeats, error) {
	if roomID <= 0 {
		return model.RoomWithSeats{}, errors.New("room id is required")
	}
	endpoint := c.endpoint(fmt.Sprintf("/rooms/%d?includeSeats=true", roomID))
	var room model.RoomWithSeats
	if err := c.getJSON(ctx, endpoint, &room); err != nil {
		return model.RoomWithSeats{}, err
	}
	return room, nil
}
