package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"cinepass-cli/model"
)

// GetMovies returns one page of the movie catalog.
func (c *Client) GetMovies(ctx context.Context, params model.MovieListParams) (model.MovieListResponse, error) {
	q := url.Values{}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Genre != "" {
		q.Set("genre", params.Genre)
	}
	if params.Year != "" {
		q.Set("year", params.Year)
	}
	if params.Language != "" {
		q.Set("language", params.Language)
	}
	endpoint := c.endpoint("/movies")
	if encoded := q.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var res model.MovieListResponse
	if err := c.getJSON(ctx, endpoint, &res); err != nil {
		return model.MovieListResponse{}, err
	}
	return res, nil
}

// GetMovieById fetches one movie by id.
func (c *Client) GetMovieById(ctx context.Context, movieID int) (model.Movie, error) {
	if movieID <= 0 {
		return model.Movie{}, errors.New("movie id is required")
	}
	var movie model.Movie
	if err := c.getJSON(ctx, c.endpoint(fmt.Sprintf("/movies/%d", movieID)), &movie); err != nil {
		return model.Movie{}, err
	}
	return movie, nil
}

// SearchMovies runs a free-text title search.
func (c *Client) SearchMovies(ctx context.Context, query string) ([]model.Movie, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("search query is required")
	}
	endpoint := c.endpoint("/movies/search?q=" + url.QueryEscape(query))

	var movies []model.Movie
	if err := c.getJSON(ctx, endpoint, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// GetPopularMovies returns the backend's popular list.
func (c *Client) GetPopularMovies(ctx context.Context) ([]model.Movie, error) {
	var movies []model.Movie
	if err := c.getJSON(ctx, c.endpoint("/movies/popular"), &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// SearchCinemas searches cinemas by name/city with pagination.
func (c *Client) SearchCinemas(ctx context.Context, params model.CinemaSearchParams) (model.CinemaSearchResponse, error) {
	var res model.CinemaSearchResponse
	if err := c.postJSON(ctx, c.endpoint("/cinemas/search"), params, &res); err != nil {
		return model.CinemaSearchResponse{}, err
	}
	return res, nil
}
