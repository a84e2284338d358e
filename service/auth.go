package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"cinepass-cli/model"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Login authenticates with email and password. Credentials are validated
// locally before any network call; a malformed email never leaves the
// process.
func (c *Client) Login(ctx context.Context, creds model.Credentials) (model.LoginResponse, error) {
	if err := validate.Struct(creds); err != nil {
		return model.LoginResponse{}, fmt.Errorf("invalid credentials: %w", err)
	}
	var res model.LoginResponse
	if err := c.postJSON(ctx, c.endpoint("/auth/login"), creds, &res); err != nil {
		return model.LoginResponse{}, err
	}
	return res, nil
}

// Register creates a new account and returns the user plus a session token.
func (c *Client) Register(ctx context.Context, data model.RegisterData) (model.RegisterResponse, error) {
	if err := validate.Struct(data); err != nil {
		return model.RegisterResponse{}, fmt.Errorf("invalid registration data: %w", err)
	}
	var res model.RegisterResponse
	if err := c.postJSON(ctx, c.endpoint("/auth/register"), data, &res); err != nil {
		return model.RegisterResponse{}, err
	}
	return res, nil
}
