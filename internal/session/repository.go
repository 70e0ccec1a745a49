package session

import (
	"context"

	"rebookz-admin/internal/apiclient"
)

// Repository is the marketplace side of authentication.
type Repository interface {
	Login(ctx context.Context, req LoginRequest) (User, string, error)
}

type repository struct {
	api *apiclient.Client
}

func NewRepository(api *apiclient.Client) Repository {
	return &repository{api: api}
}

func (r *repository) Login(ctx context.Context, req LoginRequest) (User, string, error) {
	var resp loginResponse
	if err := r.api.Post(ctx, "/users/login", req, &resp); err != nil {
		return User{}, "", err
	}
	if resp.Token == "" {
		return User{}, "", ErrMissingToken
	}
	return resp.user(), resp.Token, nil
}
