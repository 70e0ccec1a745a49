package user

import (
	"context"
	"net/url"

	"rebookz-admin/internal/apiclient"
	"rebookz-admin/internal/listing"
)

type Repository interface {
	List(ctx context.Context, q listing.Query) (listing.Page[User], error)
	Delete(ctx context.Context, id string) error
	SetSuspended(ctx context.Context, id string, suspended bool) (*User, error)
}

type repository struct {
	api *apiclient.Client
}

func NewRepository(api *apiclient.Client) Repository {
	return &repository{api: api}
}

func (r *repository) List(ctx context.Context, q listing.Query) (listing.Page[User], error) {
	var resp listResponse
	if err := r.api.Get(ctx, "/users", q.Values(), &resp); err != nil {
		return listing.Page[User]{}, err
	}
	return listing.Page[User]{
		Items: resp.Users,
		Page:  resp.Page,
		Pages: resp.Pages,
		Total: resp.Total,
	}, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.api.Delete(ctx, "/users/"+url.PathEscape(id), nil)
}

func (r *repository) SetSuspended(ctx context.Context, id string, suspended bool) (*User, error) {
	var u User
	if err := r.api.Put(ctx, "/users/"+url.PathEscape(id), suspendRequest{IsSuspended: suspended}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
