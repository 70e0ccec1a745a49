package support

import (
	"context"
	"net/url"

	"rebookz-admin/internal/apiclient"
)

type Repository interface {
	List(ctx context.Context) ([]Ticket, error)
	Update(ctx context.Context, id string, r Response) (*Ticket, error)
}

type repository struct {
	api *apiclient.Client
}

func NewRepository(api *apiclient.Client) Repository {
	return &repository{api: api}
}

func (r *repository) List(ctx context.Context) ([]Ticket, error) {
	var out []Ticket
	if err := r.api.Get(ctx, "/support", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) Update(ctx context.Context, id string, resp Response) (*Ticket, error) {
	var t Ticket
	if err := r.api.Put(ctx, "/support/"+url.PathEscape(id), resp, &t); err != nil {
		return nil, err
	}
	return &t, nil
}
