package request

import (
	"context"
	"net/url"

	"rebookz-admin/internal/apiclient"
)

type Repository interface {
	List(ctx context.Context) ([]Request, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type repository struct {
	api *apiclient.Client
}

func NewRepository(api *apiclient.Client) Repository {
	return &repository{api: api}
}

func (r *repository) List(ctx context.Context) ([]Request, error) {
	var out []Request
	if err := r.api.Get(ctx, "/requests", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.api.Put(ctx, "/requests/"+url.PathEscape(id), statusRequest{Status: status}, nil)
}
