package feedback

import (
	"context"
	"net/url"

	"rebookz-admin/internal/apiclient"
)

type Repository interface {
	List(ctx context.Context) ([]Feedback, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	api *apiclient.Client
}

func NewRepository(api *apiclient.Client) Repository {
	return &repository{api: api}
}

func (r *repository) List(ctx context.Context) ([]Feedback, error) {
	var out []Feedback
	if err := r.api.Get(ctx, "/feedback", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.api.Delete(ctx, "/feedback/"+url.PathEscape(id), nil)
}
