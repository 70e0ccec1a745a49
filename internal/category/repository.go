package category

import (
	"context"
	"net/url"

	"rebookz-admin/internal/apiclient"
)

type Repository interface {
	List(ctx context.Context) ([]Category, error)
	Create(ctx context.Context, input NewCategory) (*Category, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	api *apiclient.Client
}

func NewRepository(api *apiclient.Client) Repository {
	return &repository{api: api}
}

// List returns the whole tree; /categories is not paginated.
func (r *repository) List(ctx context.Context) ([]Category, error) {
	var out []Category
	if err := r.api.Get(ctx, "/categories", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Category{}
	}
	return out, nil
}

func (r *repository) Create(ctx context.Context, input NewCategory) (*Category, error) {
	var c Category
	if err := r.api.Post(ctx, "/categories", input, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.api.Delete(ctx, "/categories/"+url.PathEscape(id), nil)
}
