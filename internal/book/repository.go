package book

import (
	"context"
	"net/url"

	"rebookz-admin/internal/apiclient"
	"rebookz-admin/internal/listing"
)

type Repository interface {
	List(ctx context.Context, q listing.Query) (listing.Page[Book], error)
	Get(ctx context.Context, id string) (*Book, error)
	Create(ctx context.Context, input NewBook) (*Book, error)
	Update(ctx context.Context, id string, input UpdateBook) (*Book, error)
	Delete(ctx context.Context, id string) error
	UploadImage(ctx context.Context, f apiclient.File) (string, error)
}

type repository struct {
	api *apiclient.Client
}

func NewRepository(api *apiclient.Client) Repository {
	return &repository{api: api}
}

func (r *repository) List(ctx context.Context, q listing.Query) (listing.Page[Book], error) {
	var resp listResponse
	if err := r.api.Get(ctx, "/books", q.Values(), &resp); err != nil {
		return listing.Page[Book]{}, err
	}
	return listing.Page[Book]{
		Items: resp.Books,
		Page:  resp.Page,
		Pages: resp.Pages,
		Total: resp.Total,
	}, nil
}

func (r *repository) Get(ctx context.Context, id string) (*Book, error) {
	var b Book
	if err := r.api.Get(ctx, "/books/"+url.PathEscape(id), nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) Create(ctx context.Context, input NewBook) (*Book, error) {
	var b Book
	if err := r.api.Post(ctx, "/books", input, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) Update(ctx context.Context, id string, input UpdateBook) (*Book, error) {
	var b Book
	if err := r.api.Put(ctx, "/books/"+url.PathEscape(id), input, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.api.Delete(ctx, "/books/"+url.PathEscape(id), nil)
}

func (r *repository) UploadImage(ctx context.Context, f apiclient.File) (string, error) {
	return r.api.Upload(ctx, "/upload", f)
}
