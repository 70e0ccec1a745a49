// Package guest serves the public page a shared book link opens: the book
// fetched without credentials and a hand-off link into the mobile app.
package guest

import (
	"context"
	"errors"
	"net/url"

	"rebookz-admin/internal/apiclient"
	"rebookz-admin/internal/book"
	"rebookz-admin/internal/logger"

	"go.uber.org/zap"
)

var ErrBookIDRequired = errors.New("book id is required")

type Options struct {
	ServerURL   string
	Scheme      string
	DownloadURL string
}

// Listing is what the guest page renders.
type Listing struct {
	Book        book.Book `json:"book"`
	Cover       string    `json:"cover,omitempty"`
	DeepLink    string    `json:"deepLink"`
	DownloadURL string    `json:"downloadUrl"`
}

type Service interface {
	Book(ctx context.Context, id string) (*Listing, error)
}

type service struct {
	books book.Repository
	opts  Options
}

// NewService reads books through api without any token, whatever api carries.
func NewService(api *apiclient.Client, opts Options) Service {
	return &service{
		books: book.NewRepository(api.WithToken("")),
		opts:  opts,
	}
}

func (s *service) Book(ctx context.Context, id string) (*Listing, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GuestBook"),
		zap.String("book_id", id),
	)

	if id == "" {
		return nil, ErrBookIDRequired
	}

	b, err := s.books.Get(ctx, id)
	if err != nil {
		log.Warn("failed to load shared book", zap.Error(err))
		return nil, err
	}

	return &Listing{
		Book:        *b,
		Cover:       apiclient.ResolveAsset(s.opts.ServerURL, b.Cover()),
		DeepLink:    DeepLink(s.opts.Scheme, b.ID),
		DownloadURL: s.opts.DownloadURL,
	}, nil
}

// DeepLink is the custom-scheme URL that opens id in the mobile app. Whether
// the scheme is registered on the device is not checked.
func DeepLink(scheme, id string) string {
	return scheme + "://book/" + url.PathEscape(id)
}
