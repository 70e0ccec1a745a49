package request

import (
	"context"

	"rebookz-admin/internal/apiclient"
	"rebookz-admin/internal/book"
	"rebookz-admin/internal/listing"
	"rebookz-admin/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	// List fetches every request and filters by status locally; the
	// endpoint is not paginated.
	List(ctx context.Context, q listing.Query) (listing.Page[Request], error)
	UpdateStatus(ctx context.Context, id, status string) error
	// Fulfill lists a book for r with the given cover, then marks r fulfilled.
	Fulfill(ctx context.Context, r Request, draft book.NewBook, cover *apiclient.File) (*book.Book, error)
}

type service struct {
	repo  Repository
	books book.Service
}

func NewService(repo Repository, books book.Service) Service {
	return &service{repo: repo, books: books}
}

func (s *service) List(ctx context.Context, q listing.Query) (listing.Page[Request], error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListRequests"),
	)

	all, err := s.repo.List(ctx)
	if err != nil {
		log.Error("failed to list requests", zap.Error(err))
		return listing.Page[Request]{}, err
	}

	items := listing.Match(all, q, field)
	log.Info("ListRequests success", zap.Int("count", len(items)), zap.Int("active", ActiveCount(all)))
	return listing.Single(items), nil
}

func (s *service) UpdateStatus(ctx context.Context, id, status string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateRequestStatus"),
		zap.String("request_id", id),
		zap.String("status", status),
	)

	if id == "" {
		return ErrRequestIDRequired
	}
	if status != StatusFulfilled && status != StatusCancelled {
		return ErrInvalidStatus
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		log.Error("failed to update request", zap.Error(err))
		return err
	}

	log.Info("UpdateRequestStatus success")
	return nil
}

func (s *service) Fulfill(ctx context.Context, r Request, draft book.NewBook, cover *apiclient.File) (*book.Book, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "FulfillRequest"),
		zap.String("request_id", r.ID),
	)
	log.Info("FulfillRequest started")

	if r.ID == "" {
		return nil, ErrRequestIDRequired
	}
	if !r.IsActive() {
		return nil, ErrNotActive
	}
	if cover == nil {
		return nil, apiclient.Validation(map[string]string{"image": "Please upload a book cover image"})
	}

	created, err := s.books.Create(ctx, draft, cover)
	if err != nil {
		log.Error("failed to create book for request", zap.Error(err))
		return nil, err
	}

	if err := s.UpdateStatus(ctx, r.ID, StatusFulfilled); err != nil {
		log.Error("book created but request not marked fulfilled",
			zap.String("book_id", created.ID),
			zap.Error(err),
		)
		return created, err
	}

	log.Info("FulfillRequest success", zap.String("book_id", created.ID))
	return created, nil
}
