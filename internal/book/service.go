package book

import (
	"context"

	"rebookz-admin/internal/apiclient"
	"rebookz-admin/internal/listing"
	"rebookz-admin/internal/logger"

	"go.uber.org/zap"
)

// Service is also the listing.Source of the books page.
type Service interface {
	List(ctx context.Context, q listing.Query) (listing.Page[Book], error)
	Get(ctx context.Context, id string) (*Book, error)
	// Create uploads image (when given) and lists the book with it as cover.
	Create(ctx context.Context, input NewBook, image *apiclient.File) (*Book, error)
	Update(ctx context.Context, id string, input UpdateBook) (*Book, error)
	MarkSold(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, q listing.Query) (listing.Page[Book], error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListBooks"),
	)
	log.Debug("ListBooks started",
		zap.Int("page", q.Page),
		zap.Int("limit", q.Limit),
		zap.Any("filters", q.Filters),
	)

	page, err := s.repo.List(ctx, q)
	if err != nil {
		log.Error("failed to list books", zap.Error(err))
		return listing.Page[Book]{}, err
	}

	log.Info("ListBooks success",
		zap.Int("count", len(page.Items)),
		zap.Int("page", page.Page),
		zap.Int("total", page.Total),
	)
	return page, nil
}

func (s *service) Get(ctx context.Context, id string) (*Book, error) {
	if id == "" {
		return nil, ErrBookIDRequired
	}
	return s.repo.Get(ctx, id)
}

func (s *service) Create(ctx context.Context, input NewBook, image *apiclient.File) (*Book, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateBook"),
		zap.String("title", input.Title),
	)
	log.Info("CreateBook started")

	input.applyDefaults()
	if err := apiclient.Validation(input.Validate()); err != nil {
		log.Warn("CreateBook validation failed", zap.Error(err))
		return nil, err
	}

	if image != nil {
		path, err := s.repo.UploadImage(ctx, *image)
		if err != nil {
			log.Error("failed to upload cover image", zap.Error(err))
			return nil, err
		}
		input.Images = []string{path}
	}

	created, err := s.repo.Create(ctx, input)
	if err != nil {
		log.Error("failed to create book", zap.Error(err))
		return nil, err
	}

	log.Info("CreateBook success", zap.String("book_id", created.ID))
	return created, nil
}

func (s *service) Update(ctx context.Context, id string, input UpdateBook) (*Book, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateBook"),
		zap.String("book_id", id),
	)

	if id == "" {
		return nil, ErrBookIDRequired
	}
	if input.empty() {
		return nil, ErrNoFieldsToUpdate
	}
	if err := apiclient.Validation(input.Validate()); err != nil {
		log.Warn("UpdateBook validation failed", zap.Error(err))
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, input)
	if err != nil {
		log.Error("failed to update book", zap.Error(err))
		return nil, err
	}

	log.Info("UpdateBook success")
	return updated, nil
}

func (s *service) MarkSold(ctx context.Context, id string) error {
	status := StatusSold
	_, err := s.Update(ctx, id, UpdateBook{Status: &status})
	return err
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "DeleteBook"),
		zap.String("book_id", id),
	)

	if id == "" {
		return ErrBookIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("failed to delete book", zap.Error(err))
		return err
	}

	log.Info("DeleteBook success")
	return nil
}
