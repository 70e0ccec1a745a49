package category

import (
	"context"
	"strings"

	"rebookz-admin/internal/apiclient"
	"rebookz-admin/internal/logger"

	"go.uber.org/zap"
)

// Service defines the category operations the console needs.
type Service interface {
	GetCategories(ctx context.Context) ([]Category, error)
	AddCategory(ctx context.Context, input NewCategory) (*Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// GetCategories retrieves all categories
func (s *service) GetCategories(ctx context.Context) ([]Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetCategories"),
	)
	log.Info("GetCategories started")

	categories, err := s.repo.List(ctx)
	if err != nil {
		log.Error("failed to get categories", zap.Error(err))
		return nil, err
	}

	log.Info("GetCategories success", zap.Int("count", len(categories)))
	return categories, nil
}

func (s *service) AddCategory(ctx context.Context, input NewCategory) (*Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddCategory"),
		zap.String("name", input.Name),
	)
	log.Info("AddCategory started")

	input.Name = strings.TrimSpace(input.Name)
	input.IconName = ValidIcon(input.IconName)
	if err := apiclient.Validation(input.Validate()); err != nil {
		log.Warn("AddCategory validation failed", zap.Error(err))
		return nil, err
	}

	category, err := s.repo.Create(ctx, input)
	if err != nil {
		log.Error("failed to add category", zap.Error(err))
		return nil, err
	}

	log.Info("AddCategory success", zap.String("category_id", category.ID))
	return category, nil
}

func (s *service) DeleteCategory(ctx context.Context, id string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "DeleteCategory"),
		zap.String("category_id", id),
	)

	if id == "" {
		return ErrCategoryID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("failed to delete category", zap.Error(err))
		return err
	}

	log.Info("DeleteCategory success")
	return nil
}
