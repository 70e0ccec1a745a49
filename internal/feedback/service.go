package feedback

import (
	"context"
	"errors"

	"rebookz-admin/internal/listing"
	"rebookz-admin/internal/logger"

	"go.uber.org/zap"
)

var ErrFeedbackIDRequired = errors.New("feedback id is required")

type Service interface {
	List(ctx context.Context, q listing.Query) (listing.Page[Feedback], error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, q listing.Query) (listing.Page[Feedback], error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListFeedback"),
	)

	all, err := s.repo.List(ctx)
	if err != nil {
		log.Error("failed to list feedback", zap.Error(err))
		return listing.Page[Feedback]{}, err
	}

	items := listing.Match(all, q, field)
	log.Info("ListFeedback success", zap.Int("count", len(items)))
	return listing.Single(items), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "DeleteFeedback"),
		zap.String("feedback_id", id),
	)

	if id == "" {
		return ErrFeedbackIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("failed to delete feedback", zap.Error(err))
		return err
	}

	log.Info("DeleteFeedback success")
	return nil
}
