package user

import (
	"context"
	"errors"

	"rebookz-admin/internal/listing"
	"rebookz-admin/internal/logger"

	"go.uber.org/zap"
)

var ErrUserIDRequired = errors.New("user id is required")

type Service interface {
	List(ctx context.Context, q listing.Query) (listing.Page[User], error)
	Delete(ctx context.Context, id string) error
	Suspend(ctx context.Context, id string, suspended bool) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, q listing.Query) (listing.Page[User], error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListUsers"),
		zap.Int("page", q.Page),
	)

	page, err := s.repo.List(ctx, q)
	if err != nil {
		log.Error("failed to list users", zap.Error(err))
		return listing.Page[User]{}, err
	}

	log.Info("ListUsers success", zap.Int("count", len(page.Items)), zap.Int("total", page.Total))
	return page, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "DeleteUser"),
		zap.String("user_id", id),
	)

	if id == "" {
		return ErrUserIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("failed to delete user", zap.Error(err))
		return err
	}

	log.Info("DeleteUser success")
	return nil
}

func (s *service) Suspend(ctx context.Context, id string, suspended bool) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SuspendUser"),
		zap.String("user_id", id),
		zap.Bool("suspended", suspended),
	)

	if id == "" {
		return ErrUserIDRequired
	}
	if _, err := s.repo.SetSuspended(ctx, id, suspended); err != nil {
		log.Error("failed to update suspension", zap.Error(err))
		return err
	}

	log.Info("SuspendUser success")
	return nil
}
