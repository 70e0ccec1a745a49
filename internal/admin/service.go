package admin

import (
	"context"
	"strings"

	"rebookz-admin/internal/apiclient"
	"rebookz-admin/internal/listing"
	"rebookz-admin/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Stats(ctx context.Context) (*Stats, error)
	// List is the admins page source; /admin/users is not paginated.
	List(ctx context.Context, q listing.Query) (listing.Page[Admin], error)
	CreateAdmin(ctx context.Context, input NewAdmin) (*Admin, error)
	Config(ctx context.Context) (RemoteConfig, error)
	// ToggleFlag flips a boolean setting on behalf of actorEmail and returns
	// the updated config.
	ToggleFlag(ctx context.Context, actorEmail, key string) (RemoteConfig, error)
	ResetPassword(ctx context.Context, newPassword, confirm string) error
	IsSuperAdmin(email string) bool
}

type service struct {
	repo       Repository
	superAdmin string
}

// NewService builds the service. superAdmin is the only email allowed to
// change remote settings; empty means nobody is.
func NewService(repo Repository, superAdmin string) Service {
	return &service{repo: repo, superAdmin: strings.ToLower(strings.TrimSpace(superAdmin))}
}

func (s *service) IsSuperAdmin(email string) bool {
	return s.superAdmin != "" && strings.EqualFold(strings.TrimSpace(email), s.superAdmin)
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Stats"),
	)

	stats, err := s.repo.Stats(ctx)
	if err != nil {
		log.Error("failed to fetch stats", zap.Error(err))
		return nil, err
	}

	log.Info("Stats success",
		zap.Int("users", stats.TotalUsers),
		zap.Int("books", stats.TotalBooks),
		zap.Int("sold", stats.TotalSold),
	)
	return stats, nil
}

func (s *service) List(ctx context.Context, q listing.Query) (listing.Page[Admin], error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListAdmins"),
	)

	admins, err := s.repo.ListAdmins(ctx)
	if err != nil {
		log.Error("failed to list admins", zap.Error(err))
		return listing.Page[Admin]{}, err
	}

	log.Info("ListAdmins success", zap.Int("count", len(admins)))
	return listing.Single(admins), nil
}

func (s *service) CreateAdmin(ctx context.Context, input NewAdmin) (*Admin, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateAdmin"),
		zap.String("email", input.Email),
	)
	log.Info("CreateAdmin started")

	if err := apiclient.Validation(input.Validate()); err != nil {
		log.Warn("CreateAdmin validation failed", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.CreateAdmin(ctx, input)
	if err != nil {
		log.Error("failed to create admin", zap.Error(err))
		return nil, err
	}

	log.Info("CreateAdmin success", zap.String("admin_id", created.ID))
	return created, nil
}

func (s *service) Config(ctx context.Context) (RemoteConfig, error) {
	cfg, err := s.repo.Config(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to fetch remote config",
			zap.String("layer", "service"),
			zap.Error(err),
		)
		return nil, err
	}
	return cfg, nil
}

func (s *service) ToggleFlag(ctx context.Context, actorEmail, key string) (RemoteConfig, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ToggleFlag"),
		zap.String("key", key),
	)

	if !s.IsSuperAdmin(actorEmail) {
		log.Warn("ToggleFlag rejected: not the super admin")
		return nil, ErrNotSuperAdmin
	}

	cfg, err := s.repo.Config(ctx)
	if err != nil {
		log.Error("failed to fetch remote config", zap.Error(err))
		return nil, err
	}

	next := !cfg.Flag(key)
	if err := s.repo.SetConfig(ctx, key, next); err != nil {
		log.Error("failed to update remote config", zap.Error(err))
		return nil, err
	}
	cfg[key] = next

	log.Info("ToggleFlag success", zap.Bool("value", next))
	return cfg, nil
}

func (s *service) ResetPassword(ctx context.Context, newPassword, confirm string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ResetPassword"),
	)

	if newPassword != confirm {
		return ErrPasswordMismatch
	}
	if len(newPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	if err := s.repo.ResetPassword(ctx, newPassword); err != nil {
		log.Error("failed to reset password", zap.Error(err))
		return err
	}

	log.Info("ResetPassword success")
	return nil
}
