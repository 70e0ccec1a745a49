package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"rebookz-admin/internal/apiclient"
	"rebookz-admin/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	// Login authenticates against the marketplace and returns the new session
	// together with its signed cookie value.
	Login(ctx context.Context, email, password string) (*Session, string, error)
	Logout(ctx context.Context, id string) error
	// Resolve maps a cookie value to a live session.
	Resolve(ctx context.Context, cookie string) (*Session, error)
}

type service struct {
	repo   Repository
	store  Store
	signer *Signer
	ttl    time.Duration
	now    func() time.Time
}

func NewService(repo Repository, store Store, signer *Signer, ttl time.Duration) Service {
	return &service{
		repo:   repo,
		store:  store,
		signer: signer,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *service) Login(ctx context.Context, email, password string) (*Session, string, error) {
	req := LoginRequest{Email: strings.TrimSpace(email), Password: password}

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Login"),
		zap.String("email", req.Email),
	)
	log.Info("Login started")

	if err := apiclient.Validation(req.Validate()); err != nil {
		log.Warn("Login validation failed", zap.Error(err))
		return nil, "", err
	}

	user, token, err := s.repo.Login(ctx, req)
	if err != nil {
		log.Warn("marketplace login failed", zap.Error(err))
		return nil, "", err
	}
	if user.Role != RoleAdmin {
		log.Warn("login rejected: not an admin", zap.String("role", user.Role))
		return nil, "", ErrNotAdmin
	}

	now := s.now()
	sess := &Session{
		ID:        uuid.NewString(),
		Token:     token,
		User:      user,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.store.Save(ctx, sess); err != nil {
		log.Error("failed to persist session", zap.Error(err))
		return nil, "", err
	}

	cookie, err := s.signer.Sign(sess)
	if err != nil {
		log.Error("failed to sign session", zap.Error(err))
		_ = s.store.Delete(ctx, sess.ID)
		return nil, "", err
	}

	log.Info("Login success", zap.String("session_id", sess.ID), zap.String("user_id", user.ID))
	return sess, cookie, nil
}

func (s *service) Logout(ctx context.Context, id string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Logout"),
		zap.String("session_id", id),
	)

	if err := s.store.Delete(ctx, id); err != nil {
		log.Error("failed to delete session", zap.Error(err))
		return err
	}

	log.Info("Logout success")
	return nil
}

func (s *service) Resolve(ctx context.Context, cookie string) (*Session, error) {
	if cookie == "" {
		return nil, ErrSessionNotFound
	}

	claims, err := s.signer.Parse(cookie)
	if err != nil {
		return nil, err
	}

	sess, err := s.store.Get(ctx, claims.SessionID)
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			logger.FromCtx(ctx).Error("session lookup failed",
				zap.String("session_id", claims.SessionID),
				zap.Error(err),
			)
		}
		return nil, err
	}
	return sess, nil
}

// IsUnauthenticated reports whether err means "no usable session" as opposed
// to the store being unavailable.
func IsUnauthenticated(err error) bool {
	return errors.Is(err, ErrSessionNotFound) || errors.Is(err, ErrInvalidCookie)
}
