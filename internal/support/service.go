package support

import (
	"context"
	"errors"
	"strings"

	"rebookz-admin/internal/apiclient"
	"rebookz-admin/internal/listing"
	"rebookz-admin/internal/logger"

	"go.uber.org/zap"
)

var ErrTicketIDRequired = errors.New("ticket id is required")

type Service interface {
	List(ctx context.Context, q listing.Query) (listing.Page[Ticket], error)
	Respond(ctx context.Context, id string, r Response) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, q listing.Query) (listing.Page[Ticket], error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListTickets"),
	)

	all, err := s.repo.List(ctx)
	if err != nil {
		log.Error("failed to list tickets", zap.Error(err))
		return listing.Page[Ticket]{}, err
	}

	items := listing.Match(all, q, field)
	log.Info("ListTickets success", zap.Int("count", len(items)))
	return listing.Single(items), nil
}

func (s *service) Respond(ctx context.Context, id string, r Response) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "RespondTicket"),
		zap.String("ticket_id", id),
		zap.String("status", r.Status),
	)

	if id == "" {
		return ErrTicketIDRequired
	}
	r.AdminResponse = strings.TrimSpace(r.AdminResponse)
	if err := apiclient.Validation(r.Validate()); err != nil {
		log.Warn("RespondTicket validation failed", zap.Error(err))
		return err
	}

	if _, err := s.repo.Update(ctx, id, r); err != nil {
		log.Error("failed to update ticket", zap.Error(err))
		return err
	}

	log.Info("RespondTicket success")
	return nil
}
