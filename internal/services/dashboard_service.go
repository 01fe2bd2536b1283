package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/support-portal/backend/internal/auth"
	"github.com/support-portal/backend/internal/models"
	"github.com/support-portal/backend/internal/rbac"
	"github.com/support-portal/backend/internal/repositories"
)

// DashboardService serves the staff ticket listing and the metric tiles.
// Visibility follows the access gate: without the view-all capability an
// actor sees only unassigned tickets and their own.
type DashboardService struct {
	tickets TicketStore
	log     *zap.Logger
}

func NewDashboardService(tickets TicketStore, log *zap.Logger) *DashboardService {
	return &DashboardService{tickets: tickets, log: log}
}

func (s *DashboardService) visibleTo(actor auth.Identity) *string {
	if actor.Can(rbac.CapViewAllTickets) {
		return nil
	}
	email := actor.Email
	return &email
}

func (s *DashboardService) ListTickets(ctx context.Context, actor auth.Identity, status, priority *string, limit, offset int) ([]models.Ticket, error) {
	f := repositories.TicketFilter{
		Status:         status,
		Priority:       priority,
		VisibleToEmail: s.visibleTo(actor),
		Limit:          limit,
		Offset:         offset,
	}
	return s.tickets.List(ctx, f)
}

func (s *DashboardService) Metrics(ctx context.Context, actor auth.Identity) (*repositories.TicketMetrics, error) {
	return s.tickets.Metrics(ctx, s.visibleTo(actor))
}
