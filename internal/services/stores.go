package services

import (
	"context"

	"github.com/support-portal/backend/internal/models"
	"github.com/support-portal/backend/internal/repositories"
)

// Store interfaces are defined on the consumer side so the lifecycle logic
// can be exercised against in-memory fakes. The pgx-backed repositories are
// the production implementations.

type TicketStore interface {
	Create(ctx context.Context, t *models.Ticket) error
	GetByID(ctx context.Context, id string) (*models.Ticket, error)
	Update(ctx context.Context, t *models.Ticket) error
	List(ctx context.Context, f repositories.TicketFilter) ([]models.Ticket, error)
	Track(ctx context.Context, id, email string) (*models.Ticket, error)
	DistinctAssignees(ctx context.Context) ([]string, error)
	Metrics(ctx context.Context, visibleToEmail *string) (*repositories.TicketMetrics, error)
}

type ActivityStore interface {
	Append(ctx context.Context, ticketID, kind, body string, authorEmail *string) error
	ListByTicket(ctx context.Context, ticketID string, limit, offset int) ([]models.ActivityEntry, error)
}

// Sender is the outbound email boundary. Implementations must be
// best-effort: an error is a delivery failure to report, never to retry.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}
