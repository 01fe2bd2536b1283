package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/support-portal/backend/internal/apperr"
	"github.com/support-portal/backend/internal/models"
)

// TrackingService backs the public, unauthenticated status lookup. The
// ID+email match is enforced in a single store predicate; a miss on either
// field produces the identical not-found answer.
type TrackingService struct {
	tickets TicketStore
	log     *zap.Logger
}

func NewTrackingService(tickets TicketStore, log *zap.Logger) *TrackingService {
	return &TrackingService{tickets: tickets, log: log}
}

type TrackResult struct {
	TicketID          string  `json:"ticket_id"`
	Status            string  `json:"status"`
	ResolutionSummary *string `json:"resolution_summary,omitempty"`
}

func (s *TrackingService) Track(ctx context.Context, ticketID, email string) (*TrackResult, error) {
	if ticketID == "" || email == "" {
		return nil, apperr.NewValidationError("Please enter both Ticket ID and Email.")
	}
	// The lookup accepts numeric IDs only, stricter than the generated
	// 8-char alphanumeric format. Inherited from the original tracking
	// path; kept as-is rather than silently reconciled.
	if !isNumeric(ticketID) {
		return nil, apperr.NewValidationError("Ticket ID must be a number.")
	}

	ticket, err := s.tickets.Track(ctx, ticketID, email)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, apperr.ErrTicketNotFound
	}

	res := &TrackResult{TicketID: ticket.ID, Status: ticket.Status}
	if ticket.Status == models.StatusClosed {
		res.ResolutionSummary = ticket.ResolutionSummary
	}
	return res, nil
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
