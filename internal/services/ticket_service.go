package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/support-portal/backend/internal/apperr"
	"github.com/support-portal/backend/internal/auth"
	"github.com/support-portal/backend/internal/events"
	"github.com/support-portal/backend/internal/models"
	"github.com/support-portal/backend/internal/rbac"
)

// TicketService is the lifecycle controller: it validates a proposed edit,
// applies it, and runs the side effects the transition requires, in a fixed
// order: persist, then activity log, then email. Email is last and
// best-effort, so a delivery failure never rolls back state or log entries.
type TicketService struct {
	tickets   TicketStore
	activity  ActivityStore
	mailer    Sender
	publisher events.Publisher
	log       *zap.Logger
	now       func() time.Time
}

func NewTicketService(
	tickets TicketStore,
	activity ActivityStore,
	mailer Sender,
	publisher events.Publisher,
	log *zap.Logger,
) *TicketService {
	return &TicketService{
		tickets:   tickets,
		activity:  activity,
		mailer:    mailer,
		publisher: publisher,
		log:       log,
		now:       time.Now,
	}
}

type CreateTicketInput struct {
	CustomerName  string
	Email         string
	Description   string
	AttachmentURL *string
	Category      string
	Priority      string
}

type CreateTicketResult struct {
	Ticket    *models.Ticket
	EmailSent bool
}

// CreateTicket files a new customer ticket and sends the acknowledgment
// email, best-effort.
func (s *TicketService) CreateTicket(ctx context.Context, in CreateTicketInput) (*CreateTicketResult, error) {
	if !models.IsValidCategory(in.Category) {
		return nil, apperr.NewValidationError("unknown category %q", in.Category)
	}
	if in.Priority == "" {
		in.Priority = models.PriorityMedium
	}
	if !models.IsValidPriority(in.Priority) {
		return nil, apperr.NewValidationError("unknown priority %q", in.Priority)
	}

	t := &models.Ticket{
		ID:            models.NewTicketID(),
		CustomerName:  in.CustomerName,
		Email:         in.Email,
		Description:   in.Description,
		AttachmentURL: in.AttachmentURL,
		Category:      in.Category,
		Priority:      in.Priority,
		Status:        models.StatusNew,
	}
	if err := s.tickets.Create(ctx, t); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventTicketCreated, t, nil)

	emailSent := true
	if err := s.mailer.Send(ctx, t.Email, fmt.Sprintf("Ticket #%s", t.ID), "Received."); err != nil {
		emailSent = false
	}

	return &CreateTicketResult{Ticket: t, EmailSent: emailSent}, nil
}

// EditRequest is a staff member's proposed edit. Assignee is the submitted
// dropdown value; nil or "Unassigned" both mean unassigned.
type EditRequest struct {
	Status            string
	Priority          string
	Assignee          *string
	Note              string
	ResolutionSummary string
}

type EditResult struct {
	Ticket    *models.Ticket
	Changes   []string
	EmailSent bool // meaningful only for the closing transition
	Closed    bool
}

// ProposeEdit validates and applies one staff edit.
//
// A closing transition (current status not Closed, proposed status Closed)
// requires a resolution summary, stamps the resolution fields, writes a
// system log entry and emails the customer. Everything else is a standard
// edit: the row is persisted unconditionally, changed fields produce one
// system entry, and a supplied note produces one separate user note entry.
// Moving an already-Closed ticket back out of Closed is a standard edit that
// clears the resolution fields, so Closed and resolution-set stay
// equivalent.
func (s *TicketService) ProposeEdit(ctx context.Context, actor auth.Identity, ticketID string, req EditRequest) (*EditResult, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, apperr.ErrNotFound
	}

	if !models.IsValidStatus(req.Status) {
		return nil, apperr.NewValidationError("unknown status %q", req.Status)
	}
	if !models.IsValidPriority(req.Priority) {
		return nil, apperr.NewValidationError("unknown priority %q", req.Priority)
	}

	// Only an actor with the reassign capability may change the assignee;
	// anyone else's submitted value is ignored and the stored one reused.
	assignee := ticket.AssignedTo
	if actor.Can(rbac.CapReassign) {
		assignee = normalizeAssignee(req.Assignee)
	}

	if ticket.IsClosing(req.Status) {
		return s.closeTicket(ctx, actor, ticket, req, assignee)
	}
	return s.standardEdit(ctx, actor, ticket, req, assignee)
}

func (s *TicketService) closeTicket(ctx context.Context, actor auth.Identity, ticket *models.Ticket, req EditRequest, assignee *string) (*EditResult, error) {
	resolution := strings.TrimSpace(req.ResolutionSummary)
	if resolution == "" {
		return nil, apperr.NewValidationError("resolution required")
	}

	now := s.now()
	ticket.Status = models.StatusClosed
	ticket.Priority = req.Priority
	ticket.AssignedTo = assignee
	ticket.ResolvedAt = &now
	ticket.ResolutionSummary = &resolution

	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}

	s.appendSystem(ctx, ticket.ID, "Ticket Closed. Resolution: "+resolution)
	s.publish(ctx, events.EventTicketClosed, ticket, nil)

	subject := fmt.Sprintf("Ticket #%s Resolved", ticket.ID)
	body := fmt.Sprintf("Hi %s,\n\nYour ticket is resolved:\n%s\n\nBest,\nSupport Team", ticket.CustomerName, resolution)

	emailSent := true
	if err := s.mailer.Send(ctx, ticket.Email, subject, body); err != nil {
		emailSent = false
	}

	return &EditResult{Ticket: ticket, Closed: true, EmailSent: emailSent}, nil
}

func (s *TicketService) standardEdit(ctx context.Context, actor auth.Identity, ticket *models.Ticket, req EditRequest, assignee *string) (*EditResult, error) {
	changes := ticket.DescribeChanges(req.Status, req.Priority, assignee)

	if ticket.Status == models.StatusClosed && req.Status != models.StatusClosed {
		// Reopening: the resolution fields go with the Closed status.
		ticket.ResolvedAt = nil
		ticket.ResolutionSummary = nil
	}
	ticket.Status = req.Status
	ticket.Priority = req.Priority
	ticket.AssignedTo = assignee

	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}

	if len(changes) > 0 {
		s.appendSystem(ctx, ticket.ID, "Updated: "+strings.Join(changes, ", "))
	}

	if note := strings.TrimSpace(req.Note); note != "" {
		authorEmail := actor.Email
		if err := s.activity.Append(ctx, ticket.ID, models.ActivityUserNote, note, &authorEmail); err != nil {
			s.log.Warn("failed to append user note", zap.String("ticket_id", ticket.ID), zap.Error(err))
		}
	}

	s.publish(ctx, events.EventTicketUpdated, ticket, changes)

	return &EditResult{Ticket: ticket, Changes: changes, EmailSent: true}, nil
}

// SendReply emails the customer from a ticket. The outbound body is logged
// as an email_out entry only after delivery succeeds; a failed send leaves
// no trace in the activity log.
func (s *TicketService) SendReply(ctx context.Context, actor auth.Identity, ticketID, body string) error {
	body = strings.TrimSpace(body)
	if body == "" {
		return apperr.NewValidationError("reply body required")
	}

	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return err
	}
	if ticket == nil {
		return apperr.ErrNotFound
	}

	subject := fmt.Sprintf("Re: Ticket #%s", ticket.ID)
	if err := s.mailer.Send(ctx, ticket.Email, subject, body); err != nil {
		return err
	}

	authorEmail := actor.Email
	if err := s.activity.Append(ctx, ticket.ID, models.ActivityEmailOut, body, &authorEmail); err != nil {
		s.log.Warn("failed to log outbound email", zap.String("ticket_id", ticket.ID), zap.Error(err))
	}
	return nil
}

func (s *TicketService) GetTicket(ctx context.Context, ticketID string) (*models.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, apperr.ErrNotFound
	}
	return ticket, nil
}

func (s *TicketService) Activity(ctx context.Context, ticketID string, limit, offset int) ([]models.ActivityEntry, error) {
	return s.activity.ListByTicket(ctx, ticketID, limit, offset)
}

// AssigneeOptions is the admin reassignment dropdown: the unassigned
// sentinel, the actor, and every assignee ever recorded, deduplicated and
// sorted.
func (s *TicketService) AssigneeOptions(ctx context.Context, actor auth.Identity) ([]string, error) {
	recorded, err := s.tickets.DistinctAssignees(ctx)
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	options := []string{}
	for _, a := range append([]string{models.UnassignedLabel, actor.Email}, recorded...) {
		if a == "" {
			continue
		}
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		options = append(options, a)
	}
	sort.Strings(options)
	return options, nil
}

func (s *TicketService) appendSystem(ctx context.Context, ticketID, body string) {
	if err := s.activity.Append(ctx, ticketID, models.ActivitySystem, body, nil); err != nil {
		s.log.Warn("failed to append system entry", zap.String("ticket_id", ticketID), zap.Error(err))
	}
}

func (s *TicketService) publish(ctx context.Context, eventType string, t *models.Ticket, changes []string) {
	if s.publisher == nil {
		return
	}
	payload := map[string]any{
		"ticket_id": t.ID,
		"status":    t.Status,
		"priority":  t.Priority,
	}
	if len(changes) > 0 {
		payload["changes"] = changes
	}
	if err := s.publisher.Publish(ctx, events.TicketStream, events.Event{Type: eventType, Payload: payload}); err != nil {
		s.log.Warn("failed to publish ticket event", zap.String("type", eventType), zap.Error(err))
	}
}

func normalizeAssignee(a *string) *string {
	if a == nil {
		return nil
	}
	v := strings.TrimSpace(*a)
	if v == "" || v == models.UnassignedLabel {
		return nil
	}
	return &v
}
