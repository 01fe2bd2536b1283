package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/support-portal/backend/internal/events"
	"github.com/support-portal/backend/internal/models"
	"github.com/support-portal/backend/internal/repositories"
)

// In-memory store fakes. They record side effects in arrival order so tests
// can assert on both state and sequencing.

type fakeTicketStore struct {
	mu      sync.Mutex
	tickets map[string]models.Ticket
	failOn  string // method name that should return an error
}

func newFakeTicketStore(seed ...models.Ticket) *fakeTicketStore {
	s := &fakeTicketStore{tickets: map[string]models.Ticket{}}
	for _, t := range seed {
		s.tickets[t.ID] = t
	}
	return s
}

var errStoreFailure = errors.New("store failure")

func (s *fakeTicketStore) Create(ctx context.Context, t *models.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failOn == "Create" {
		return errStoreFailure
	}
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	s.tickets[t.ID] = *t
	return nil
}

func (s *fakeTicketStore) GetByID(ctx context.Context, id string) (*models.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failOn == "GetByID" {
		return nil, errStoreFailure
	}
	t, ok := s.tickets[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (s *fakeTicketStore) Update(ctx context.Context, t *models.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failOn == "Update" {
		return errStoreFailure
	}
	t.UpdatedAt = time.Now()
	s.tickets[t.ID] = *t
	return nil
}

func (s *fakeTicketStore) List(ctx context.Context, f repositories.TicketFilter) ([]models.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Ticket
	for _, t := range s.tickets {
		if f.Status != nil && t.Status != *f.Status {
			continue
		}
		if f.Priority != nil && t.Priority != *f.Priority {
			continue
		}
		if f.VisibleToEmail != nil && t.AssignedTo != nil && *t.AssignedTo != *f.VisibleToEmail {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *fakeTicketStore) Track(ctx context.Context, id, email string) (*models.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tickets[id]
	if !ok || t.Email != email {
		return nil, nil
	}
	return &t, nil
}

func (s *fakeTicketStore) DistinctAssignees(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := map[string]struct{}{}
	var out []string
	for _, t := range s.tickets {
		if t.AssignedTo == nil {
			continue
		}
		if _, ok := seen[*t.AssignedTo]; ok {
			continue
		}
		seen[*t.AssignedTo] = struct{}{}
		out = append(out, *t.AssignedTo)
	}
	return out, nil
}

func (s *fakeTicketStore) Metrics(ctx context.Context, visibleToEmail *string) (*repositories.TicketMetrics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var m repositories.TicketMetrics
	for _, t := range s.tickets {
		if visibleToEmail != nil && t.AssignedTo != nil && *t.AssignedTo != *visibleToEmail {
			continue
		}
		m.Total++
		if t.Status == models.StatusNew {
			m.New++
		}
		if t.Priority == models.PriorityHigh {
			m.HighPriority++
		}
	}
	return &m, nil
}

type fakeActivityStore struct {
	mu      sync.Mutex
	entries []models.ActivityEntry
	fail    bool
}

func (s *fakeActivityStore) Append(ctx context.Context, ticketID, kind, body string, authorEmail *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errStoreFailure
	}
	s.entries = append(s.entries, models.ActivityEntry{
		ID:          uuid.New(),
		TicketID:    ticketID,
		Kind:        kind,
		Body:        body,
		AuthorEmail: authorEmail,
		CreatedAt:   time.Now(),
	})
	return nil
}

func (s *fakeActivityStore) ListByTicket(ctx context.Context, ticketID string, limit, offset int) ([]models.ActivityEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.ActivityEntry
	for _, e := range s.entries {
		if e.TicketID == ticketID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *fakeActivityStore) forTicket(ticketID string) []models.ActivityEntry {
	out, _ := s.ListByTicket(context.Background(), ticketID, 0, 0)
	return out
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeSender struct {
	mu   sync.Mutex
	sent []sentMail
	fail bool
}

func (s *fakeSender) Send(ctx context.Context, to, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("smtp unreachable")
	}
	s.sent = append(s.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *fakePublisher) Publish(ctx context.Context, stream string, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}
