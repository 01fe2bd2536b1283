package events

import "context"

// Event types
const (
	EventTicketCreated = "ticket_created"
	EventTicketUpdated = "ticket_updated"
	EventTicketClosed  = "ticket_closed"
)

// TicketStream is the redis channel the staff dashboard hub subscribes to.
const TicketStream = "events:ticket"

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
