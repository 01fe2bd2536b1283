package models

import (
	"time"

	"github.com/google/uuid"
)

// Activity entry kinds. Stored as an explicit column instead of being
// inferred from text prefixes, so renderers never string-match bodies.
const (
	ActivitySystem   = "system"
	ActivityEmailOut = "email_out"
	ActivityUserNote = "user_note"
)

// ActivityEntry is one immutable line in a ticket's history. Entries are
// append-only; no update or delete path exists. AuthorEmail is nil for
// system-generated entries.
type ActivityEntry struct {
	ID          uuid.UUID `json:"id"`
	TicketID    string    `json:"ticket_id"`
	Kind        string    `json:"kind"`
	Body        string    `json:"body"`
	AuthorEmail *string   `json:"author_email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
