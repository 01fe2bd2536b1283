package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateTicketRequest struct {
	CustomerName  string  `json:"customer_name" validate:"required"`
	Email         string  `json:"email" validate:"required,email"`
	Description   string  `json:"description" validate:"required"`
	Category      string  `json:"category" validate:"required"`
	Priority      string  `json:"priority" validate:"omitempty,oneof=Low Medium High"`
	AttachmentURL *string `json:"attachment_url,omitempty" validate:"omitempty,url"`
}

// TrackTicketRequest is deliberately tag-free: the tracking service owns the
// exact user-facing validation wording.
type TrackTicketRequest struct {
	TicketID string `json:"ticket_id"`
	Email    string `json:"email"`
}

type EditTicketRequest struct {
	Status            string  `json:"status" validate:"required"`
	Priority          string  `json:"priority" validate:"required"`
	Assignee          *string `json:"assignee,omitempty"`
	Note              string  `json:"note,omitempty"`
	ResolutionSummary string  `json:"resolution_summary,omitempty"`
}

type ReplyRequest struct {
	Body string `json:"body"`
}
