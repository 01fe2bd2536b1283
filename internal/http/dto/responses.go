package dto

type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type SuccessResponse struct {
	OK   bool `json:"ok"`
	Data any  `json:"data,omitempty"`
}

type AuthResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// TicketWriteResponse reports a create/edit outcome together with the
// best-effort email delivery indicator. EmailSent false is a warning, not a
// failure: the state change has already been committed.
type TicketWriteResponse struct {
	OK        bool     `json:"ok"`
	Data      any      `json:"data,omitempty"`
	Changes   []string `json:"changes,omitempty"`
	EmailSent bool     `json:"email_sent"`
}
