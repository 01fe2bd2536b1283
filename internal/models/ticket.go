package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Ticket statuses
const (
	StatusNew      = "New"
	StatusOpen     = "Open"
	StatusDeferred = "Deferred"
	StatusClosed   = "Closed"
)

// Ticket priorities
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

var TicketStatuses = []string{StatusNew, StatusOpen, StatusDeferred, StatusClosed}

var TicketPriorities = []string{PriorityLow, PriorityMedium, PriorityHigh}

var TicketCategories = []string{
	"Beacon CRM",
	"Dashboards",
	"Data",
	"General Request",
	"New Feature",
	"Other",
}

// UnassignedLabel is how a NULL assignee is rendered to staff and in the
// activity log.
const UnassignedLabel = "Unassigned"

func IsValidStatus(s string) bool {
	for _, v := range TicketStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func IsValidPriority(p string) bool {
	for _, v := range TicketPriorities {
		if v == p {
			return true
		}
	}
	return false
}

func IsValidCategory(c string) bool {
	for _, v := range TicketCategories {
		if v == c {
			return true
		}
	}
	return false
}

// NewTicketID generates the short caller-visible ticket ID: the first eight
// characters of a UUID, uppercased.
func NewTicketID() string {
	return strings.ToUpper(uuid.NewString()[:8])
}

type Ticket struct {
	ID                string     `json:"id"`
	CustomerName      string     `json:"customer_name"`
	Email             string     `json:"email"`
	Description       string     `json:"description"`
	AttachmentURL     *string    `json:"attachment_url,omitempty"`
	Category          string     `json:"category"`
	Priority          string     `json:"priority"`
	Status            string     `json:"status"`
	AssignedTo        *string    `json:"assigned_to,omitempty"`
	ResolvedAt        *time.Time `json:"resolved_at,omitempty"`
	ResolutionSummary *string    `json:"resolution_summary,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// AssigneeLabel renders the nullable assignee for display and change logs.
func (t *Ticket) AssigneeLabel() string {
	return AssigneeLabel(t.AssignedTo)
}

func AssigneeLabel(assignee *string) string {
	if assignee == nil || *assignee == "" {
		return UnassignedLabel
	}
	return *assignee
}

// IsClosing reports whether moving this ticket to newStatus is the closing
// transition: the one edit that requires a resolution summary and triggers
// the resolution email. An edit on an already-Closed ticket is a standard
// edit, whatever its status field says.
func (t *Ticket) IsClosing(newStatus string) bool {
	return newStatus == StatusClosed && t.Status != StatusClosed
}

// DescribeChanges compares the proposed status/priority/assignee against the
// stored values and returns one human-readable line per changed field, in
// that fixed order.
func (t *Ticket) DescribeChanges(newStatus, newPriority string, newAssignee *string) []string {
	var changes []string
	if newStatus != t.Status {
		changes = append(changes, "Status: "+t.Status+" → "+newStatus)
	}
	if newPriority != t.Priority {
		changes = append(changes, "Priority: "+t.Priority+" → "+newPriority)
	}
	if AssigneeLabel(newAssignee) != t.AssigneeLabel() {
		changes = append(changes, "Assignee: "+t.AssigneeLabel()+" → "+AssigneeLabel(newAssignee))
	}
	return changes
}
