package models

import (
	"reflect"
	"testing"
)

func strptr(s string) *string { return &s }

func TestDescribeChanges(t *testing.T) {
	base := Ticket{
		Status:     StatusNew,
		Priority:   PriorityMedium,
		AssignedTo: nil,
	}

	tests := []struct {
		name        string
		ticket      Ticket
		newStatus   string
		newPriority string
		newAssignee *string
		expected    []string
	}{
		{
			name:        "no changes",
			ticket:      base,
			newStatus:   StatusNew,
			newPriority: PriorityMedium,
			newAssignee: nil,
			expected:    nil,
		},
		{
			name:        "status only",
			ticket:      base,
			newStatus:   StatusOpen,
			newPriority: PriorityMedium,
			newAssignee: nil,
			expected:    []string{"Status: New → Open"},
		},
		{
			name:        "assignee from unassigned",
			ticket:      base,
			newStatus:   StatusNew,
			newPriority: PriorityMedium,
			newAssignee: strptr("agent@example.com"),
			expected:    []string{"Assignee: Unassigned → agent@example.com"},
		},
		{
			name: "assignee cleared",
			ticket: Ticket{
				Status:     StatusOpen,
				Priority:   PriorityMedium,
				AssignedTo: strptr("agent@example.com"),
			},
			newStatus:   StatusOpen,
			newPriority: PriorityMedium,
			newAssignee: nil,
			expected:    []string{"Assignee: agent@example.com → Unassigned"},
		},
		{
			name:        "all three in fixed order",
			ticket:      base,
			newStatus:   StatusDeferred,
			newPriority: PriorityHigh,
			newAssignee: strptr("agent@example.com"),
			expected: []string{
				"Status: New → Deferred",
				"Priority: Medium → High",
				"Assignee: Unassigned → agent@example.com",
			},
		},
		{
			name: "empty string assignee equals nil",
			ticket: Ticket{
				Status:     StatusNew,
				Priority:   PriorityMedium,
				AssignedTo: strptr(""),
			},
			newStatus:   StatusNew,
			newPriority: PriorityMedium,
			newAssignee: nil,
			expected:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.ticket.DescribeChanges(tt.newStatus, tt.newPriority, tt.newAssignee)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("DescribeChanges() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsClosing(t *testing.T) {
	tests := []struct {
		from     string
		to       string
		expected bool
	}{
		{StatusNew, StatusClosed, true},
		{StatusOpen, StatusClosed, true},
		{StatusDeferred, StatusClosed, true},
		{StatusClosed, StatusClosed, false},
		{StatusNew, StatusOpen, false},
		{StatusClosed, StatusOpen, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			tk := Ticket{Status: tt.from}
			if got := tk.IsClosing(tt.to); got != tt.expected {
				t.Errorf("IsClosing(%q) from %q = %v, want %v", tt.to, tt.from, got, tt.expected)
			}
		})
	}
}

func TestNewTicketID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewTicketID()
		if len(id) != 8 {
			t.Fatalf("NewTicketID() = %q, want 8 characters", id)
		}
		for _, r := range id {
			if (r < '0' || r > '9') && (r < 'A' || r > 'F') && r != '-' {
				t.Fatalf("NewTicketID() = %q, unexpected character %q", id, r)
			}
		}
		seen[id] = true
	}
	if len(seen) < 90 {
		t.Errorf("NewTicketID() produced %d distinct IDs out of 100", len(seen))
	}
}

func TestValidators(t *testing.T) {
	if !IsValidStatus(StatusDeferred) || IsValidStatus("Pending") {
		t.Error("IsValidStatus mismatch")
	}
	if !IsValidPriority(PriorityHigh) || IsValidPriority("Urgent") {
		t.Error("IsValidPriority mismatch")
	}
	if !IsValidCategory("Beacon CRM") || IsValidCategory("Billing") {
		t.Error("IsValidCategory mismatch")
	}
}
