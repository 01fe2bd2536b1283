package rbac

// Role constants
const (
	RoleAnonymous = "anonymous"
	RoleAgent     = "agent"
	RoleAdmin     = "admin"
)

// Capability constants
const (
	CapStaff          = "staff"            // see the staff dashboard at all
	CapEditTicket     = "edit_ticket"      // change status/priority, add notes
	CapReply          = "reply"            // email the customer from a ticket
	CapReassign       = "reassign"         // set assignee to arbitrary staff
	CapViewAllTickets = "view_all_tickets" // unfiltered ticket list
)

// RoleCapabilities defines what each role can do. Call sites check
// capabilities, never role labels, so adding a role means touching only
// this table.
var RoleCapabilities = map[string][]string{
	RoleAnonymous: {},
	RoleAgent: {
		CapStaff, CapEditTicket, CapReply,
		// Agents CANNOT: CapReassign, CapViewAllTickets
	},
	RoleAdmin: {
		CapStaff, CapEditTicket, CapReply, CapReassign, CapViewAllTickets,
	},
}

// HasCapability checks if a role has a specific capability. Unknown roles
// have none.
func HasCapability(role, capability string) bool {
	caps, ok := RoleCapabilities[role]
	if !ok {
		return false
	}
	for _, c := range caps {
		if c == capability {
			return true
		}
	}
	return false
}

// IsStaff reports whether the role belongs to an authenticated staff member.
func IsStaff(role string) bool {
	return HasCapability(role, CapStaff)
}
