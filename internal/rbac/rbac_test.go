package rbac

import "testing"

func TestHasCapability(t *testing.T) {
	tests := []struct {
		role       string
		capability string
		expected   bool
	}{
		{RoleAdmin, CapStaff, true},
		{RoleAdmin, CapEditTicket, true},
		{RoleAdmin, CapReply, true},
		{RoleAdmin, CapReassign, true},
		{RoleAdmin, CapViewAllTickets, true},

		{RoleAgent, CapStaff, true},
		{RoleAgent, CapEditTicket, true},
		{RoleAgent, CapReply, true},
		{RoleAgent, CapReassign, false},
		{RoleAgent, CapViewAllTickets, false},

		{RoleAnonymous, CapStaff, false},
		{RoleAnonymous, CapEditTicket, false},

		{"nonexistent", CapStaff, false},
		{RoleAdmin, "nonexistent", false},
	}

	for _, tt := range tests {
		t.Run(tt.role+"/"+tt.capability, func(t *testing.T) {
			if got := HasCapability(tt.role, tt.capability); got != tt.expected {
				t.Errorf("HasCapability(%q, %q) = %v, want %v", tt.role, tt.capability, got, tt.expected)
			}
		})
	}
}

func TestIsStaff(t *testing.T) {
	if !IsStaff(RoleAgent) || !IsStaff(RoleAdmin) {
		t.Error("agents and admins are staff")
	}
	if IsStaff(RoleAnonymous) || IsStaff("") {
		t.Error("anonymous is not staff")
	}
}

func TestAllRolesHaveCapabilityEntry(t *testing.T) {
	for _, role := range []string{RoleAnonymous, RoleAgent, RoleAdmin} {
		if _, ok := RoleCapabilities[role]; !ok {
			t.Errorf("role %q missing from RoleCapabilities map", role)
		}
	}
}
