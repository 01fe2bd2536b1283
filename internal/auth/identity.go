package auth

import (
	"github.com/google/uuid"

	"github.com/support-portal/backend/internal/rbac"
)

// Identity is the acting user, passed explicitly into every service call
// instead of living in ambient session state. The zero value is anonymous.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// Anonymous is the identity of an unauthenticated caller.
var Anonymous = Identity{Role: rbac.RoleAnonymous}

func (i Identity) Can(capability string) bool {
	return rbac.HasCapability(i.Role, capability)
}
