package identity

import (
	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/shared"
)

// Role is the marketplace role attached to every account
type Role string

const (
	RoleClient         Role = "CLIENT"
	RoleCoder          Role = "CODER"
	RoleCoworker       Role = "COWORKER"
	RoleSuccessManager Role = "SUCCESS-MANAGER"
	RoleSuperAdmin     Role = "SUPER-ADMIN"
	RoleSubAdmin       Role = "SUB-ADMIN"
)

// IsValid reports whether r is a known role
func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleCoder, RoleCoworker, RoleSuccessManager, RoleSuperAdmin, RoleSubAdmin:
		return true
	}
	return false
}

// IsAdmin reports whether r carries administrative rights
func (r Role) IsAdmin() bool {
	return r == RoleSuperAdmin || r == RoleSubAdmin
}

// IsSelfRegistrable reports whether accounts with this role may sign up on their own
func (r Role) IsSelfRegistrable() bool {
	return r == RoleClient || r == RoleCoder
}

// String returns the role value
func (r Role) String() string {
	return string(r)
}

// Actor identifies the caller of an operation.
// It is built from the access token and passed into every service call.
type Actor struct {
	UserID        uuid.UUID
	Role          Role
	EmailVerified bool
}

// NewActor creates an actor
func NewActor(userID uuid.UUID, role Role, emailVerified bool) Actor {
	return Actor{UserID: userID, Role: role, EmailVerified: emailVerified}
}

// IsClient reports whether the actor is a client
func (a Actor) IsClient() bool {
	return a.Role == RoleClient
}

// IsCoder reports whether the actor is a coder
func (a Actor) IsCoder() bool {
	return a.Role == RoleCoder
}

// Require fails with FORBIDDEN unless the actor has one of roles
func (a Actor) Require(roles ...Role) error {
	if a.UserID == uuid.Nil {
		return shared.ErrUnauthorized
	}
	for _, r := range roles {
		if a.Role == r {
			return nil
		}
	}
	return shared.NewDomainError("FORBIDDEN", "You do not have permission to perform this action")
}

// RequireVerified is Require plus a verified email address
func (a Actor) RequireVerified(roles ...Role) error {
	if a.UserID == uuid.Nil {
		return shared.ErrUnauthorized
	}
	if !a.EmailVerified {
		return shared.NewDomainError("EMAIL_NOT_VERIFIED", "Please verify your email address first")
	}
	if len(roles) == 0 {
		return nil
	}
	return a.Require(roles...)
}
