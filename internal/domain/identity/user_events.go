package identity

import (
	"github.com/hirecoder/backend/internal/domain/shared"
)

// AggregateTypeUser is the aggregate type for User events
const AggregateTypeUser = "User"

const (
	EventTypeUserRegistered    = "UserRegistered"
	EventTypeUserEmailVerified = "UserEmailVerified"
)

// UserRegisteredEvent is published when an account is created
type UserRegisteredEvent struct {
	shared.BaseDomainEvent
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// NewUserRegisteredEvent creates a new UserRegisteredEvent
func NewUserRegisteredEvent(user *User) *UserRegisteredEvent {
	return &UserRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserRegistered, AggregateTypeUser, user.ID, user.ID),
		Email:           user.Email,
		Username:        user.Username,
		Role:            user.Role,
	}
}

// UserEmailVerifiedEvent is published when an email address is confirmed
type UserEmailVerifiedEvent struct {
	shared.BaseDomainEvent
	Email string `json:"email"`
}

// NewUserEmailVerifiedEvent creates a new UserEmailVerifiedEvent
func NewUserEmailVerifiedEvent(user *User) *UserEmailVerifiedEvent {
	return &UserEmailVerifiedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserEmailVerified, AggregateTypeUser, user.ID, user.ID),
		Email:           user.Email,
	}
}
