package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/identity"
)

// RegisterInput contains the input for account registration
type RegisterInput struct {
	Email     string
	Username  string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Role      identity.Role
	Type      identity.UserType
}

// RegisterResult contains the newly created account
type RegisterResult struct {
	User UserInfo
	// VerificationSent is false when the verification mail could not be queued
	VerificationSent bool
}

// LoginInput contains the input for user login.
// Login accepts either the email address or the username.
type LoginInput struct {
	Login    string
	Password string
}

// TokenResult contains an issued token pair
type TokenResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	TokenResult
	User UserInfo
}

// UserInfo is the public view of an account
type UserInfo struct {
	ID                uuid.UUID
	Email             string
	Username          string
	FirstName         string
	LastName          string
	Phone             string
	Role              identity.Role
	Type              identity.UserType
	IsEmailVerified   bool
	IsProfileComplete bool
	LastLoginAt       *time.Time
	CreatedAt         time.Time
}

// ToUserInfo converts a user to its public view
func ToUserInfo(u *identity.User) UserInfo {
	return UserInfo{
		ID:                u.ID,
		Email:             u.Email,
		Username:          u.Username,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Phone:             u.Phone,
		Role:              u.Role,
		Type:              u.Type,
		IsEmailVerified:   u.IsEmailVerified,
		IsProfileComplete: u.IsProfileComplete,
		LastLoginAt:       u.LastLoginAt,
		CreatedAt:         u.CreatedAt,
	}
}

// RefreshTokenInput contains the input for token refresh
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput contains the input for user logout
type LogoutInput struct {
	Actor identity.Actor
	// AccessTokenJTI and AccessTokenTTL come from the validated access token
	AccessTokenJTI string
	AccessTokenTTL time.Duration
	// RefreshToken is optional; when present it is revoked too
	RefreshToken string
}

// ChangePasswordInput contains the input for password change
type ChangePasswordInput struct {
	Actor       identity.Actor
	OldPassword string
	NewPassword string
}

// ResetPasswordInput contains a password reset token and the chosen password
type ResetPasswordInput struct {
	Token           string
	Password        string
	ConfirmPassword string
}
