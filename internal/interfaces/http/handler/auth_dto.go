package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/application/identity"
	domain "github.com/hirecoder/backend/internal/domain/identity"
)

// RegisterRequest represents the request body for account registration
type RegisterRequest struct {
	Email     string          `json:"email" binding:"required,email,max=255"`
	Username  string          `json:"username" binding:"required,max=150"`
	Password  string          `json:"password" binding:"required,min=8,max=128"`
	FirstName string          `json:"first_name" binding:"max=150"`
	LastName  string          `json:"last_name" binding:"max=150"`
	Phone     string          `json:"phone" binding:"omitempty,max=17"`
	Role      domain.Role     `json:"role" binding:"required,oneof=CLIENT CODER"`
	UserType  domain.UserType `json:"user_type" binding:"omitempty,oneof=INDIVIDUAL AGENCY"`
}

// LoginRequest accepts either the email address or the username as login
type LoginRequest struct {
	Login    string `json:"login" binding:"required,max=255"`
	Password string `json:"password" binding:"required,max=128"`
}

// RefreshTokenRequest represents the request body for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest optionally names the refresh token to revoke with the session
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// VerifyEmailRequest carries the token from the verification mail
type VerifyEmailRequest struct {
	Token string `json:"token" binding:"required"`
}

// ResendVerificationRequest asks for a new verification mail
type ResendVerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// PasswordResetRequest asks for a password reset link
type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ConfirmPasswordResetRequest sets a new password with a reset token
type ConfirmPasswordResetRequest struct {
	Token           string `json:"token" binding:"required"`
	Password        string `json:"password" binding:"required,min=8,max=128"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// ChangePasswordRequest represents the request body for password change
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=128"`
}

// TokenResponse represents the token data in auth responses
type TokenResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// UserResponse is the public view of an account
type UserResponse struct {
	ID                uuid.UUID       `json:"id"`
	Email             string          `json:"email"`
	Username          string          `json:"username"`
	FirstName         string          `json:"first_name"`
	LastName          string          `json:"last_name"`
	Phone             string          `json:"phone,omitempty"`
	Role              domain.Role     `json:"role"`
	UserType          domain.UserType `json:"user_type"`
	IsEmailVerified   bool            `json:"is_email_verified"`
	IsProfileComplete bool            `json:"is_profile_complete"`
	LastLoginAt       *time.Time      `json:"last_login_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// RegisterResponse is returned after sign-up
type RegisterResponse struct {
	User             UserResponse `json:"user"`
	VerificationSent bool         `json:"verification_sent"`
}

// LoginResponse represents the response body for successful login
type LoginResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}

// MessageResponse carries a human readable confirmation
type MessageResponse struct {
	Message string `json:"message"`
}

func toTokenResponse(t identity.TokenResult) TokenResponse {
	return TokenResponse{
		AccessToken:           t.AccessToken,
		RefreshToken:          t.RefreshToken,
		AccessTokenExpiresAt:  t.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: t.RefreshTokenExpiresAt,
		TokenType:             t.TokenType,
	}
}

func toUserResponse(u identity.UserInfo) UserResponse {
	return UserResponse{
		ID:                u.ID,
		Email:             u.Email,
		Username:          u.Username,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Phone:             u.Phone,
		Role:              u.Role,
		UserType:          u.Type,
		IsEmailVerified:   u.IsEmailVerified,
		IsProfileComplete: u.IsProfileComplete,
		LastLoginAt:       u.LastLoginAt,
		CreatedAt:         u.CreatedAt,
	}
}
