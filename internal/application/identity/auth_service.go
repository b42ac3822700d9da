package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	appshared "github.com/hirecoder/backend/internal/application/shared"
	"github.com/hirecoder/backend/internal/domain/identity"
	"github.com/hirecoder/backend/internal/domain/shared"
	"github.com/hirecoder/backend/internal/infrastructure/auth"
	"github.com/hirecoder/backend/internal/infrastructure/ratelimit"
	"go.uber.org/zap"
)

// AccountMailer delivers email verification and password reset tokens
type AccountMailer interface {
	SendVerification(ctx context.Context, address, username, token string) error
	SendPasswordReset(ctx context.Context, address, username, token string) error
}

// AuthService handles registration, authentication, email verification and password resets
type AuthService struct {
	userRepo      identity.UserRepository
	jwtService    *auth.JWTService
	blacklist     auth.TokenBlacklist
	resendLimiter ratelimit.Limiter
	mailer        AccountMailer
	events        shared.EventPublisher
	logger        *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	resendLimiter ratelimit.Limiter,
	mailer AccountMailer,
	events shared.EventPublisher,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		jwtService:    jwtService,
		blacklist:     blacklist,
		resendLimiter: resendLimiter,
		mailer:        mailer,
		events:        events,
		logger:        logger,
	}
}

var (
	errInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "Invalid login or password")
	errInvalidResetLink   = shared.NewDomainError("TOKEN_INVALID", "The reset link is invalid")
)

// Register creates an unverified CLIENT or CODER account and mails a verification link
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	user, err := identity.NewUser(identity.NewUserInput{
		Email:     input.Email,
		Username:  input.Username,
		Password:  input.Password,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Role:      input.Role,
		Type:      input.Type,
	})
	if err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("EMAIL_ALREADY_EXISTS", "A user with this email already exists")
	}
	exists, err = s.userRepo.ExistsByUsername(ctx, user.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("USERNAME_ALREADY_EXISTS", "A user with this username already exists")
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("USER_ALREADY_EXISTS", "A user with this email or username already exists")
		}
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, err
	}
	appshared.PublishEvents(ctx, s.events, s.logger, user)

	s.logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role.String()))

	sent := s.sendVerification(ctx, user)
	return &RegisterResult{User: ToUserInfo(user), VerificationSent: sent}, nil
}

// Login authenticates by email or username and returns tokens
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	login := strings.TrimSpace(input.Login)

	var (
		user *identity.User
		err  error
	)
	if strings.Contains(login, "@") {
		user, err = s.userRepo.FindByEmail(ctx, strings.ToLower(login))
	} else {
		user, err = s.userRepo.FindByUsername(ctx, login)
	}
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Login for unknown account", zap.String("login", login))
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	if !user.CanLogin() || !user.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid login attempt", zap.String("user_id", user.ID.String()))
		return nil, errInvalidCredentials
	}

	pair, err := s.issueTokens(user, 0)
	if err != nil {
		return nil, err
	}

	user.RecordLogin()
	if err := s.userRepo.Update(ctx, user); err != nil {
		// the login itself succeeded
		s.logger.Error("Failed to record login", zap.Error(err))
	}

	s.logger.Info("User logged in", zap.String("user_id", user.ID.String()))
	return &LoginResult{TokenResult: *pair, User: ToUserInfo(user)}, nil
}

// RefreshToken rotates a refresh token. The old token is revoked.
func (s *AuthService) RefreshToken(ctx context.Context, input RefreshTokenInput) (*TokenResult, error) {
	claims, err := s.jwtService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		s.logger.Warn("Refresh token validation failed", zap.Error(err))
		return nil, tokenError(err)
	}

	revoked, err := s.blacklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, shared.NewDomainError("TOKEN_REVOKED", "Refresh token has been revoked")
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid user ID in token")
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("TOKEN_INVALID", "Token owner no longer exists")
		}
		return nil, err
	}
	if !user.CanLogin() {
		return nil, shared.NewDomainError("ACCOUNT_INACTIVE", "Account is no longer active")
	}

	pair, err := s.issueTokens(user, claims.RefreshCount+1)
	if err != nil {
		return nil, err
	}
	if err := s.blacklist.Revoke(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
		s.logger.Error("Failed to revoke rotated refresh token", zap.Error(err))
	}

	s.logger.Info("Token refreshed",
		zap.String("user_id", userID.String()),
		zap.Int("refresh_count", claims.RefreshCount+1))
	return pair, nil
}

// Logout revokes the current access token and, if given, the refresh token
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	if input.AccessTokenJTI != "" {
		if err := s.blacklist.Revoke(ctx, input.AccessTokenJTI, input.AccessTokenTTL); err != nil {
			return err
		}
	}
	if input.RefreshToken != "" {
		claims, err := s.jwtService.ValidateRefreshToken(input.RefreshToken)
		switch {
		case err != nil:
			s.logger.Debug("Ignoring unusable refresh token on logout", zap.Error(err))
		case claims.UserID != input.Actor.UserID.String():
			s.logger.Warn("Refresh token of another user presented on logout",
				zap.String("user_id", input.Actor.UserID.String()))
		default:
			if err := s.blacklist.Revoke(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
				return err
			}
		}
	}
	s.logger.Info("User logged out", zap.String("user_id", input.Actor.UserID.String()))
	return nil
}

// VerifyEmail marks the token owner's email as verified. Verifying twice is a no-op.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) (*UserInfo, error) {
	claims, err := s.jwtService.ValidateVerifyEmailToken(token)
	if err != nil {
		return nil, tokenError(err)
	}
	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid user ID in token")
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid verification token")
		}
		return nil, err
	}
	if user.Email != claims.Email {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Verification token does not match the current email address")
	}

	if !user.IsEmailVerified {
		user.MarkEmailVerified()
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
		appshared.PublishEvents(ctx, s.events, s.logger, user)
		s.logger.Info("Email verified", zap.String("user_id", user.ID.String()))
	}

	info := ToUserInfo(user)
	return &info, nil
}

// ResendVerification mails a fresh verification link. Unknown and already
// verified addresses succeed silently.
func (s *AuthService) ResendVerification(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return shared.NewValidationError("email", "Email is required")
	}

	decision, err := s.resendLimiter.Allow(ctx, "verify:"+email)
	if err != nil {
		s.logger.Warn("Rate limiter unavailable, allowing request", zap.Error(err))
	} else if !decision.Allowed {
		return appshared.NewRateLimitedError(
			"Please wait before requesting another verification email", decision.RetryAfter)
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}
	if user.IsEmailVerified {
		return nil
	}
	s.sendVerification(ctx, user)
	return nil
}

// GetCurrentUser returns the caller's account
func (s *AuthService) GetCurrentUser(ctx context.Context, actor identity.Actor) (*UserInfo, error) {
	if actor.UserID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}
	user, err := s.userRepo.FindByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
		}
		return nil, err
	}
	info := ToUserInfo(user)
	return &info, nil
}

// ChangePassword changes the caller's password
func (s *AuthService) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	if input.Actor.UserID == uuid.Nil {
		return shared.ErrUnauthorized
	}
	user, err := s.userRepo.FindByID(ctx, input.Actor.UserID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("USER_NOT_FOUND", "User not found")
		}
		return err
	}
	if err := user.ChangePassword(input.OldPassword, input.NewPassword); err != nil {
		return err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to update user after password change", zap.Error(err))
		return err
	}
	s.logger.Info("User password changed", zap.String("user_id", user.ID.String()))
	return nil
}

// RequestPasswordReset mails a single-use reset link. Unknown and inactive
// addresses succeed silently.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return shared.NewValidationError("email", "Email is required")
	}

	decision, err := s.resendLimiter.Allow(ctx, "reset:"+email)
	if err != nil {
		s.logger.Warn("Rate limiter unavailable, allowing request", zap.Error(err))
	} else if !decision.Allowed {
		return appshared.NewRateLimitedError(
			"Please wait before requesting another password reset email", decision.RetryAfter)
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}
	if !user.IsActive {
		return nil
	}

	token, _, err := s.jwtService.GenerateResetPasswordToken(user.ID, user.Email)
	if err != nil {
		s.logger.Error("Failed to generate password reset token", zap.Error(err))
		return nil
	}
	if err := s.mailer.SendPasswordReset(ctx, user.Email, user.Username, token); err != nil {
		s.logger.Error("Failed to send password reset email",
			zap.String("user_id", user.ID.String()), zap.Error(err))
		return nil
	}
	s.logger.Info("Password reset requested", zap.String("user_id", user.ID.String()))
	return nil
}

// ResetPassword sets a new password for the owner of a reset token. Each
// token works once.
func (s *AuthService) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	if input.Password != input.ConfirmPassword {
		return shared.NewValidationError("confirm_password", "Passwords do not match")
	}

	claims, err := s.jwtService.ValidateResetPasswordToken(input.Token)
	if err != nil {
		s.logger.Warn("Password reset token validation failed", zap.Error(err))
		return tokenError(err)
	}
	revoked, err := s.blacklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return err
	}
	if revoked {
		return errInvalidResetLink
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return errInvalidResetLink
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return errInvalidResetLink
		}
		return err
	}
	if user.Email != claims.Email || !user.IsActive {
		return errInvalidResetLink
	}

	if err := user.ResetPassword(input.Password); err != nil {
		return err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to update user after password reset", zap.Error(err))
		return err
	}
	if err := s.blacklist.Revoke(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
		s.logger.Error("Failed to revoke used password reset token", zap.Error(err))
	}

	s.logger.Info("User password reset", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *AuthService) issueTokens(user *identity.User, refreshCount int) (*TokenResult, error) {
	pair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:        user.ID,
		Username:      user.Username,
		Role:          user.Role,
		EmailVerified: user.IsEmailVerified,
		RefreshCount:  refreshCount,
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens").WithCause(err)
	}
	return &TokenResult{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
		TokenType:             pair.TokenType,
	}, nil
}

func (s *AuthService) sendVerification(ctx context.Context, user *identity.User) bool {
	token, _, err := s.jwtService.GenerateVerifyEmailToken(user.ID, user.Email)
	if err != nil {
		s.logger.Error("Failed to generate verification token", zap.Error(err))
		return false
	}
	if err := s.mailer.SendVerification(ctx, user.Email, user.Username, token); err != nil {
		s.logger.Error("Failed to send verification email",
			zap.String("user_id", user.ID.String()), zap.Error(err))
		return false
	}
	return true
}

func tokenError(err error) error {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return shared.NewDomainError("TOKEN_EXPIRED", "Token has expired")
	case errors.Is(err, auth.ErrMaxRefreshExceeded):
		return shared.NewDomainError("TOKEN_MAX_REFRESH", "Maximum token refresh count exceeded. Please log in again")
	}
	return shared.NewDomainError("TOKEN_INVALID", "Invalid token")
}
