package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/hirecoder/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// UserType distinguishes individual accounts from agencies
type UserType string

const (
	UserTypeIndividual UserType = "INDIVIDUAL"
	UserTypeAgency     UserType = "AGENCY"
)

const bcryptCost = 12

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9@.+\-_]+$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex    = regexp.MustCompile(`^\+?1?\d{10,14}$`)
)

// User is a marketplace account
type User struct {
	shared.BaseAggregateRoot
	Email             string
	Username          string
	FirstName         string
	LastName          string
	Phone             string
	PasswordHash      string
	Role              Role
	Type              UserType
	IsEmailVerified   bool
	IsProfileComplete bool
	IsActive          bool
	LastLoginAt       *time.Time
}

// NewUserInput carries registration data
type NewUserInput struct {
	Email     string
	Username  string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Role      Role
	Type      UserType
}

// NewUser creates an unverified, active user
func NewUser(in NewUserInput) (*User, error) {
	var verrs shared.ValidationErrors

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if err := validateEmail(email); err != nil {
		verrs.Add("email", err.Error())
	}
	username := strings.TrimSpace(in.Username)
	if err := validateUsername(username); err != nil {
		verrs.Add("username", err.Error())
	}
	if err := validatePassword(in.Password); err != nil {
		verrs.Add("password", err.Error())
	}
	phone := strings.TrimSpace(in.Phone)
	if phone != "" && !phoneRegex.MatchString(phone) {
		verrs.Add("phone", "Phone number must be entered in the format: '+999999999'. Up to 15 digits allowed.")
	}
	if !in.Role.IsSelfRegistrable() {
		verrs.Add("role", "Role must be CLIENT or CODER")
	}
	userType := in.Type
	if userType == "" {
		userType = UserTypeIndividual
	}
	if userType != UserTypeIndividual && userType != UserTypeAgency {
		verrs.Add("type", "Type must be INDIVIDUAL or AGENCY")
	}
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password").WithCause(err)
	}

	user := &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             email,
		Username:          username,
		FirstName:         strings.TrimSpace(in.FirstName),
		LastName:          strings.TrimSpace(in.LastName),
		Phone:             phone,
		PasswordHash:      hash,
		Role:              in.Role,
		Type:              userType,
		IsActive:          true,
	}
	user.AddDomainEvent(NewUserRegisteredEvent(user))
	return user, nil
}

// VerifyPassword checks the password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ChangePassword replaces the password after verifying the old one
func (u *User) ChangePassword(oldPassword, newPassword string) error {
	if !u.VerifyPassword(oldPassword) {
		return shared.NewDomainError("INVALID_PASSWORD", "Current password is incorrect")
	}
	if err := validatePassword(newPassword); err != nil {
		return shared.NewValidationError("new_password", err.Error())
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password").WithCause(err)
	}
	u.PasswordHash = hash
	u.Touch()
	u.IncrementVersion()
	return nil
}

// ResetPassword replaces the password without the current one. The caller
// must have proven control of the email address.
func (u *User) ResetPassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return shared.NewValidationError("password", err.Error())
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password").WithCause(err)
	}
	u.PasswordHash = hash
	u.Touch()
	u.IncrementVersion()
	return nil
}

// MarkEmailVerified flags the email address as verified
func (u *User) MarkEmailVerified() {
	if u.IsEmailVerified {
		return
	}
	u.IsEmailVerified = true
	u.Touch()
	u.IncrementVersion()
	u.AddDomainEvent(NewUserEmailVerifiedEvent(u))
}

// MarkProfileComplete flags the profile as complete
func (u *User) MarkProfileComplete() {
	u.IsProfileComplete = true
	u.Touch()
}

// RecordLogin stamps the last login time
func (u *User) RecordLogin() {
	now := time.Now()
	u.LastLoginAt = &now
}

// CanLogin reports whether the account may authenticate
func (u *User) CanLogin() bool {
	return u.IsActive
}

// Actor returns the acting principal for this user
func (u *User) Actor() Actor {
	return NewActor(u.ID, u.Role, u.IsEmailVerified)
}

// FullName joins first and last name
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func validateUsername(username string) error {
	if username == "" {
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if len(username) > 150 {
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot exceed 150 characters")
	}
	if !usernameRegex.MatchString(username) {
		return shared.NewDomainError("INVALID_USERNAME", "Username may contain only letters, numbers, and @/./+/-/_ characters")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 254 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 254 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
