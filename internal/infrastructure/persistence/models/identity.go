package models

import (
	"time"

	"github.com/hirecoder/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	AggregateModel
	Email             string            `gorm:"type:varchar(254);not null;uniqueIndex:idx_users_email"`
	Username          string            `gorm:"type:varchar(150);not null;uniqueIndex:idx_users_username"`
	FirstName         string            `gorm:"type:varchar(150)"`
	LastName          string            `gorm:"type:varchar(150)"`
	Phone             string            `gorm:"type:varchar(20)"`
	PasswordHash      string            `gorm:"type:varchar(255);not null"`
	Role              identity.Role     `gorm:"type:varchar(20);not null;index"`
	UserType          identity.UserType `gorm:"column:user_type;type:varchar(20);not null;default:'INDIVIDUAL'"`
	IsEmailVerified   bool              `gorm:"not null;default:false"`
	IsProfileComplete bool              `gorm:"not null;default:false"`
	IsActive          bool              `gorm:"not null;default:true"`
	LastLoginAt       *time.Time
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot: m.ToAggregateRoot(),
		Email:             m.Email,
		Username:          m.Username,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		Phone:             m.Phone,
		PasswordHash:      m.PasswordHash,
		Role:              m.Role,
		Type:              m.UserType,
		IsEmailVerified:   m.IsEmailVerified,
		IsProfileComplete: m.IsProfileComplete,
		IsActive:          m.IsActive,
		LastLoginAt:       m.LastLoginAt,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	m.Email = u.Email
	m.Username = u.Username
	m.FirstName = u.FirstName
	m.LastName = u.LastName
	m.Phone = u.Phone
	m.PasswordHash = u.PasswordHash
	m.Role = u.Role
	m.UserType = u.Type
	m.IsEmailVerified = u.IsEmailVerified
	m.IsProfileComplete = u.IsProfileComplete
	m.IsActive = u.IsActive
	m.LastLoginAt = u.LastLoginAt
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
