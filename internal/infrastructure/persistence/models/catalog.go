package models

import (
	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/catalog"
)

// TechnologyModel is the persistence model for catalog technologies.
type TechnologyModel struct {
	BaseModel
	Name       string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_technologies_name"`
	IsApproved bool       `gorm:"not null;default:false"`
	CreatedBy  *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (TechnologyModel) TableName() string {
	return "technologies"
}

// ToDomain converts the persistence model to a domain Technology.
func (m *TechnologyModel) ToDomain() *catalog.Technology {
	return &catalog.Technology{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		IsApproved: m.IsApproved,
		CreatedBy:  m.CreatedBy,
	}
}

// FromDomain populates the persistence model from a domain Technology.
func (m *TechnologyModel) FromDomain(t *catalog.Technology) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.Name = t.Name
	m.IsApproved = t.IsApproved
	m.CreatedBy = t.CreatedBy
}

// TimeZoneModel is the persistence model for catalog time zones.
type TimeZoneModel struct {
	BaseModel
	Name string `gorm:"type:varchar(64);not null;uniqueIndex:idx_time_zones_name"`
}

// TableName returns the table name for GORM
func (TimeZoneModel) TableName() string {
	return "time_zones"
}

// ToDomain converts the persistence model to a domain TimeZone.
func (m *TimeZoneModel) ToDomain() *catalog.TimeZone {
	return &catalog.TimeZone{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
	}
}

// FromDomain populates the persistence model from a domain TimeZone.
func (m *TimeZoneModel) FromDomain(z *catalog.TimeZone) {
	m.FromDomainBaseEntity(z.BaseEntity)
	m.Name = z.Name
}
