package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/catalog"
)

// CreateTechnologyRequest represents a request to add a technology
type CreateTechnologyRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// TechnologyResponse represents a technology in API responses
type TechnologyResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	DisplayName string     `json:"display_name"`
	IsApproved  bool       `json:"is_approved"`
	CreatedBy   *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ToTechnologyResponse converts a domain Technology to TechnologyResponse
func ToTechnologyResponse(t *catalog.Technology) TechnologyResponse {
	return TechnologyResponse{
		ID:          t.ID,
		Name:        t.Name,
		DisplayName: t.DisplayName(),
		IsApproved:  t.IsApproved,
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt,
	}
}

// CreateTimeZoneRequest represents a request to add a time zone
type CreateTimeZoneRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// TimeZoneResponse represents a time zone in API responses
type TimeZoneResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
}

// ToTimeZoneResponse converts a domain TimeZone, rendering its offset at now
func ToTimeZoneResponse(z *catalog.TimeZone, now time.Time) TimeZoneResponse {
	return TimeZoneResponse{
		ID:          z.ID,
		Name:        z.Name,
		DisplayName: z.DisplayName(now),
	}
}
