package catalog

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/hirecoder/backend/internal/domain/shared"
)

// TimeZone is an IANA zone that postings can target
type TimeZone struct {
	shared.BaseEntity
	Name string
}

// NewTimeZone creates a time zone after checking the IANA database
func NewTimeZone(name string) (*TimeZone, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("name", "Time zone name cannot be empty")
	}
	if _, err := time.LoadLocation(name); err != nil || name == "Local" {
		return nil, shared.NewValidationError("name", fmt.Sprintf("%q is not a valid time zone", name))
	}
	return &TimeZone{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
	}, nil
}

// DisplayName renders the zone as "GMT+hh:mm Name" using the offset at now
func (z *TimeZone) DisplayName(now time.Time) string {
	loc, err := time.LoadLocation(z.Name)
	if err != nil {
		return z.Name
	}
	_, offset := now.In(loc).Zone()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return fmt.Sprintf("GMT%s%02d:%02d %s", sign, offset/3600, (offset%3600)/60, z.Name)
}
