package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/shared"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Technology is a skill tag that job postings and profiles refer to by name
type Technology struct {
	shared.BaseEntity
	Name       string
	IsApproved bool
	CreatedBy  *uuid.UUID
}

// NewTechnology creates a technology with a normalized name
func NewTechnology(name string, createdBy uuid.UUID, approved bool) (*Technology, error) {
	normalized := NormalizeTechnologyName(name)
	if normalized == "" {
		return nil, shared.NewValidationError("name", "Technology name cannot be empty")
	}
	if len(normalized) > 255 {
		return nil, shared.NewValidationError("name", "Technology name cannot exceed 255 characters")
	}
	t := &Technology{
		BaseEntity: shared.NewBaseEntity(),
		Name:       normalized,
		IsApproved: approved,
	}
	if createdBy != uuid.Nil {
		t.CreatedBy = &createdBy
	}
	return t, nil
}

// Approve marks the technology as reviewed
func (t *Technology) Approve() {
	t.IsApproved = true
	t.Touch()
}

// DisplayName returns the title-cased name
func (t *Technology) DisplayName() string {
	// a Caser keeps state, so one is built per call
	return cases.Title(language.English).String(t.Name)
}

// NormalizeTechnologyName trims and lowercases a technology name
func NormalizeTechnologyName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizeTechnologyNames normalizes and de-duplicates names, keeping order
func NormalizeTechnologyNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = NormalizeTechnologyName(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
