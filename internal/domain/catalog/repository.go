package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/shared"
)

// TechnologyRepository persists technologies
type TechnologyRepository interface {
	Create(ctx context.Context, t *Technology) error
	Update(ctx context.Context, t *Technology) error
	FindByID(ctx context.Context, id uuid.UUID) (*Technology, error)
	FindByNames(ctx context.Context, names []string) ([]*Technology, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*Technology, int64, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// TimeZoneRepository persists time zones
type TimeZoneRepository interface {
	Create(ctx context.Context, z *TimeZone) error
	FindByNames(ctx context.Context, names []string) ([]*TimeZone, error)
	FindAll(ctx context.Context) ([]*TimeZone, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}
