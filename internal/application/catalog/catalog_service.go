package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	appshared "github.com/hirecoder/backend/internal/application/shared"
	"github.com/hirecoder/backend/internal/domain/catalog"
	"github.com/hirecoder/backend/internal/domain/identity"
	"github.com/hirecoder/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CatalogService manages the reference data job postings are built from
type CatalogService struct {
	techRepo catalog.TechnologyRepository
	tzRepo   catalog.TimeZoneRepository
	limits   appshared.PageLimits
	logger   *zap.Logger
	now      func() time.Time
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(
	techRepo catalog.TechnologyRepository,
	tzRepo catalog.TimeZoneRepository,
	limits appshared.PageLimits,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		techRepo: techRepo,
		tzRepo:   tzRepo,
		limits:   limits,
		logger:   logger,
		now:      time.Now,
	}
}

var errAdminOnly = shared.NewDomainError("FORBIDDEN", "Only administrators can perform this action")

// CreateTechnology adds a technology. Entries from non-admins start unapproved.
func (s *CatalogService) CreateTechnology(ctx context.Context, actor identity.Actor, req CreateTechnologyRequest) (*TechnologyResponse, error) {
	if actor.UserID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}
	tech, err := catalog.NewTechnology(req.Name, actor.UserID, actor.Role.IsAdmin())
	if err != nil {
		return nil, err
	}

	exists, err := s.techRepo.ExistsByName(ctx, tech.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("TECHNOLOGY_ALREADY_EXISTS", "Technology with this name already exists")
	}
	if err := s.techRepo.Create(ctx, tech); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("TECHNOLOGY_ALREADY_EXISTS", "Technology with this name already exists")
		}
		return nil, err
	}

	s.logger.Info("Technology created",
		zap.String("technology", tech.Name),
		zap.Bool("approved", tech.IsApproved),
		zap.String("created_by", actor.UserID.String()))

	resp := ToTechnologyResponse(tech)
	return &resp, nil
}

// ListTechnologies returns technologies, optionally narrowed by filter.Search
func (s *CatalogService) ListTechnologies(ctx context.Context, actor identity.Actor, filter shared.Filter) (*shared.Paginated[TechnologyResponse], error) {
	if actor.UserID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}
	filter = s.limits.Normalize(filter)
	techs, total, err := s.techRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]TechnologyResponse, len(techs))
	for i, t := range techs {
		items[i] = ToTechnologyResponse(t)
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// ApproveTechnology marks a technology as reviewed
func (s *CatalogService) ApproveTechnology(ctx context.Context, actor identity.Actor, id uuid.UUID) (*TechnologyResponse, error) {
	if actor.UserID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}
	if !actor.Role.IsAdmin() {
		return nil, errAdminOnly
	}
	tech, err := s.techRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !tech.IsApproved {
		tech.Approve()
		if err := s.techRepo.Update(ctx, tech); err != nil {
			return nil, err
		}
		s.logger.Info("Technology approved", zap.String("technology", tech.Name))
	}
	resp := ToTechnologyResponse(tech)
	return &resp, nil
}

// ListExpertise returns the fixed expertise levels
func (s *CatalogService) ListExpertise() []catalog.ExpertiseLevel {
	return catalog.AllExpertiseLevels()
}

// CreateTimeZone adds an IANA time zone
func (s *CatalogService) CreateTimeZone(ctx context.Context, actor identity.Actor, req CreateTimeZoneRequest) (*TimeZoneResponse, error) {
	if actor.UserID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}
	if !actor.Role.IsAdmin() {
		return nil, errAdminOnly
	}
	zone, err := catalog.NewTimeZone(req.Name)
	if err != nil {
		return nil, err
	}
	exists, err := s.tzRepo.ExistsByName(ctx, zone.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("TIMEZONE_ALREADY_EXISTS", "Time zone already exists")
	}
	if err := s.tzRepo.Create(ctx, zone); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("TIMEZONE_ALREADY_EXISTS", "Time zone already exists")
		}
		return nil, err
	}
	resp := ToTimeZoneResponse(zone, s.now())
	return &resp, nil
}

// ListTimeZones returns all time zones with their current offsets
func (s *CatalogService) ListTimeZones(ctx context.Context, actor identity.Actor) ([]TimeZoneResponse, error) {
	if actor.UserID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}
	zones, err := s.tzRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	out := make([]TimeZoneResponse, len(zones))
	for i, z := range zones {
		out[i] = ToTimeZoneResponse(z, now)
	}
	return out, nil
}
