package persistence

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/catalog"
	"github.com/hirecoder/backend/internal/domain/shared"
	"github.com/hirecoder/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormTechnologyRepository implements catalog.TechnologyRepository using GORM
type GormTechnologyRepository struct {
	db *gorm.DB
}

// NewGormTechnologyRepository creates a new GormTechnologyRepository
func NewGormTechnologyRepository(db *gorm.DB) *GormTechnologyRepository {
	return &GormTechnologyRepository{db: db}
}

// Create inserts a technology; a taken name is TECHNOLOGY_ALREADY_EXISTS
func (r *GormTechnologyRepository) Create(ctx context.Context, t *catalog.Technology) error {
	var model models.TechnologyModel
	model.FromDomain(t)
	return translateError(r.db.WithContext(ctx).Create(&model).Error, nil, errTechnologyExists)
}

// Update saves a technology
func (r *GormTechnologyRepository) Update(ctx context.Context, t *catalog.Technology) error {
	var model models.TechnologyModel
	model.FromDomain(t)
	return translateError(r.db.WithContext(ctx).Save(&model).Error, nil, errTechnologyExists)
}

// FindByID finds a technology by ID
func (r *GormTechnologyRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Technology, error) {
	var model models.TechnologyModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err, errTechnologyNotFound, nil)
	}
	return model.ToDomain(), nil
}

// FindByNames returns the technologies whose names are in names
func (r *GormTechnologyRepository) FindByNames(ctx context.Context, names []string) ([]*catalog.Technology, error) {
	if len(names) == 0 {
		return []*catalog.Technology{}, nil
	}
	var rows []models.TechnologyModel
	if err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*catalog.Technology, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, nil
}

// FindAll lists technologies, optionally narrowed by a name search
func (r *GormTechnologyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*catalog.Technology, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.TechnologyModel{})
	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where("name LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if approved, ok := filter.Filters["is_approved"].(bool); ok {
		query = query.Where("is_approved = ?", approved)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if filter.OrderBy == "" {
		filter.OrderBy, filter.OrderDir = "name", "asc"
	}
	var rows []models.TechnologyModel
	if err := paginate(query, filter, TechnologySortFields).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	out := make([]*catalog.Technology, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, total, nil
}

// ExistsByName checks if a technology with the normalized name exists
func (r *GormTechnologyRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.TechnologyModel{}).
		Where("name = ?", catalog.NormalizeTechnologyName(name)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GormTimeZoneRepository implements catalog.TimeZoneRepository using GORM
type GormTimeZoneRepository struct {
	db *gorm.DB
}

// NewGormTimeZoneRepository creates a new GormTimeZoneRepository
func NewGormTimeZoneRepository(db *gorm.DB) *GormTimeZoneRepository {
	return &GormTimeZoneRepository{db: db}
}

// Create inserts a time zone; a taken name is TIMEZONE_ALREADY_EXISTS
func (r *GormTimeZoneRepository) Create(ctx context.Context, z *catalog.TimeZone) error {
	var model models.TimeZoneModel
	model.FromDomain(z)
	return translateError(r.db.WithContext(ctx).Create(&model).Error, nil, errTimeZoneExists)
}

// FindByNames returns the time zones whose names are in names
func (r *GormTimeZoneRepository) FindByNames(ctx context.Context, names []string) ([]*catalog.TimeZone, error) {
	if len(names) == 0 {
		return []*catalog.TimeZone{}, nil
	}
	var rows []models.TimeZoneModel
	if err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&rows).Error; err != nil {
		return nil, err
	}
	return timeZonesToDomain(rows), nil
}

// FindAll returns every time zone ordered by name
func (r *GormTimeZoneRepository) FindAll(ctx context.Context) ([]*catalog.TimeZone, error) {
	var rows []models.TimeZoneModel
	if err := r.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	return timeZonesToDomain(rows), nil
}

// ExistsByName checks if a time zone exists
func (r *GormTimeZoneRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.TimeZoneModel{}).
		Where("name = ?", strings.TrimSpace(name)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func timeZonesToDomain(rows []models.TimeZoneModel) []*catalog.TimeZone {
	out := make([]*catalog.TimeZone, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out
}
