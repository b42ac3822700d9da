package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/profile"
	"github.com/hirecoder/backend/internal/domain/shared"
	"github.com/hirecoder/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// domainModel is a persistence model pointer that converts to D
type domainModel[M any, D any] interface {
	*M
	ToDomain() D
}

// findByUser loads the single row userID owns
func findByUser[M any, D any, PM domainModel[M, D]](ctx context.Context, db *gorm.DB, userID uuid.UUID, notFound *shared.DomainError) (D, error) {
	var m M
	if err := db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		var zero D
		return zero, translateError(err, notFound, nil)
	}
	return PM(&m).ToDomain(), nil
}

// findByUsers loads the rows owned by any of userIDs
func findByUsers[M any, D any, PM domainModel[M, D]](ctx context.Context, db *gorm.DB, userIDs []uuid.UUID) ([]D, error) {
	if len(userIDs) == 0 {
		return []D{}, nil
	}
	var rows []M
	if err := db.WithContext(ctx).Where("user_id IN ?", userIDs).Order("created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]D, len(rows))
	for i := range rows {
		out[i] = PM(&rows[i]).ToDomain()
	}
	return out, nil
}

// updateRecord writes every column of model by primary key
func updateRecord(ctx context.Context, db *gorm.DB, model any, notFound *shared.DomainError) error {
	result := db.WithContext(ctx).Model(model).Select("*").Updates(model)
	if result.Error != nil {
		return translateError(result.Error, nil, nil)
	}
	if result.RowsAffected == 0 {
		return notFound
	}
	return nil
}

// GormAddressRepository implements profile.AddressRepository using GORM
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GormAddressRepository
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

func (r *GormAddressRepository) Create(ctx context.Context, a *profile.Address) error {
	var model models.AddressModel
	model.FromDomain(a)
	return translateError(r.db.WithContext(ctx).Create(&model).Error, nil, errAddressExists)
}

func (r *GormAddressRepository) Update(ctx context.Context, a *profile.Address) error {
	var model models.AddressModel
	model.FromDomain(a)
	return updateRecord(ctx, r.db, &model, errAddressNotFound)
}

func (r *GormAddressRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*profile.Address, error) {
	return findByUser[models.AddressModel, *profile.Address](ctx, r.db, userID, errAddressNotFound)
}

func (r *GormAddressRepository) FindByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*profile.Address, error) {
	return findByUsers[models.AddressModel, *profile.Address](ctx, r.db, userIDs)
}

// GormDigitalPresenceRepository implements profile.DigitalPresenceRepository using GORM
type GormDigitalPresenceRepository struct {
	db *gorm.DB
}

// NewGormDigitalPresenceRepository creates a new GormDigitalPresenceRepository
func NewGormDigitalPresenceRepository(db *gorm.DB) *GormDigitalPresenceRepository {
	return &GormDigitalPresenceRepository{db: db}
}

func (r *GormDigitalPresenceRepository) Create(ctx context.Context, d *profile.DigitalPresence) error {
	var model models.DigitalPresenceModel
	model.FromDomain(d)
	return translateError(r.db.WithContext(ctx).Create(&model).Error, nil, errPresenceExists)
}

func (r *GormDigitalPresenceRepository) Update(ctx context.Context, d *profile.DigitalPresence) error {
	var model models.DigitalPresenceModel
	model.FromDomain(d)
	return updateRecord(ctx, r.db, &model, errPresenceNotFound)
}

func (r *GormDigitalPresenceRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*profile.DigitalPresence, error) {
	return findByUser[models.DigitalPresenceModel, *profile.DigitalPresence](ctx, r.db, userID, errPresenceNotFound)
}

// GormCompanyDetailsRepository implements profile.CompanyDetailsRepository using GORM
type GormCompanyDetailsRepository struct {
	db *gorm.DB
}

// NewGormCompanyDetailsRepository creates a new GormCompanyDetailsRepository
func NewGormCompanyDetailsRepository(db *gorm.DB) *GormCompanyDetailsRepository {
	return &GormCompanyDetailsRepository{db: db}
}

func (r *GormCompanyDetailsRepository) Create(ctx context.Context, c *profile.CompanyDetails) error {
	var model models.CompanyDetailsModel
	model.FromDomain(c)
	return translateError(r.db.WithContext(ctx).Create(&model).Error, nil, errCompanyExists)
}

func (r *GormCompanyDetailsRepository) Update(ctx context.Context, c *profile.CompanyDetails) error {
	var model models.CompanyDetailsModel
	model.FromDomain(c)
	return updateRecord(ctx, r.db, &model, errCompanyNotFound)
}

func (r *GormCompanyDetailsRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*profile.CompanyDetails, error) {
	return findByUser[models.CompanyDetailsModel, *profile.CompanyDetails](ctx, r.db, userID, errCompanyNotFound)
}

func (r *GormCompanyDetailsRepository) FindByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*profile.CompanyDetails, error) {
	return findByUsers[models.CompanyDetailsModel, *profile.CompanyDetails](ctx, r.db, userIDs)
}

// GormCoderExperienceRepository implements profile.CoderExperienceRepository using GORM
type GormCoderExperienceRepository struct {
	db *gorm.DB
}

// NewGormCoderExperienceRepository creates a new GormCoderExperienceRepository
func NewGormCoderExperienceRepository(db *gorm.DB) *GormCoderExperienceRepository {
	return &GormCoderExperienceRepository{db: db}
}

func (r *GormCoderExperienceRepository) Create(ctx context.Context, e *profile.CoderExperience) error {
	var model models.CoderExperienceModel
	model.FromDomain(e)
	return translateError(r.db.WithContext(ctx).Create(&model).Error, nil, errExperienceExists)
}

func (r *GormCoderExperienceRepository) Update(ctx context.Context, e *profile.CoderExperience) error {
	var model models.CoderExperienceModel
	model.FromDomain(e)
	return updateRecord(ctx, r.db, &model, errExperienceNotFound)
}

func (r *GormCoderExperienceRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*profile.CoderExperience, error) {
	return findByUser[models.CoderExperienceModel, *profile.CoderExperience](ctx, r.db, userID, errExperienceNotFound)
}

func (r *GormCoderExperienceRepository) FindByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*profile.CoderExperience, error) {
	return findByUsers[models.CoderExperienceModel, *profile.CoderExperience](ctx, r.db, userIDs)
}

// GormDegreeRepository implements profile.DegreeRepository using GORM
type GormDegreeRepository struct {
	db *gorm.DB
}

// NewGormDegreeRepository creates a new GormDegreeRepository
func NewGormDegreeRepository(db *gorm.DB) *GormDegreeRepository {
	return &GormDegreeRepository{db: db}
}

func (r *GormDegreeRepository) Create(ctx context.Context, d *profile.Degree) error {
	var model models.DegreeModel
	model.FromDomain(d)
	return translateError(r.db.WithContext(ctx).Create(&model).Error, nil, nil)
}

func (r *GormDegreeRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*profile.Degree, error) {
	var rows []models.DegreeModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("passing_year DESC").
		Order("created_at").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*profile.Degree, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, nil
}

// DeleteForUser removes a degree owned by userID
func (r *GormDegreeRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.DegreeModel{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errDegreeNotFound
	}
	return nil
}

// GormEducationRepository implements profile.EducationRepository using GORM
type GormEducationRepository struct {
	db *gorm.DB
}

// NewGormEducationRepository creates a new GormEducationRepository
func NewGormEducationRepository(db *gorm.DB) *GormEducationRepository {
	return &GormEducationRepository{db: db}
}

func (r *GormEducationRepository) Create(ctx context.Context, e *profile.Education) error {
	var model models.EducationModel
	model.FromDomain(e)
	return translateError(r.db.WithContext(ctx).Create(&model).Error, nil, errEducationExists)
}

func (r *GormEducationRepository) Update(ctx context.Context, e *profile.Education) error {
	var model models.EducationModel
	model.FromDomain(e)
	return updateRecord(ctx, r.db, &model, errEducationNotFound)
}

func (r *GormEducationRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*profile.Education, error) {
	return findByUser[models.EducationModel, *profile.Education](ctx, r.db, userID, errEducationNotFound)
}
