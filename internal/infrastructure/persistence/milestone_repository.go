package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/job"
	"github.com/hirecoder/backend/internal/domain/shared"
	"github.com/hirecoder/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormMilestoneRepository implements job.MilestoneRepository using GORM
type GormMilestoneRepository struct {
	db *gorm.DB
}

// NewGormMilestoneRepository creates a new GormMilestoneRepository
func NewGormMilestoneRepository(db *gorm.DB) *GormMilestoneRepository {
	return &GormMilestoneRepository{db: db}
}

func (r *GormMilestoneRepository) Create(ctx context.Context, m *job.Milestone) error {
	var model models.MilestoneModel
	model.FromDomain(m)
	return translateError(r.db.WithContext(ctx).Create(&model).Error, nil, nil)
}

func (r *GormMilestoneRepository) Update(ctx context.Context, m *job.Milestone) error {
	var model models.MilestoneModel
	model.FromDomain(m)
	return translateError(r.db.WithContext(ctx).Save(&model).Error, nil, nil)
}

func (r *GormMilestoneRepository) FindScoped(ctx context.Context, id uuid.UUID, scope job.Scope) (*job.Milestone, error) {
	var model models.MilestoneModel
	if err := applyScope(r.db.WithContext(ctx), scope).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err, errMilestoneNotFound, nil)
	}
	return model.ToDomain(), nil
}

func (r *GormMilestoneRepository) FindAll(ctx context.Context, scope job.Scope, filter shared.Filter) ([]*job.Milestone, int64, error) {
	query := applyScope(r.db.WithContext(ctx).Model(&models.MilestoneModel{}), scope)
	if status, ok := filter.Filters["status"].(job.MilestoneStatus); ok && status != "" {
		query = query.Where("status = ?", status)
	}
	if postingID, ok := filter.Filters["job_posting_id"].(uuid.UUID); ok && postingID != uuid.Nil {
		query = query.Where("job_posting_id = ?", postingID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []models.MilestoneModel
	if err := paginate(query, filter, MilestoneSortFields).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	out := make([]*job.Milestone, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, total, nil
}
