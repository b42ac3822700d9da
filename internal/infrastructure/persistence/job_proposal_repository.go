package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/job"
	"github.com/hirecoder/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormJobProposalRepository implements job.JobProposalRepository using GORM
type GormJobProposalRepository struct {
	db *gorm.DB
}

// NewGormJobProposalRepository creates a new GormJobProposalRepository
func NewGormJobProposalRepository(db *gorm.DB) *GormJobProposalRepository {
	return &GormJobProposalRepository{db: db}
}

func (r *GormJobProposalRepository) Create(ctx context.Context, p *job.JobProposal) error {
	var model models.JobProposalModel
	model.FromDomain(p)
	return translateError(r.db.WithContext(ctx).Create(&model).Error, nil, nil)
}

func (r *GormJobProposalRepository) Update(ctx context.Context, p *job.JobProposal) error {
	var model models.JobProposalModel
	model.FromDomain(p)
	return translateError(r.db.WithContext(ctx).Save(&model).Error, nil, nil)
}

func (r *GormJobProposalRepository) FindByID(ctx context.Context, id uuid.UUID) (*job.JobProposal, error) {
	return r.FindScoped(ctx, id, job.Scope{})
}

func (r *GormJobProposalRepository) FindScoped(ctx context.Context, id uuid.UUID, scope job.Scope) (*job.JobProposal, error) {
	var model models.JobProposalModel
	if err := applyScope(r.db.WithContext(ctx), scope).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err, errProposalNotFound, nil)
	}
	return model.ToDomain(), nil
}

func (r *GormJobProposalRepository) FindAll(ctx context.Context, scope job.Scope, filter job.ProposalFilter) ([]*job.JobProposal, int64, error) {
	query := applyScope(r.db.WithContext(ctx).Model(&models.JobProposalModel{}), scope)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ProposalType != "" {
		query = query.Where("proposal_type = ?", filter.ProposalType)
	}
	if filter.JobPostingID != nil {
		query = query.Where("job_posting_id = ?", *filter.JobPostingID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []models.JobProposalModel
	if err := paginate(query, filter.Filter, ProposalSortFields).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	out := make([]*job.JobProposal, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, total, nil
}
