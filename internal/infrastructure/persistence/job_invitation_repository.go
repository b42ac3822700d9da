package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/job"
	"github.com/hirecoder/backend/internal/domain/shared"
	"github.com/hirecoder/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormJobInvitationRepository implements job.JobInvitationRepository using GORM
type GormJobInvitationRepository struct {
	db *gorm.DB
}

// NewGormJobInvitationRepository creates a new GormJobInvitationRepository
func NewGormJobInvitationRepository(db *gorm.DB) *GormJobInvitationRepository {
	return &GormJobInvitationRepository{db: db}
}

// Create inserts an invitation. The (posting, client, coder) unique index
// turns a duplicate into INVITATION_ALREADY_EXISTS.
func (r *GormJobInvitationRepository) Create(ctx context.Context, i *job.JobInvitation) error {
	var model models.JobInvitationModel
	model.FromDomain(i)
	return translateError(r.db.WithContext(ctx).Create(&model).Error, nil, errInvitationExists)
}

func (r *GormJobInvitationRepository) Update(ctx context.Context, i *job.JobInvitation) error {
	var model models.JobInvitationModel
	model.FromDomain(i)
	return translateError(r.db.WithContext(ctx).Save(&model).Error, nil, errInvitationExists)
}

func (r *GormJobInvitationRepository) FindScoped(ctx context.Context, id uuid.UUID, scope job.Scope) (*job.JobInvitation, error) {
	var model models.JobInvitationModel
	if err := applyScope(r.db.WithContext(ctx), scope).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err, errInvitationNotFound, nil)
	}
	return model.ToDomain(), nil
}

func (r *GormJobInvitationRepository) FindAll(ctx context.Context, scope job.Scope, filter shared.Filter) ([]*job.JobInvitation, int64, error) {
	query := applyScope(r.db.WithContext(ctx).Model(&models.JobInvitationModel{}), scope)
	if status, ok := filter.Filters["status"].(job.InvitationStatus); ok && status != "" {
		query = query.Where("status = ?", status)
	}
	if postingID, ok := filter.Filters["job_posting_id"].(uuid.UUID); ok && postingID != uuid.Nil {
		query = query.Where("job_posting_id = ?", postingID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []models.JobInvitationModel
	if err := paginate(query, filter, InvitationSortFields).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	out := make([]*job.JobInvitation, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, total, nil
}

// FindByPostingAndCoder returns the invitations sent to coderID for postingID
func (r *GormJobInvitationRepository) FindByPostingAndCoder(ctx context.Context, postingID, coderID uuid.UUID) ([]*job.JobInvitation, error) {
	var rows []models.JobInvitationModel
	if err := r.db.WithContext(ctx).
		Where("job_posting_id = ? AND coder_id = ?", postingID, coderID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*job.JobInvitation, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, nil
}
