package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/contract"
	"github.com/hirecoder/backend/internal/domain/job"
	"github.com/hirecoder/backend/internal/domain/shared"
	"github.com/hirecoder/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormJobContractRepository implements contract.JobContractRepository using GORM
type GormJobContractRepository struct {
	db *gorm.DB
}

// NewGormJobContractRepository creates a new GormJobContractRepository
func NewGormJobContractRepository(db *gorm.DB) *GormJobContractRepository {
	return &GormJobContractRepository{db: db}
}

// Create inserts a contract. Both the proposal and the (posting, coder)
// unique indexes surface as CONTRACT_ALREADY_EXISTS.
func (r *GormJobContractRepository) Create(ctx context.Context, c *contract.JobContract) error {
	var model models.JobContractModel
	model.FromDomain(c)
	return translateError(r.db.WithContext(ctx).Create(&model).Error, nil, errContractExists)
}

// Update fails with CONCURRENT_MODIFICATION when the row changed since it was read
func (r *GormJobContractRepository) Update(ctx context.Context, c *contract.JobContract) error {
	var model models.JobContractModel
	model.FromDomain(c)
	return saveWithLock(ctx, r.db, &model, c.ID, c.Version, errContractExists)
}

func (r *GormJobContractRepository) FindScoped(ctx context.Context, id uuid.UUID, scope job.Scope) (*contract.JobContract, error) {
	return r.findScoped(r.db.WithContext(ctx), id, scope)
}

// FindScopedForUpdate reads the contract and holds its row lock for the
// rest of the transaction
func (r *GormJobContractRepository) FindScopedForUpdate(ctx context.Context, id uuid.UUID, scope job.Scope) (*contract.JobContract, error) {
	return r.findScoped(forUpdate(r.db.WithContext(ctx)), id, scope)
}

func (r *GormJobContractRepository) findScoped(db *gorm.DB, id uuid.UUID, scope job.Scope) (*contract.JobContract, error) {
	var model models.JobContractModel
	if err := applyScope(db, scope).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err, errContractNotFound, nil)
	}
	return model.ToDomain(), nil
}

// FindByPostingAndCoder returns the contract for the pair or CONTRACT_NOT_FOUND
func (r *GormJobContractRepository) FindByPostingAndCoder(ctx context.Context, postingID, coderID uuid.UUID) (*contract.JobContract, error) {
	var model models.JobContractModel
	if err := r.db.WithContext(ctx).
		Where("job_posting_id = ? AND coder_id = ?", postingID, coderID).
		First(&model).Error; err != nil {
		return nil, translateError(err, errContractNotFound, nil)
	}
	return model.ToDomain(), nil
}

func (r *GormJobContractRepository) FindAll(ctx context.Context, scope job.Scope, filter shared.Filter) ([]*contract.JobContract, int64, error) {
	query := applyScope(r.db.WithContext(ctx).Model(&models.JobContractModel{}), scope)
	if active, ok := filter.Filters["is_active"].(bool); ok {
		query = query.Where("is_active = ?", active)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []models.JobContractModel
	if err := paginate(query, filter, ContractSortFields).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	out := make([]*contract.JobContract, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, total, nil
}
