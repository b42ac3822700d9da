package persistence

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/contract"
	"github.com/hirecoder/backend/internal/domain/job"
	"github.com/hirecoder/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormTimesheetRepository implements contract.TimesheetRepository using GORM
type GormTimesheetRepository struct {
	db *gorm.DB
}

// NewGormTimesheetRepository creates a new GormTimesheetRepository
func NewGormTimesheetRepository(db *gorm.DB) *GormTimesheetRepository {
	return &GormTimesheetRepository{db: db}
}

func (r *GormTimesheetRepository) Create(ctx context.Context, t *contract.Timesheet) error {
	var model models.TimesheetModel
	model.FromDomain(t)
	return translateError(r.db.WithContext(ctx).Create(&model).Error, nil, nil)
}

// Update fails with CONCURRENT_MODIFICATION when the row changed since it was read
func (r *GormTimesheetRepository) Update(ctx context.Context, t *contract.Timesheet) error {
	var model models.TimesheetModel
	model.FromDomain(t)
	return saveWithLock(ctx, r.db, &model, t.ID, t.Version, nil)
}

func (r *GormTimesheetRepository) FindScoped(ctx context.Context, id uuid.UUID, scope job.Scope) (*contract.Timesheet, error) {
	return r.findScoped(r.db.WithContext(ctx), id, scope)
}

// FindScopedForUpdate reads the timesheet and holds its row lock for the
// rest of the transaction
func (r *GormTimesheetRepository) FindScopedForUpdate(ctx context.Context, id uuid.UUID, scope job.Scope) (*contract.Timesheet, error) {
	return r.findScoped(forUpdate(r.db.WithContext(ctx)), id, scope)
}

func (r *GormTimesheetRepository) findScoped(db *gorm.DB, id uuid.UUID, scope job.Scope) (*contract.Timesheet, error) {
	var model models.TimesheetModel
	if err := applyScope(db, scope).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err, errTimesheetNotFound, nil)
	}
	return model.ToDomain(), nil
}

// FindAll lists timesheets within scope. Times of day compare as "HH:MM" strings.
func (r *GormTimesheetRepository) FindAll(ctx context.Context, scope job.Scope, filter contract.TimesheetFilter) ([]*contract.Timesheet, int64, error) {
	query := applyScope(r.db.WithContext(ctx).Model(&models.TimesheetModel{}), scope)
	if name := strings.TrimSpace(filter.ContractName); name != "" {
		query = query.Where("contract_name = ?", name)
	}
	if filter.Date != nil {
		query = query.Where("date = ?", contract.DateOf(*filter.Date))
	}
	if desc := strings.TrimSpace(filter.Description); desc != "" {
		query = query.Where("LOWER(description) LIKE ?", containsPattern(desc))
	}
	if filter.StartTimeGTE != nil {
		query = query.Where("start_time >= ?", filter.StartTimeGTE.String())
	}
	if filter.EndTimeLTE != nil {
		query = query.Where("end_time <= ?", filter.EndTimeLTE.String())
	}
	if filter.PaymentStatus != "" {
		query = query.Where("payment_status = ?", filter.PaymentStatus)
	}
	if filter.TimesheetStatus != "" {
		query = query.Where("timesheet_status = ?", filter.TimesheetStatus)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "date"
	}
	var rows []models.TimesheetModel
	if err := paginate(query, filter.Filter, TimesheetSortFields).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	out := make([]*contract.Timesheet, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, total, nil
}
