package persistence

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/catalog"
	"github.com/hirecoder/backend/internal/domain/job"
	"github.com/hirecoder/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormJobPostingRepository implements job.JobPostingRepository using GORM
type GormJobPostingRepository struct {
	db *gorm.DB
}

// NewGormJobPostingRepository creates a new GormJobPostingRepository
func NewGormJobPostingRepository(db *gorm.DB) *GormJobPostingRepository {
	return &GormJobPostingRepository{db: db}
}

// Create inserts a posting together with its technology and time zone rows
func (r *GormJobPostingRepository) Create(ctx context.Context, p *job.JobPosting) error {
	model := models.JobPostingModelFromDomain(p)
	return translateError(r.db.WithContext(ctx).Create(model).Error, nil, nil)
}

// Update saves the posting and replaces its child rows
func (r *GormJobPostingRepository) Update(ctx context.Context, p *job.JobPosting) error {
	model := models.JobPostingModelFromDomain(p)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Omit(clause.Associations).Save(model)
		if result.Error != nil {
			return translateError(result.Error, nil, nil)
		}
		if err := tx.Where("job_posting_id = ?", p.ID).Delete(&models.JobPostingTechnologyModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("job_posting_id = ?", p.ID).Delete(&models.JobPostingTimeZoneModel{}).Error; err != nil {
			return err
		}
		if len(model.Technologies) > 0 {
			if err := tx.Create(&model.Technologies).Error; err != nil {
				return err
			}
		}
		if len(model.TimeZones) > 0 {
			if err := tx.Create(&model.TimeZones).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID loads a posting without scoping
func (r *GormJobPostingRepository) FindByID(ctx context.Context, id uuid.UUID) (*job.JobPosting, error) {
	return r.FindScoped(ctx, id, job.Scope{})
}

// FindScoped loads a posting visible within scope. Postings outside the scope are not found.
func (r *GormJobPostingRepository) FindScoped(ctx context.Context, id uuid.UUID, scope job.Scope) (*job.JobPosting, error) {
	var model models.JobPostingModel
	query := preloadPostingChildren(r.db.WithContext(ctx)).Where("id = ?", id)
	if scope.ClientID != uuid.Nil {
		query = query.Where("client_id = ?", scope.ClientID)
	}
	if err := query.First(&model).Error; err != nil {
		return nil, translateError(err, errPostingNotFound, nil)
	}
	return model.ToDomain(), nil
}

// FindAll lists postings within scope matching filter
func (r *GormJobPostingRepository) FindAll(ctx context.Context, scope job.Scope, filter job.PostingFilter) ([]*job.JobPosting, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.JobPostingModel{})
	if scope.ClientID != uuid.Nil {
		query = query.Where("client_id = ?", scope.ClientID)
	}
	query = applyPostingFilter(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.JobPostingModel
	if err := paginate(preloadPostingChildren(query), filter.Filter, PostingSortFields).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	postings := make([]*job.JobPosting, len(rows))
	for i := range rows {
		postings[i] = rows[i].ToDomain()
	}
	return postings, total, nil
}

// SampleOpen returns up to limit OPEN postings in random order
func (r *GormJobPostingRepository) SampleOpen(ctx context.Context, limit int) ([]*job.JobPosting, error) {
	var rows []models.JobPostingModel
	if err := preloadPostingChildren(r.db.WithContext(ctx)).
		Where("status = ?", job.PostingStatusOpen).
		Order("RANDOM()").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	postings := make([]*job.JobPosting, len(rows))
	for i := range rows {
		postings[i] = rows[i].ToDomain()
	}
	return postings, nil
}

func preloadPostingChildren(db *gorm.DB) *gorm.DB {
	byPosition := func(tx *gorm.DB) *gorm.DB { return tx.Order("position") }
	return db.Preload("Technologies", byPosition).Preload("TimeZones", byPosition)
}

func applyPostingFilter(query *gorm.DB, f job.PostingFilter) *gorm.DB {
	if title := strings.TrimSpace(f.Title); title != "" {
		query = query.Where("LOWER(title) LIKE ?", containsPattern(title))
	}
	if desc := strings.TrimSpace(f.Description); desc != "" {
		query = query.Where("LOWER(description) LIKE ?", containsPattern(desc))
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		pattern := containsPattern(search)
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if tech := catalog.NormalizeTechnologyName(f.Technology); tech != "" {
		query = query.Where(
			"EXISTS (SELECT 1 FROM job_posting_technologies jpt WHERE jpt.job_posting_id = job_postings.id AND jpt.technology_name = ?)",
			tech)
	}
	if tz := strings.TrimSpace(f.TimeZone); tz != "" {
		query = query.Where(
			"EXISTS (SELECT 1 FROM job_posting_time_zones jptz WHERE jptz.job_posting_id = job_postings.id AND jptz.time_zone_name = ?)",
			tz)
	}
	if f.ProjectSize != "" {
		query = query.Where("project_size = ?", f.ProjectSize)
	}
	if f.BudgetType != "" {
		query = query.Where("budget_type = ?", f.BudgetType)
	}
	switch f.Expertise {
	case catalog.ExpertiseBeginner:
		query = query.Where("expertise_beginner = ?", true)
	case catalog.ExpertiseIntermediate:
		query = query.Where("expertise_intermediate = ?", true)
	case catalog.ExpertiseExpert:
		query = query.Where("expertise_expert = ?", true)
	}
	if f.Duration != "" {
		query = query.Where("duration = ?", f.Duration)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.PreferredCoderResidence != "" {
		query = query.Where("preferred_coder_residence = ?", f.PreferredCoderResidence)
	}
	if f.MaximumBudgetLTE != nil {
		query = query.Where("maximum_budget <= ?", *f.MaximumBudgetLTE)
	}
	if f.MaximumHourlyRateLTE != nil {
		query = query.Where("maximum_hourly_rate <= ?", *f.MaximumHourlyRateLTE)
	}
	if f.MinimumHourlyRateGTE != nil {
		query = query.Where("minimum_hourly_rate >= ?", *f.MinimumHourlyRateGTE)
	}
	return query
}

// containsPattern builds a lowercase LIKE pattern with wildcards escaped away
func containsPattern(s string) string {
	s = strings.NewReplacer("%", "", "_", "").Replace(strings.ToLower(s))
	return "%" + s + "%"
}
