package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/profile"
	"github.com/hirecoder/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormSkillRepository implements profile.SkillRepository using GORM
type GormSkillRepository struct {
	db *gorm.DB
}

// NewGormSkillRepository creates a new GormSkillRepository
func NewGormSkillRepository(db *gorm.DB) *GormSkillRepository {
	return &GormSkillRepository{db: db}
}

func (r *GormSkillRepository) Create(ctx context.Context, s *profile.Skill) error {
	var model models.SkillModel
	model.FromDomain(s)
	return translateError(r.db.WithContext(ctx).Create(&model).Error, nil, nil)
}

func (r *GormSkillRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*profile.Skill, error) {
	var rows []models.SkillModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*profile.Skill, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, nil
}

func (r *GormSkillRepository) FindByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*profile.Skill, error) {
	return findByUsers[models.SkillModel, *profile.Skill](ctx, r.db, userIDs)
}

// DeleteForUser removes a skill owned by userID. Someone else's skill is not found.
func (r *GormSkillRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.SkillModel{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errSkillNotFound
	}
	return nil
}

func (r *GormSkillRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.SkillModel{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// GormCertificationRepository implements profile.CertificationRepository using GORM
type GormCertificationRepository struct {
	db *gorm.DB
}

// NewGormCertificationRepository creates a new GormCertificationRepository
func NewGormCertificationRepository(db *gorm.DB) *GormCertificationRepository {
	return &GormCertificationRepository{db: db}
}

func (r *GormCertificationRepository) Create(ctx context.Context, c *profile.Certification) error {
	var model models.CertificationModel
	model.FromDomain(c)
	return translateError(r.db.WithContext(ctx).Create(&model).Error, nil, nil)
}

func (r *GormCertificationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*profile.Certification, error) {
	var rows []models.CertificationModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("year DESC").
		Order("created_at").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*profile.Certification, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, nil
}

// DeleteForUser removes a certification owned by userID
func (r *GormCertificationRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CertificationModel{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errCertificationNotFound
	}
	return nil
}
