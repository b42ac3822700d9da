package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// saveWithLock writes every column of model if the stored row still carries
// the version the aggregate was loaded with. Domain mutators bump Version
// once, so the stored row must be at version-1.
func saveWithLock(ctx context.Context, db *gorm.DB, model any, id uuid.UUID, version int, conflict *shared.DomainError) error {
	result := db.WithContext(ctx).
		Model(model).
		Where("id = ? AND version = ?", id, version-1).
		Select("*").
		Updates(model)
	if result.Error != nil {
		return translateError(result.Error, nil, conflict)
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrentModification
	}
	return nil
}

// forUpdate locks the selected rows until the surrounding transaction ends.
// SQLite ignores the clause.
func forUpdate(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}
