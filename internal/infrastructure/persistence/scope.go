package persistence

import (
	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/job"
	"gorm.io/gorm"
)

// applyScope limits rows to the scope's client or coder columns
func applyScope(query *gorm.DB, scope job.Scope) *gorm.DB {
	if scope.ClientID != uuid.Nil {
		query = query.Where("client_id = ?", scope.ClientID)
	}
	if scope.CoderID != uuid.Nil {
		query = query.Where("coder_id = ?", scope.CoderID)
	}
	return query
}
