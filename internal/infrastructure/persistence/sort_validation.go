package persistence

import (
	"strings"

	"github.com/hirecoder/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	if strings.ToUpper(strings.TrimSpace(orderDir)) == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

var (
	TechnologySortFields = map[string]bool{
		"id": true, "created_at": true, "updated_at": true, "name": true,
	}
	PostingSortFields = map[string]bool{
		"id": true, "created_at": true, "updated_at": true,
		"title": true, "status": true, "maximum_budget": true,
		"maximum_hourly_rate": true, "minimum_hourly_rate": true,
	}
	InvitationSortFields = map[string]bool{
		"id": true, "created_at": true, "updated_at": true, "status": true,
	}
	ProposalSortFields = map[string]bool{
		"id": true, "created_at": true, "updated_at": true,
		"status": true, "hourly_rate": true, "total_project_cost": true,
	}
	MilestoneSortFields = map[string]bool{
		"id": true, "created_at": true, "updated_at": true,
		"name": true, "status": true, "days": true,
	}
	ContractSortFields = map[string]bool{
		"id": true, "created_at": true, "updated_at": true,
		"name": true, "start_date": true, "total_amount_earned": true,
	}
	TimesheetSortFields = map[string]bool{
		"id": true, "created_at": true, "updated_at": true,
		"date": true, "start_time": true, "total_hours": true, "amount": true,
	}
)

// paginate applies whitelisted ordering plus limit/offset from filter
func paginate(query *gorm.DB, filter shared.Filter, allowed map[string]bool) *gorm.DB {
	sortBy := ValidateSortField(filter.OrderBy, allowed, "created_at")
	query = query.Order(sortBy + " " + ValidateSortOrder(filter.OrderDir)).Order("id")
	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	return query
}
