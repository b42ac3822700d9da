package shared

import (
	domain "github.com/hirecoder/backend/internal/domain/shared"
)

// PageLimits bounds client-supplied page sizes.
type PageLimits struct {
	DefaultPageSize int
	MaxPageSize     int
}

// DefaultPageLimits matches the marketplace config defaults
var DefaultPageLimits = PageLimits{DefaultPageSize: 20, MaxPageSize: 100}

// Normalize clamps page and page size into range
func (l PageLimits) Normalize(f domain.Filter) domain.Filter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = l.DefaultPageSize
	}
	if l.MaxPageSize > 0 && f.PageSize > l.MaxPageSize {
		f.PageSize = l.MaxPageSize
	}
	return f
}
