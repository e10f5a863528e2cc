package queryparams

import "errors"

const (
	DefaultPage     = 0
	DefaultPageSize = 10
	MaxPageSize     = 100
)

var (
	ErrInvalidPage     = errors.New("page must be zero or greater")
	ErrInvalidPageSize = errors.New("page_size must be between 1 and 100")
)

// ListParams carries pagination query parameters. Page is zero-based.
type ListParams struct {
	Page     int `query:"page"`
	PageSize int `query:"page_size"`
}

// DefaultListParams returns params with the documented defaults.
// Parse query strings on top of this so absent parameters keep their default.
func DefaultListParams() ListParams {
	return ListParams{Page: DefaultPage, PageSize: DefaultPageSize}
}

// Validate rejects out-of-range values. Called at the API boundary before
// any query runs; services call it again as a guard.
func (p ListParams) Validate() error {
	if p.Page < 0 {
		return ErrInvalidPage
	}
	if p.PageSize < 1 || p.PageSize > MaxPageSize {
		return ErrInvalidPageSize
	}
	return nil
}

// Offset converts the zero-based page into a row offset.
func (p ListParams) Offset() int {
	return p.Page * p.PageSize
}

// CalculateTotalPages returns the number of pages needed for totalCount rows.
func CalculateTotalPages(totalCount int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	pages := int(totalCount) / pageSize
	if int(totalCount)%pageSize != 0 {
		pages++
	}
	return pages
}
