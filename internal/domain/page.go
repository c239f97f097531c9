package domain

import "strings"

type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// PageQuery is the shared offset-pagination request shape. Filters only
// ever hold non-blank values: an absent key means "match everything" and
// must never be sent downstream as an empty string.
type PageQuery struct {
	PageNumber    int
	PageSize      int
	Filters       map[string]string
	SortDirection SortDirection
}

// SetFilter records a filter, dropping blank values so "no filter" and
// "filter on empty" stay distinguishable.
func (q *PageQuery) SetFilter(key, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	if q.Filters == nil {
		q.Filters = map[string]string{}
	}
	q.Filters[key] = value
}

// Filter returns the value for key and whether it was supplied.
func (q PageQuery) Filter(key string) (string, bool) {
	v, ok := q.Filters[key]
	return v, ok
}

// Validate enforces the pagination contract before any storage call.
func (q PageQuery) Validate() error {
	if q.PageNumber < 1 {
		return ValidationError{Field: "pageNumber", Msg: "must be greater than zero"}
	}
	if q.PageSize < 1 {
		return ValidationError{Field: "pageSize", Msg: "must be greater than zero"}
	}
	if q.SortDirection != SortAsc && q.SortDirection != SortDesc {
		return ValidationError{Field: "sortDirection", Msg: "must be either 'ASC' or 'DESC'"}
	}
	return nil
}

// Offset converts the 1-based page number into a row offset.
func (q PageQuery) Offset() int {
	return (q.PageNumber - 1) * q.PageSize
}

// PageResult pairs one page of items with the filtered-set total, so the
// client can compute page counts even on a partial last page.
type PageResult[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
}

// TotalPages computes ceil(TotalCount / pageSize).
func (r PageResult[T]) TotalPages(pageSize int) int {
	if pageSize < 1 {
		return 0
	}
	return (r.TotalCount + pageSize - 1) / pageSize
}
