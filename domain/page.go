package domain

import (
	"strconv"
	"strings"
)

const (
	DefaultPageNo   = 0
	DefaultPageSize = 10
	DefaultSortBy   = "id"
	DefaultSortDir  = "asc"

	// upper bounds keep PageNo*PageSize inside int on every platform
	MaxPageNo   = 1_000_000
	MaxPageSize = 1000
)

// PostSortColumns maps the sortable post fields to their columns.
var PostSortColumns = map[string]string{
	"id":          "id",
	"title":       "title",
	"description": "description",
	"content":     "content",
}

// PageRequest selects one zero-based page of a sorted listing.
type PageRequest struct {
	PageNo   int
	PageSize int
	SortBy   string
	SortDir  string
}

// Desc reports whether the listing is descending. Only "asc" (any case) sorts ascending.
func (pr PageRequest) Desc() bool {
	return !strings.EqualFold(pr.SortDir, "asc")
}

func (pr PageRequest) Offset() int {
	return pr.PageNo * pr.PageSize
}

// Validate checks paging bounds and that SortBy is one of columns.
func (pr PageRequest) Validate(columns map[string]string) error {
	verr := &ValidationError{}
	switch {
	case pr.PageNo < 0:
		verr.Add("pageNo", "must be greater than or equal to 0")
	case pr.PageNo > MaxPageNo:
		verr.Add("pageNo", "must be less than or equal to "+strconv.Itoa(MaxPageNo))
	}
	switch {
	case pr.PageSize < 1:
		verr.Add("pageSize", "must be greater than or equal to 1")
	case pr.PageSize > MaxPageSize:
		verr.Add("pageSize", "must be less than or equal to "+strconv.Itoa(MaxPageSize))
	}
	if _, ok := columns[pr.SortBy]; !ok {
		verr.Add("sortBy", "unknown sort field '"+pr.SortBy+"'")
	}
	return verr.OrNil()
}

// Page is one page of a listing plus its paging metadata.
type Page[T any] struct {
	Content       []T
	PageNo        int
	PageSize      int
	TotalElements int64
	TotalPages    int
	Last          bool
}

// EmptyPage is returned when the store holds no rows at all.
func EmptyPage[T any]() Page[T] {
	return Page[T]{Content: []T{}}
}

// NewPage fills the metadata of a page for the given request and total row count.
func NewPage[T any](content []T, pr PageRequest, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if pr.PageSize > 0 {
		totalPages = int((total + int64(pr.PageSize) - 1) / int64(pr.PageSize))
	}
	return Page[T]{
		Content:       content,
		PageNo:        pr.PageNo,
		PageSize:      pr.PageSize,
		TotalElements: total,
		TotalPages:    totalPages,
		Last:          pr.PageNo >= totalPages-1,
	}
}
