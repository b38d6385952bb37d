// Package table is the shared list-page engine: case-insensitive substring
// search across every stringified field of a row, followed by fixed-size
// pagination. List pages feed it their fetched rows and the q/page query
// parameters.
package table

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/lyra-school/lyra-web/internal/app/models/dto"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1 // pages are 1-based
)

// Page is the result of applying search and pagination to a row set.
type Page[T any] struct {
	Rows       []T                `json:"rows"`
	Pagination dto.PaginationInfo `json:"pagination"`
	Query      string             `json:"query,omitempty"`
}

// Apply filters rows by query and returns the requested page. A page index
// past the end of the filtered set clamps to the last non-empty page, so a
// search that shrinks the set never strands the caller on a blank page.
func Apply[T any](rows []T, query string, page, size int) Page[T] {
	if size <= 0 || size > MaxPageSize {
		size = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	filtered := Filter(rows, query)

	totalItems := len(filtered)
	totalPages := (totalItems + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return Page[T]{
		Rows:  filtered[start:end],
		Query: query,
		Pagination: dto.PaginationInfo{
			CurrentPage: page,
			TotalPages:  totalPages,
			PageSize:    size,
			TotalItems:  totalItems,
		},
	}
}

// Filter keeps the rows where any field's string form contains the query,
// case-insensitively. An empty query keeps everything.
func Filter[T any](rows []T, query string) []T {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return rows
	}

	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if rowMatches(reflect.ValueOf(row), query) {
			out = append(out, row)
		}
	}
	return out
}

// rowMatches walks a row value and reports whether any leaf field's string
// form contains the query. Nested structs and relation pointers are
// searched too, mirroring a search over the rendered cell contents.
func rowMatches(v reflect.Value, query string) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return false
		}
		return rowMatches(v.Elem(), query)

	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if !v.Type().Field(i).IsExported() {
				continue
			}
			if rowMatches(v.Field(i), query) {
				return true
			}
		}
		return false

	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if rowMatches(v.Index(i), query) {
				return true
			}
		}
		return false

	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			if rowMatches(iter.Value(), query) {
				return true
			}
		}
		return false

	default:
		if !v.IsValid() || !v.CanInterface() {
			return false
		}
		s := strings.ToLower(fmt.Sprintf("%v", v.Interface()))
		return strings.Contains(s, query)
	}
}
