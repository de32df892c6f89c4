// Package listing is the one list controller behind every collection
// endpoint: filter by search term and field equality, sort by a configured
// comparator, then paginate. The entity handlers only differ in the Config
// they pass in.
package listing

import (
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction of a sort.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

const DefaultPageSize = 10

// Query carries the user's view parameters for one request.
type Query struct {
	Search    string
	Filters   map[string]string // field name -> exact value, ANDed
	SortField string
	Dir       Direction
	Page      int // 1-based; clamped to [1, TotalPages]
	PageSize  int
}

// Config describes how a record type participates in listing.
type Config[T any] struct {
	// SearchFields are the values the search term is matched against,
	// case-insensitive substring. An empty term matches everything.
	SearchFields []func(T) string
	// FilterFields maps a filter name to the record value it must equal.
	FilterFields map[string]func(T) string
	// Comparators maps a sort field to an ascending three-way compare.
	Comparators map[string]func(a, b T) int
	// DefaultSort is used when the query names no (or an unknown) field.
	DefaultSort string
}

// Page is one rendered page of results. StartIndex/EndIndex are 1-based and
// both zero for an empty result, giving the "Showing 0 to 0 of 0" view.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	StartIndex int `json:"start_index"`
	EndIndex   int `json:"end_index"`
}

// collator gives locale-aware ordering for string sort fields. A Collator
// mutates internal buffers on every comparison, so the shared instance is
// serialized behind collatorMu; list handlers sort concurrently.
var (
	collatorMu sync.Mutex
	collator   = collate.New(language.English, collate.IgnoreCase)
)

// ByString builds a locale-aware ascending comparator from a field getter.
func ByString[T any](get func(T) string) func(a, b T) int {
	return func(a, b T) int {
		collatorMu.Lock()
		defer collatorMu.Unlock()
		return collator.CompareString(get(a), get(b))
	}
}

// ByTime builds an ascending comparator over a timestamp field.
func ByTime[T any](get func(T) time.Time) func(a, b T) int {
	return func(a, b T) int {
		ta, tb := get(a), get(b)
		switch {
		case ta.Before(tb):
			return -1
		case ta.After(tb):
			return 1
		default:
			return 0
		}
	}
}

// ByInt builds an ascending comparator over a numeric field.
func ByInt[T any](get func(T) int64) func(a, b T) int {
	return func(a, b T) int {
		va, vb := get(a), get(b)
		switch {
		case va < vb:
			return -1
		case va > vb:
			return 1
		default:
			return 0
		}
	}
}

// Apply runs filter, sort and paginate over the full collection.
func Apply[T any](items []T, q Query, cfg Config[T]) Page[T] {
	filtered := Filter(items, q, cfg)
	Sort(filtered, q, cfg)
	return Paginate(filtered, q.Page, q.PageSize)
}

// Filter keeps records matching the search term on at least one searchable
// field AND equal to every active field filter.
func Filter[T any](items []T, q Query, cfg Config[T]) []T {
	term := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if term != "" && !matchesSearch(item, term, cfg.SearchFields) {
			continue
		}
		if !matchesFilters(item, q.Filters, cfg.FilterFields) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesSearch[T any](item T, term string, fields []func(T) string) bool {
	for _, get := range fields {
		if strings.Contains(strings.ToLower(get(item)), term) {
			return true
		}
	}
	return false
}

func matchesFilters[T any](item T, filters map[string]string, fields map[string]func(T) string) bool {
	for name, want := range filters {
		if want == "" {
			continue
		}
		get, ok := fields[name]
		if !ok || get(item) != want {
			return false
		}
	}
	return true
}

// Sort orders items in place, stably, by the query's sort field. Descending
// flips the comparator's sign; equal keys keep their original order.
func Sort[T any](items []T, q Query, cfg Config[T]) {
	field := q.SortField
	cmp, ok := cfg.Comparators[field]
	if !ok {
		field = cfg.DefaultSort
		if cmp, ok = cfg.Comparators[field]; !ok {
			return
		}
	}
	sign := 1
	if q.Dir == Descending {
		sign = -1
	}
	sort.SliceStable(items, func(i, j int) bool {
		return sign*cmp(items[i], items[j]) < 0
	})
}

// Paginate slices one 1-based page out of the ordered sequence. An empty
// sequence still reports one page so the view never divides by zero.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}
	result := Page[T]{
		Items:      items[start:end],
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   pageSize,
	}
	if total > 0 {
		result.StartIndex = start + 1
		result.EndIndex = end
	}
	return result
}
