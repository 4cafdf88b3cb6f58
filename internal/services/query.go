package services

import (
	"sort"
	"strings"

	domain "github.com/hanko-field/storefront-content/internal/domain"
	"github.com/hanko-field/storefront-content/internal/filter"
	"github.com/hanko-field/storefront-content/internal/registry"
)

const (
	// DefaultQueryLimit applies when a query omits or underflows its limit.
	DefaultQueryLimit = 10
	// DefaultQueryPage applies when a query omits or underflows its page number.
	DefaultQueryPage = 1
)

func queryPages(reg *registry.Registry, query PageQuery) domain.PaginatedDocs[domain.ContentPage] {
	limit := query.Limit
	if limit < 1 {
		limit = DefaultQueryLimit
	}
	pageNum := query.Page
	if pageNum < 1 {
		pageNum = DefaultQueryPage
	}

	selected := make([]*domain.ContentPage, 0, reg.Len())
	if query.Where == nil {
		reg.Each(func(page *domain.ContentPage) bool {
			selected = append(selected, page)
			return true
		})
	} else {
		match := filter.Matcher(*query.Where)
		reg.Each(func(page *domain.ContentPage) bool {
			if match(page) {
				selected = append(selected, page)
			}
			return true
		})
	}

	if field, desc := parseSort(query.Sort); field != "" {
		sort.SliceStable(selected, func(i, j int) bool {
			a, _ := filter.FieldValue(selected[i], field)
			b, _ := filter.FieldValue(selected[j], field)
			if desc {
				return filter.Compare(a, b) > 0
			}
			return filter.Compare(a, b) < 0
		})
	}

	total := len(selected)
	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}

	start := total
	if pageNum-1 < totalPages {
		start = min((pageNum-1)*limit, total)
	}
	end := min(start+limit, total)

	docs := make([]domain.ContentPage, 0, end-start)
	for _, page := range selected[start:end] {
		docs = append(docs, page.Clone())
	}

	return domain.PaginatedDocs[domain.ContentPage]{
		Docs:        docs,
		TotalDocs:   total,
		Limit:       limit,
		Page:        pageNum,
		TotalPages:  totalPages,
		HasNextPage: pageNum < totalPages,
		HasPrevPage: pageNum > 1,
	}
}

func parseSort(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if field, ok := strings.CutPrefix(raw, "-"); ok {
		return strings.TrimSpace(field), true
	}
	return raw, false
}
