package services

import (
	"context"

	domain "github.com/hanko-field/storefront-content/internal/domain"
	"github.com/hanko-field/storefront-content/internal/filter"
)

// PageService resolves single pages and answers filtered, paginated page queries.
type PageService interface {
	ResolvePage(ctx context.Context, req ResolveRequest) (domain.ContentPage, bool)
	QueryPages(ctx context.Context, query PageQuery) domain.PaginatedDocs[domain.ContentPage]
}

// NavigationService looks up prebuilt navigation trees.
type NavigationService interface {
	GetNavigation(ctx context.Context, tenantID string, location domain.NavigationLocation) (domain.NavigationEntry, bool)
}

// ResolveRequest identifies the page a storefront visitor asked for. Locale and
// CountryCode are optional; empty values match every page.
type ResolveRequest struct {
	Path        string
	TenantID    string
	Locale      string
	CountryCode string
}

// PageQuery selects, orders and slices registry pages. A nil Where skips filtering.
// Sort names a page field, prefixed with "-" for descending order.
type PageQuery struct {
	Where *filter.Where
	Limit int
	Page  int
	Sort  string
}

// ResolveStage names the cascade step that produced a resolution result.
type ResolveStage string

const (
	StageHome        ResolveStage = "home"
	StageCountry     ResolveStage = "country"
	StageRegion      ResolveStage = "region"
	StageGlobal      ResolveStage = "global"
	StageSynthesized ResolveStage = "synthesized"
	StageNotFound    ResolveStage = "not_found"
)
