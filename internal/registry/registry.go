package registry

import (
	"sync"
	"time"

	domain "github.com/hanko-field/storefront-content/internal/domain"
)

const (
	// DefaultTenantID owns the compiled-in registry served by Default.
	DefaultTenantID = "storefront"
	// SiteName is appended to generated SEO titles.
	SiteName = "Storefront"
)

var buildTimestamp = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// BuildTimestamp is stamped on every generated entry so that construction is
// reproducible across processes.
func BuildTimestamp() time.Time {
	return buildTimestamp
}

// Registry is an immutable set of content pages and navigation entries. It is safe for
// concurrent reads once constructed.
type Registry struct {
	pages      []domain.ContentPage
	navigation []domain.NavigationEntry
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return Build(DefaultTenantID)
})

// Default returns the registry for DefaultTenantID, constructing it on first use.
func Default() *Registry {
	return defaultRegistry()
}

// ForTenant returns the registry owned by tenantID, reusing the memoized default
// registry when tenantID is DefaultTenantID.
func ForTenant(tenantID string) *Registry {
	if tenantID == DefaultTenantID {
		return Default()
	}
	return Build(tenantID)
}

// Build derives the full registry for a tenant from the static vertical table and the
// hand-authored pages. The result depends only on tenantID.
func Build(tenantID string) *Registry {
	pages := make([]domain.ContentPage, 0, len(verticals)*2+8)
	for _, v := range verticals {
		pages = append(pages, listPage(tenantID, v), detailTemplate(tenantID, v))
	}
	pages = append(pages, authoredPages(tenantID)...)
	return &Registry{
		pages:      pages,
		navigation: buildNavigation(tenantID, verticals),
	}
}

// New wraps caller supplied entries. The slices are copied; later changes by the caller
// do not affect the registry.
func New(pages []domain.ContentPage, navigation []domain.NavigationEntry) *Registry {
	reg := &Registry{
		pages:      make([]domain.ContentPage, len(pages)),
		navigation: make([]domain.NavigationEntry, len(navigation)),
	}
	for i, p := range pages {
		reg.pages[i] = p.Clone()
	}
	for i, n := range navigation {
		reg.navigation[i] = n.Clone()
	}
	return reg
}

// Len reports the number of pages.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.pages)
}

// Pages returns a deep copy of every page in registry order.
func (r *Registry) Pages() []domain.ContentPage {
	if r == nil {
		return nil
	}
	out := make([]domain.ContentPage, len(r.pages))
	for i, p := range r.pages {
		out[i] = p.Clone()
	}
	return out
}

// Each visits pages in registry order until fn returns false. The page pointer is only
// valid for the duration of the call and must not be modified; clone it to retain it.
func (r *Registry) Each(fn func(page *domain.ContentPage) bool) {
	if r == nil || fn == nil {
		return
	}
	for i := range r.pages {
		if !fn(&r.pages[i]) {
			return
		}
	}
}

// Navigation returns a deep copy of every navigation entry in registry order.
func (r *Registry) Navigation() []domain.NavigationEntry {
	if r == nil {
		return nil
	}
	out := make([]domain.NavigationEntry, len(r.navigation))
	for i, n := range r.navigation {
		out[i] = n.Clone()
	}
	return out
}

// EachNavigation visits navigation entries in registry order until fn returns false.
func (r *Registry) EachNavigation(fn func(entry *domain.NavigationEntry) bool) {
	if r == nil || fn == nil {
		return
	}
	for i := range r.navigation {
		if !fn(&r.navigation[i]) {
			return
		}
	}
}

func listPage(tenantID string, v domain.VerticalDefinition) domain.ContentPage {
	return domain.ContentPage{
		ID:          v.Slug + "-list",
		CreatedAt:   buildTimestamp,
		UpdatedAt:   buildTimestamp,
		Status:      domain.StatusPublished,
		Title:       v.Title,
		Slug:        v.Slug,
		Path:        v.Slug,
		Template:    domain.TemplateVerticalList,
		Tenant:      tenantID,
		Locale:      domain.LocaleAll,
		CountryCode: domain.CountryGlobal,
		RegionZone:  domain.RegionGlobal,
		Vertical:    verticalConfig(v),
		Layout:      listLayoutFor(v),
		SEO: domain.SEOMeta{
			Title:       v.Title + " | " + SiteName,
			Description: v.Description,
		},
		GovernanceTags: []string{"generated", string(v.Category)},
	}
}

func detailTemplate(tenantID string, v domain.VerticalDefinition) domain.ContentPage {
	return domain.ContentPage{
		ID:          v.Slug + "-detail",
		CreatedAt:   buildTimestamp,
		UpdatedAt:   buildTimestamp,
		Status:      domain.StatusPublished,
		Title:       v.Title + " Detail",
		Slug:        v.Slug + "/*",
		Path:        v.Slug + "/*",
		Template:    domain.TemplateVerticalDetail,
		Tenant:      tenantID,
		Locale:      domain.LocaleAll,
		CountryCode: domain.CountryGlobal,
		RegionZone:  domain.RegionGlobal,
		Vertical:    verticalConfig(v),
		Layout:      detailLayoutFor(v),
		SEO: domain.SEOMeta{
			Title:       v.Title + " | " + SiteName,
			Description: v.Description,
		},
		GovernanceTags: []string{"generated", "template", string(v.Category)},
	}
}

func verticalConfig(v domain.VerticalDefinition) *domain.VerticalConfig {
	return &domain.VerticalConfig{
		Slug:         v.Slug,
		Endpoint:     v.Endpoint,
		CardLayout:   v.CardLayout,
		FilterFields: append([]string(nil), v.FilterFields...),
		SortFields:   append([]string(nil), v.SortFields...),
	}
}
