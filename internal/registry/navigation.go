package registry

import (
	"strings"

	domain "github.com/hanko-field/storefront-content/internal/domain"
)

type navGroup struct {
	category domain.VerticalCategory
	label    string
}

// headerGroups fixes the order and labels of the top-level header sections.
var headerGroups = []navGroup{
	{category: domain.CategoryCommerce, label: "Commerce"},
	{category: domain.CategoryServices, label: "Services"},
	{category: domain.CategoryLifestyle, label: "Lifestyle"},
	{category: domain.CategoryCommunity, label: "Community"},
}

func buildNavigation(tenantID string, defs []domain.VerticalDefinition) []domain.NavigationEntry {
	return []domain.NavigationEntry{
		headerNavigation(tenantID, defs),
		footerNavigation(tenantID, defs),
	}
}

func headerNavigation(tenantID string, defs []domain.VerticalDefinition) domain.NavigationEntry {
	items := make([]domain.NavigationItem, 0, len(headerGroups))
	for i, group := range headerGroups {
		groupID := "nav-header-" + string(group.category)
		var children []domain.NavigationItem
		for _, v := range defs {
			if v.Category != group.category {
				continue
			}
			children = append(children, domain.NavigationItem{
				ID:    groupID + "-" + v.Slug,
				Label: v.Title,
				URL:   "/" + v.Slug,
				Order: len(children),
			})
		}
		items = append(items, domain.NavigationItem{
			ID:       groupID,
			Label:    group.label,
			URL:      "/categories#" + strings.ToLower(group.label),
			Order:    i,
			Children: children,
		})
	}
	return navigationEntry(tenantID, domain.LocationHeader, "Main Navigation", items)
}

func footerNavigation(tenantID string, defs []domain.VerticalDefinition) domain.NavigationEntry {
	items := make([]domain.NavigationItem, 0, len(defs))
	for i, v := range defs {
		items = append(items, domain.NavigationItem{
			ID:    "nav-footer-" + v.Slug,
			Label: v.Title,
			URL:   "/" + v.Slug,
			Order: i,
		})
	}
	return navigationEntry(tenantID, domain.LocationFooter, "Footer Navigation", items)
}

func navigationEntry(tenantID string, location domain.NavigationLocation, name string, items []domain.NavigationItem) domain.NavigationEntry {
	return domain.NavigationEntry{
		ID:        "nav-" + string(location),
		CreatedAt: buildTimestamp,
		UpdatedAt: buildTimestamp,
		Status:    domain.StatusPublished,
		Name:      name,
		Slug:      string(location),
		Tenant:    tenantID,
		Location:  location,
		Locale:    domain.LocaleAll,
		Items:     items,
	}
}
