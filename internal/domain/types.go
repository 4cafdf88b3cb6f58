package domain

import "time"

// PageStatus captures the publication lifecycle of registry entries.
type PageStatus string

const (
	// StatusPublished marks entries visible to resolution and navigation lookups.
	StatusPublished PageStatus = "published"
	// StatusDraft marks entries that exist but are never served.
	StatusDraft PageStatus = "draft"
)

// Template enumerates the rendering kinds a content page can use.
type Template string

const (
	TemplateVerticalList   Template = "vertical-list"
	TemplateVerticalDetail Template = "vertical-detail"
	TemplateLanding        Template = "landing"
	TemplateStatic         Template = "static"
	TemplateCategory       Template = "category"
	TemplateNodeBrowser    Template = "node-browser"
	TemplateCustom         Template = "custom"
)

const (
	// LocaleAll is the wildcard locale matching every requested locale.
	LocaleAll = "all"
	// CountryGlobal is the wildcard country code matching every request.
	CountryGlobal = "global"
)

// VerticalCategory groups verticals into the top-level navigation sections.
type VerticalCategory string

const (
	CategoryCommerce  VerticalCategory = "commerce"
	CategoryServices  VerticalCategory = "services"
	CategoryLifestyle VerticalCategory = "lifestyle"
	CategoryCommunity VerticalCategory = "community"
)

// VerticalDefinition is the authored source from which list/detail pages and navigation
// groups are derived.
type VerticalDefinition struct {
	Slug         string           `json:"slug" yaml:"slug"`
	Title        string           `json:"title" yaml:"title"`
	Endpoint     string           `json:"endpoint" yaml:"endpoint"`
	Description  string           `json:"description" yaml:"description"`
	FilterFields []string         `json:"filterFields" yaml:"filterFields"`
	SortFields   []string         `json:"sortFields" yaml:"sortFields"`
	CardLayout   string           `json:"cardLayout" yaml:"cardLayout"`
	Category     VerticalCategory `json:"category" yaml:"category"`
}

// VerticalConfig carries the data-source hints copied onto vertical pages.
type VerticalConfig struct {
	Slug         string   `json:"slug" yaml:"slug"`
	Endpoint     string   `json:"endpoint" yaml:"endpoint"`
	CardLayout   string   `json:"cardLayout,omitempty" yaml:"cardLayout,omitempty"`
	FilterFields []string `json:"filterFields,omitempty" yaml:"filterFields,omitempty"`
	SortFields   []string `json:"sortFields,omitempty" yaml:"sortFields,omitempty"`
}

// Block is one presentational section of a page layout.
type Block struct {
	BlockType string `json:"blockType" yaml:"blockType"`
	Heading   string `json:"heading,omitempty" yaml:"heading,omitempty"`
	Body      string `json:"body,omitempty" yaml:"body,omitempty"`
	Source    string `json:"source,omitempty" yaml:"source,omitempty"`
	Variant   string `json:"variant,omitempty" yaml:"variant,omitempty"`
	Limit     int    `json:"limit,omitempty" yaml:"limit,omitempty"`
}

// SEOMeta holds metadata overrides rendered into the document head.
type SEOMeta struct {
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	OGImage     string `json:"ogImage,omitempty" yaml:"ogImage,omitempty"`
}

// ContentPage is a resolvable storefront page scoped to one tenant.
type ContentPage struct {
	ID             string          `json:"id" yaml:"id"`
	CreatedAt      time.Time       `json:"createdAt" yaml:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt" yaml:"updatedAt"`
	Status         PageStatus      `json:"status" yaml:"status"`
	Title          string          `json:"title" yaml:"title"`
	Slug           string          `json:"slug" yaml:"slug"`
	Path           string          `json:"path" yaml:"path"`
	Template       Template        `json:"template" yaml:"template"`
	Tenant         string          `json:"tenant" yaml:"tenant"`
	Locale         string          `json:"locale" yaml:"locale"`
	CountryCode    string          `json:"countryCode" yaml:"countryCode"`
	RegionZone     RegionZone      `json:"regionZone" yaml:"regionZone"`
	NodeID         string          `json:"nodeId,omitempty" yaml:"nodeId,omitempty"`
	Vertical       *VerticalConfig `json:"vertical,omitempty" yaml:"vertical,omitempty"`
	Layout         []Block         `json:"layout" yaml:"layout"`
	SEO            SEOMeta         `json:"seo" yaml:"seo"`
	GovernanceTags []string        `json:"governanceTags,omitempty" yaml:"governanceTags,omitempty"`
}

// Clone returns a deep copy so callers never share slices with the registry.
func (p ContentPage) Clone() ContentPage {
	cp := p
	if p.Vertical != nil {
		v := *p.Vertical
		v.FilterFields = copyStrings(p.Vertical.FilterFields)
		v.SortFields = copyStrings(p.Vertical.SortFields)
		cp.Vertical = &v
	}
	if p.Layout != nil {
		cp.Layout = make([]Block, len(p.Layout))
		copy(cp.Layout, p.Layout)
	}
	cp.GovernanceTags = copyStrings(p.GovernanceTags)
	return cp
}

// NavigationLocation names where a navigation tree is rendered.
type NavigationLocation string

const (
	LocationHeader  NavigationLocation = "header"
	LocationFooter  NavigationLocation = "footer"
	LocationSidebar NavigationLocation = "sidebar"
	LocationMobile  NavigationLocation = "mobile"
)

// NavigationItem is a single link in a navigation tree.
type NavigationItem struct {
	ID       string           `json:"id" yaml:"id"`
	Label    string           `json:"label" yaml:"label"`
	URL      string           `json:"url" yaml:"url"`
	Order    int              `json:"order" yaml:"order"`
	Children []NavigationItem `json:"children,omitempty" yaml:"children,omitempty"`
}

// NavigationEntry is a named navigation tree for one tenant and placement.
type NavigationEntry struct {
	ID        string             `json:"id" yaml:"id"`
	CreatedAt time.Time          `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" yaml:"updatedAt"`
	Status    PageStatus         `json:"status" yaml:"status"`
	Name      string             `json:"name" yaml:"name"`
	Slug      string             `json:"slug" yaml:"slug"`
	Tenant    string             `json:"tenant" yaml:"tenant"`
	Location  NavigationLocation `json:"location" yaml:"location"`
	Locale    string             `json:"locale" yaml:"locale"`
	Items     []NavigationItem   `json:"items" yaml:"items"`
}

// Clone returns a deep copy of the navigation tree.
func (n NavigationEntry) Clone() NavigationEntry {
	cp := n
	cp.Items = cloneItems(n.Items)
	return cp
}

func cloneItems(items []NavigationItem) []NavigationItem {
	if items == nil {
		return nil
	}
	out := make([]NavigationItem, len(items))
	for i, item := range items {
		out[i] = item
		out[i].Children = cloneItems(item.Children)
	}
	return out
}

// PaginatedDocs packages an offset-paginated result set. Field names match the remote
// content service so local and remote results can be handled uniformly.
type PaginatedDocs[T any] struct {
	Docs        []T  `json:"docs" yaml:"docs"`
	TotalDocs   int  `json:"totalDocs" yaml:"totalDocs"`
	Limit       int  `json:"limit" yaml:"limit"`
	Page        int  `json:"page" yaml:"page"`
	TotalPages  int  `json:"totalPages" yaml:"totalPages"`
	HasNextPage bool `json:"hasNextPage" yaml:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage" yaml:"hasPrevPage"`
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
