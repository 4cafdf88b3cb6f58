package registry

import domain "github.com/hanko-field/storefront-content/internal/domain"

const homeIntroMarkdown = `
## Everything your city offers

Browse **restaurants**, book **healthcare** appointments and find local services from
verified vendors. Prices and availability come straight from each vendor.
`

const storeIntroMarkdown = `
Shop across every vertical with one cart. Delivery windows depend on the vendor and
your location.
`

const storeSaudiMarkdown = `
Free delivery in Riyadh, Jeddah and Dammam on orders over **SAR 100**.
`

const storeGulfMarkdown = `
توصيل سريع في جميع دول مجلس التعاون الخليجي.
`

const vendorsIntroMarkdown = `
Every vendor is reviewed before listing. Read the [vendor guidelines](/vendors/guidelines)
to start selling.
`

// authoredPages returns the hand-authored pages for a tenant. The Saudi store page
// precedes its wildcard counterpart; the Gulf regional store page follows the global one
// so it is only reached through the region stage.
func authoredPages(tenantID string) []domain.ContentPage {
	return []domain.ContentPage{
		authored(tenantID, authoredSpec{
			id:       "page-home",
			title:    "Home",
			path:     "",
			template: domain.TemplateLanding,
			layout: []domain.Block{
				{BlockType: "hero", Heading: "Welcome", Variant: "carousel"},
				{BlockType: "rich-text", Body: mustRenderMarkdown(homeIntroMarkdown)},
				{BlockType: "vertical-grid", Source: "/store/verticals"},
				{BlockType: "featured", Heading: "Popular this week", Source: "/store/featured", Limit: 8},
			},
			seo: domain.SEOMeta{Title: SiteName, Description: "Discover everything your city has to offer."},
		}),
		authored(tenantID, authoredSpec{
			id:       "page-store-sa",
			title:    "Store Saudi Arabia",
			path:     "store",
			template: domain.TemplateLanding,
			country:  "SA",
			region:   domain.RegionGCCEU,
			layout: []domain.Block{
				{BlockType: "hero", Heading: "Store", Variant: "image"},
				{BlockType: "rich-text", Body: mustRenderMarkdown(storeSaudiMarkdown)},
				{BlockType: "vertical-grid", Source: "/store/verticals"},
			},
			seo: domain.SEOMeta{Title: "Store | " + SiteName, Description: "Shop every vertical with delivery across Saudi Arabia."},
		}),
		authored(tenantID, authoredSpec{
			id:       "page-store",
			title:    "Store",
			path:     "store",
			template: domain.TemplateLanding,
			layout: []domain.Block{
				{BlockType: "hero", Heading: "Store", Variant: "image"},
				{BlockType: "rich-text", Body: mustRenderMarkdown(storeIntroMarkdown)},
				{BlockType: "vertical-grid", Source: "/store/verticals"},
				{BlockType: "featured", Heading: "Deals", Source: "/store/deals", Limit: 12},
			},
			seo: domain.SEOMeta{Title: "Store | " + SiteName, Description: "Shop every vertical in one place."},
		}),
		authored(tenantID, authoredSpec{
			id:       "page-store-gcc-ar",
			title:    "المتجر",
			path:     "store",
			template: domain.TemplateLanding,
			locale:   "ar",
			region:   domain.RegionGCCEU,
			layout: []domain.Block{
				{BlockType: "hero", Heading: "المتجر", Variant: "image"},
				{BlockType: "rich-text", Body: mustRenderMarkdown(storeGulfMarkdown)},
				{BlockType: "vertical-grid", Source: "/store/verticals"},
			},
			seo: domain.SEOMeta{Title: "المتجر | " + SiteName},
		}),
		authored(tenantID, authoredSpec{
			id:       "page-search",
			title:    "Search",
			path:     "search",
			template: domain.TemplateCustom,
			layout: []domain.Block{
				{BlockType: "search", Source: "/store/search"},
				{BlockType: "search-results", Source: "/store/search", Limit: 20},
			},
			seo: domain.SEOMeta{Title: "Search | " + SiteName, Description: "Search listings across every vertical."},
		}),
		authored(tenantID, authoredSpec{
			id:       "page-vendors",
			title:    "Vendors",
			path:     "vendors",
			template: domain.TemplateNodeBrowser,
			layout: []domain.Block{
				{BlockType: "hero", Heading: "Vendors"},
				{BlockType: "rich-text", Body: mustRenderMarkdown(vendorsIntroMarkdown)},
				{BlockType: "node-browser", Source: "/store/vendors", Limit: 30},
			},
			seo: domain.SEOMeta{Title: "Vendors | " + SiteName, Description: "Browse verified vendors."},
		}),
		authored(tenantID, authoredSpec{
			id:       "page-categories",
			title:    "Categories",
			path:     "categories",
			template: domain.TemplateCategory,
			layout: []domain.Block{
				{BlockType: "hero", Heading: "Categories"},
				{BlockType: "category-tree", Source: "/store/verticals"},
			},
			seo: domain.SEOMeta{Title: "Categories | " + SiteName, Description: "Explore every category."},
		}),
	}
}

type authoredSpec struct {
	id       string
	title    string
	path     string
	template domain.Template
	locale   string
	country  string
	region   domain.RegionZone
	layout   []domain.Block
	seo      domain.SEOMeta
}

func authored(tenantID string, spec authoredSpec) domain.ContentPage {
	locale := spec.locale
	if locale == "" {
		locale = domain.LocaleAll
	}
	country := spec.country
	if country == "" {
		country = domain.CountryGlobal
	}
	region := spec.region
	if region == "" {
		region = domain.RegionGlobal
	}
	slug := spec.path
	if slug == "" {
		slug = "home"
	}
	return domain.ContentPage{
		ID:             spec.id,
		CreatedAt:      buildTimestamp,
		UpdatedAt:      buildTimestamp,
		Status:         domain.StatusPublished,
		Title:          spec.title,
		Slug:           slug,
		Path:           spec.path,
		Template:       spec.template,
		Tenant:         tenantID,
		Locale:         locale,
		CountryCode:    country,
		RegionZone:     region,
		Layout:         spec.layout,
		SEO:            spec.seo,
		GovernanceTags: []string{"authored"},
	}
}
