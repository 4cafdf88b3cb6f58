package registry

import domain "github.com/hanko-field/storefront-content/internal/domain"

// listLayouts holds hand-tuned list page layouts keyed by vertical slug. Verticals
// without an entry use genericListLayout.
var listLayouts = map[string]func(domain.VerticalDefinition) []domain.Block{
	"restaurants": func(v domain.VerticalDefinition) []domain.Block {
		return []domain.Block{
			{BlockType: "hero", Heading: v.Title, Body: v.Description, Variant: "image"},
			{BlockType: "filter-bar", Source: v.Endpoint},
			{BlockType: "map", Source: v.Endpoint, Variant: "clustered"},
			{BlockType: "listing-grid", Source: v.Endpoint, Variant: v.CardLayout, Limit: 24},
			{BlockType: "reviews", Heading: "What diners say", Limit: 6},
		}
	},
	"healthcare": func(v domain.VerticalDefinition) []domain.Block {
		return []domain.Block{
			{BlockType: "hero", Heading: v.Title, Body: v.Description, Variant: "search"},
			{BlockType: "search", Source: v.Endpoint},
			{BlockType: "listing-list", Source: v.Endpoint, Variant: v.CardLayout, Limit: 20},
			{BlockType: "faq", Heading: "Frequently asked questions"},
		}
	},
	"events": func(v domain.VerticalDefinition) []domain.Block {
		return []domain.Block{
			{BlockType: "hero", Heading: v.Title, Body: v.Description, Variant: "carousel"},
			{BlockType: "calendar", Source: v.Endpoint},
			{BlockType: "listing-grid", Source: v.Endpoint, Variant: "grid", Limit: 12},
		}
	},
	"real-estate": func(v domain.VerticalDefinition) []domain.Block {
		return []domain.Block{
			{BlockType: "hero", Heading: v.Title, Body: v.Description, Variant: "search"},
			{BlockType: "filter-bar", Source: v.Endpoint},
			{BlockType: "map", Source: v.Endpoint, Variant: "split"},
			{BlockType: "listing-list", Source: v.Endpoint, Variant: v.CardLayout, Limit: 20},
		}
	},
	"travel": func(v domain.VerticalDefinition) []domain.Block {
		return []domain.Block{
			{BlockType: "hero", Heading: v.Title, Body: v.Description, Variant: "image"},
			{BlockType: "featured", Heading: "Trending destinations", Source: v.Endpoint, Limit: 4},
			{BlockType: "listing-grid", Source: v.Endpoint, Variant: v.CardLayout, Limit: 24},
			{BlockType: "reviews", Heading: "Traveller reviews", Limit: 6},
		}
	},
}

func genericListLayout(v domain.VerticalDefinition) []domain.Block {
	return []domain.Block{
		{BlockType: "hero", Heading: v.Title, Body: v.Description},
		{BlockType: "listing-grid", Source: v.Endpoint, Variant: v.CardLayout, Limit: 24},
		{BlockType: "reviews", Limit: 6},
	}
}

func listLayoutFor(v domain.VerticalDefinition) []domain.Block {
	if build, ok := listLayouts[v.Slug]; ok {
		return build(v)
	}
	return genericListLayout(v)
}

func detailLayoutFor(v domain.VerticalDefinition) []domain.Block {
	return []domain.Block{
		{BlockType: "detail-header", Source: v.Endpoint},
		{BlockType: "gallery", Source: v.Endpoint},
		{BlockType: "detail-body", Source: v.Endpoint},
		{BlockType: "reviews", Limit: 10},
		{BlockType: "related", Heading: "More in " + v.Title, Source: v.Endpoint, Variant: v.CardLayout, Limit: 4},
	}
}
