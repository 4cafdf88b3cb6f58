package services

import (
	"strings"
	"unicode"
	"unicode/utf8"

	domain "github.com/hanko-field/storefront-content/internal/domain"
	"github.com/hanko-field/storefront-content/internal/registry"
)

type pagePredicate func(page *domain.ContentPage) bool

// resolvePage runs the resolution cascade over reg. Stages are evaluated in order and
// the first page in registry order satisfying a stage wins.
func resolvePage(reg *registry.Registry, req ResolveRequest) (domain.ContentPage, ResolveStage, bool) {
	path := strings.Trim(req.Path, "/")
	tenantID := req.TenantID
	locale := strings.TrimSpace(req.Locale)
	country := strings.TrimSpace(req.CountryCode)

	localeMatches := func(page *domain.ContentPage) bool {
		return locale == "" || page.Locale == locale || page.Locale == domain.LocaleAll
	}

	if path == "" {
		page, ok := first(reg, func(page *domain.ContentPage) bool {
			return page.Path == "" &&
				page.Status == domain.StatusPublished &&
				page.Tenant == tenantID &&
				localeMatches(page)
		})
		if !ok {
			return domain.ContentPage{}, StageNotFound, false
		}
		return page, StageHome, true
	}

	base := func(page *domain.ContentPage) bool {
		return page.Path == path &&
			page.Status == domain.StatusPublished &&
			page.Tenant == tenantID &&
			localeMatches(page)
	}

	if !domain.IsGlobalCountry(country) {
		if page, ok := first(reg, func(page *domain.ContentPage) bool {
			return base(page) && strings.EqualFold(page.CountryCode, country)
		}); ok {
			return page, StageCountry, true
		}

		if zone := domain.RegionForCountry(country); zone != domain.RegionGlobal {
			if page, ok := first(reg, func(page *domain.ContentPage) bool {
				return base(page) && page.CountryCode == domain.CountryGlobal && page.RegionZone == zone
			}); ok {
				return page, StageRegion, true
			}
		}
	}

	if page, ok := first(reg, func(page *domain.ContentPage) bool {
		return base(page) && page.CountryCode == domain.CountryGlobal
	}); ok {
		return page, StageGlobal, true
	}

	parentSlug, itemSlug, nested := strings.Cut(path, "/")
	if !nested {
		return domain.ContentPage{}, StageNotFound, false
	}
	list, ok := first(reg, func(page *domain.ContentPage) bool {
		return page.Path == parentSlug &&
			page.Template == domain.TemplateVerticalList &&
			page.Status == domain.StatusPublished &&
			page.Tenant == tenantID &&
			localeMatches(page)
	})
	if !ok {
		return domain.ContentPage{}, StageNotFound, false
	}
	detail, ok := first(reg, func(page *domain.ContentPage) bool {
		return page.Path == parentSlug+"/*" && page.Tenant == tenantID
	})
	if !ok {
		return domain.ContentPage{}, StageNotFound, false
	}
	return SynthesizeDetailPage(detail, list, itemSlug), StageSynthesized, true
}

func first(reg *registry.Registry, match pagePredicate) (domain.ContentPage, bool) {
	var (
		found domain.ContentPage
		ok    bool
	)
	reg.Each(func(page *domain.ContentPage) bool {
		if match(page) {
			found = page.Clone()
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

// SynthesizeDetailPage builds the page for one item of a vertical from its detail
// template and list page. Neither input is modified.
func SynthesizeDetailPage(template, list domain.ContentPage, itemSlug string) domain.ContentPage {
	label := Humanize(itemSlug)
	page := template.Clone()
	page.ID = template.ID + "-" + itemSlug
	page.Path = list.Path + "/" + itemSlug
	page.Slug = page.Path
	page.Title = list.Title + " - " + label
	page.SEO.Title = label + " | " + list.Title + " | " + registry.SiteName
	return page
}

// Humanize turns a hyphenated slug into a title: "best-pizza" becomes "Best Pizza".
func Humanize(slug string) string {
	tokens := strings.Split(slug, "-")
	for i, token := range tokens {
		r, size := utf8.DecodeRuneInString(token)
		if size == 0 {
			continue
		}
		tokens[i] = string(unicode.ToUpper(r)) + token[size:]
	}
	return strings.Join(tokens, " ")
}
