package filter

import (
	"cmp"
	"reflect"
	"strings"
	"time"

	domain "github.com/hanko-field/storefront-content/internal/domain"
)

var fields = []string{
	"id", "title", "slug", "path", "template", "status", "tenant", "locale",
	"countryCode", "regionZone", "nodeId", "vertical", "createdAt", "updatedAt",
}

// Fields returns the page field names readable by where clauses and sort keys.
func Fields() []string {
	return append([]string(nil), fields...)
}

// FieldValue reads a named page field. Unknown names and unset optional fields report
// false. Timestamps are returned as RFC3339 strings and the vertical field as its slug.
func FieldValue(page *domain.ContentPage, name string) (any, bool) {
	if page == nil {
		return nil, false
	}
	switch name {
	case "id":
		return page.ID, true
	case "title":
		return page.Title, true
	case "slug":
		return page.Slug, true
	case "path":
		return page.Path, true
	case "template":
		return string(page.Template), true
	case "status":
		return string(page.Status), true
	case "tenant":
		return page.Tenant, true
	case "locale":
		return page.Locale, true
	case "countryCode":
		return page.CountryCode, true
	case "regionZone":
		return string(page.RegionZone), true
	case "nodeId":
		if page.NodeID == "" {
			return nil, false
		}
		return page.NodeID, true
	case "vertical":
		if page.Vertical == nil {
			return nil, false
		}
		return page.Vertical.Slug, true
	case "createdAt":
		return page.CreatedAt.UTC().Format(time.RFC3339), true
	case "updatedAt":
		return page.UpdatedAt.UTC().Format(time.RFC3339), true
	default:
		return nil, false
	}
}

// Compare orders two field values: undefined sorts before booleans, booleans before
// numbers and numbers before strings. Values of the same kind compare naturally.
func Compare(a, b any) int {
	a, b = normalizeValue(a), normalizeValue(b)
	if ra, rb := rank(a), rank(b); ra != rb {
		return cmp.Compare(ra, rb)
	}
	switch av := a.(type) {
	case bool:
		bv := b.(bool)
		switch {
		case av == bv:
			return 0
		case !av:
			return -1
		default:
			return 1
		}
	case float64:
		return cmp.Compare(av, b.(float64))
	case string:
		return strings.Compare(av, b.(string))
	default:
		return 0
	}
}

func rank(v any) int {
	switch v.(type) {
	case nil:
		return 0
	case bool:
		return 1
	case float64:
		return 2
	case string:
		return 3
	default:
		return 4
	}
}

func stringKind(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String()
	}
	return v
}
