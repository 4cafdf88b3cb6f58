package filter

import (
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/hanko-field/storefront-content/internal/domain"
)

func samplePage() domain.ContentPage {
	return domain.ContentPage{
		ID:          "restaurants-list",
		CreatedAt:   time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		Status:      domain.StatusPublished,
		Title:       "Restaurants",
		Slug:        "restaurants",
		Path:        "restaurants",
		Template:    domain.TemplateVerticalList,
		Tenant:      "tenant-a",
		Locale:      domain.LocaleAll,
		CountryCode: domain.CountryGlobal,
		RegionZone:  domain.RegionGlobal,
		Vertical:    &domain.VerticalConfig{Slug: "restaurants", Endpoint: "/store/restaurants"},
	}
}

func mustParse(t *testing.T, raw string) Where {
	t.Helper()
	where, err := ParseJSON([]byte(raw))
	require.NoError(t, err)
	return where
}

func TestMatchesScalarEquality(t *testing.T) {
	t.Parallel()

	page := samplePage()
	require.True(t, Matches(page, mustParse(t, `{"template":"vertical-list"}`)))
	require.False(t, Matches(page, mustParse(t, `{"template":"landing"}`)))
	require.False(t, Matches(page, mustParse(t, `{"template":1}`)))
	require.False(t, Matches(page, mustParse(t, `{"unknownField":"x"}`)))
	require.False(t, Matches(page, mustParse(t, `{"nodeId":null}`)))
}

func TestMatchesEmptyClause(t *testing.T) {
	t.Parallel()

	require.True(t, Matches(samplePage(), Where{}))
	require.True(t, Matches(samplePage(), mustParse(t, `{}`)))
	require.True(t, Matches(samplePage(), mustParse(t, ``)))
	require.True(t, mustParse(t, `{}`).IsEmpty())
}

func TestMatchesOperators(t *testing.T) {
	t.Parallel()

	page := samplePage()
	tests := []struct {
		name  string
		where string
		want  bool
	}{
		{name: "equals", where: `{"slug":{"equals":"restaurants"}}`, want: true},
		{name: "equals mismatch", where: `{"slug":{"equals":"grocery"}}`, want: false},
		{name: "not equals", where: `{"slug":{"not_equals":"grocery"}}`, want: true},
		{name: "not equals undefined", where: `{"nodeId":{"not_equals":"n1"}}`, want: true},
		{name: "in", where: `{"status":{"in":["draft","published"]}}`, want: true},
		{name: "in miss", where: `{"status":{"in":["draft"]}}`, want: false},
		{name: "in undefined", where: `{"nodeId":{"in":["n1"]}}`, want: false},
		{name: "not in", where: `{"status":{"not_in":["draft"]}}`, want: true},
		{name: "not in hit", where: `{"status":{"not_in":["published"]}}`, want: false},
		{name: "like prefix", where: `{"title":{"like":"rest%"}}`, want: true},
		{name: "like anchored", where: `{"title":{"like":"staur"}}`, want: false},
		{name: "like inner", where: `{"title":{"like":"%STAUR%"}}`, want: true},
		{name: "like literal dot", where: `{"title":{"like":"r.staurants"}}`, want: false},
		{name: "like undefined", where: `{"nodeId":{"like":"%"}}`, want: false},
		{name: "contains", where: `{"title":{"contains":"RANT"}}`, want: true},
		{name: "contains miss", where: `{"title":{"contains":"pizza"}}`, want: false},
		{name: "contains non string", where: `{"nodeId":{"contains":"x"}}`, want: true},
		{name: "exists", where: `{"vertical":{"exists":true}}`, want: true},
		{name: "exists false", where: `{"nodeId":{"exists":false}}`, want: true},
		{name: "exists false defined", where: `{"title":{"exists":false}}`, want: false},
		{name: "conjunction", where: `{"title":{"contains":"rest","not_equals":"Restaurants"}}`, want: false},
		{name: "unknown operator ignored", where: `{"title":{"regex":".*","contains":"rest"}}`, want: true},
		{name: "only unknown operators", where: `{"title":{"between":[1,2]}}`, want: true},
		{name: "timestamp", where: `{"createdAt":"2025-01-01T00:00:00Z"}`, want: true},
		{name: "vertical slug", where: `{"vertical":"restaurants"}`, want: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Matches(page, mustParse(t, tc.where)))
		})
	}
}

func TestMatchesLogicalCombinators(t *testing.T) {
	t.Parallel()

	page := samplePage()
	require.True(t, Matches(page, mustParse(t, `{"and":[{"status":"published"},{"tenant":"tenant-a"}]}`)))
	require.False(t, Matches(page, mustParse(t, `{"and":[{"status":"published"},{"tenant":"tenant-b"}]}`)))
	require.True(t, Matches(page, mustParse(t, `{"or":[{"tenant":"tenant-b"},{"slug":"restaurants"}]}`)))
	require.False(t, Matches(page, mustParse(t, `{"or":[{"tenant":"tenant-b"},{"slug":"grocery"}]}`)))
	require.False(t, Matches(page, mustParse(t, `{"or":[]}`)))
	require.True(t, Matches(page, mustParse(t, `{"and":[]}`)))
	require.True(t, Matches(page, mustParse(t,
		`{"and":[{"or":[{"locale":"ar"},{"locale":"all"}]},{"template":{"in":["vertical-list","landing"]}}]}`)))
}

func TestMatchesProgrammaticClause(t *testing.T) {
	t.Parallel()

	where := Where{Conditions: []Condition{
		Field("template", Equals(domain.TemplateVerticalList)),
		Field("status", In(domain.StatusPublished, domain.StatusDraft)),
	}}
	require.True(t, Matches(samplePage(), where))
	require.False(t, Matches(samplePage(), Where{Conditions: []Condition{Field("title", Operator{})}}))
}

func TestProgrammaticOrClause(t *testing.T) {
	t.Parallel()

	nonMatching := Where{Or: []Where{{Conditions: []Condition{Field("template", Equals(domain.TemplateLanding))}}}}
	require.False(t, nonMatching.IsEmpty())
	require.False(t, Matches(samplePage(), nonMatching))

	emptyOr := Where{Or: []Where{}}
	require.False(t, emptyOr.IsEmpty())
	require.False(t, Matches(samplePage(), emptyOr))
	require.Equal(t, Matches(samplePage(), mustParse(t, `{"or":[]}`)), Matches(samplePage(), emptyOr))

	require.True(t, Where{}.IsEmpty())
	require.True(t, Matches(samplePage(), Where{}))
}

func TestFieldsReturnsCopy(t *testing.T) {
	t.Parallel()

	names := Fields()
	names[0] = "mutated"
	require.Equal(t, "id", Fields()[0])
}

func TestParseRejectsMalformedClauses(t *testing.T) {
	t.Parallel()

	inputs := []string{
		`[]`,
		`"template"`,
		`{"and":{"status":"published"}}`,
		`{"or":["published"]}`,
		`{"status":{"in":"published"}}`,
		`{"status":{"not_in":{"a":1}}}`,
		`{"title":{"like":1}}`,
		`{"title":{"contains":true}}`,
		`{"nodeId":{"exists":"yes"}}`,
		`{"status":["published"]}`,
		`{"and":[{"title":{"like":3}}]}`,
		`{"status":`,
		`{} {}`,
	}
	for _, input := range inputs {
		_, err := ParseJSON([]byte(input))
		require.Error(t, err, input)
		require.True(t, errors.Is(err, ErrInvalidWhere), input)
	}
}

func TestFieldValue(t *testing.T) {
	t.Parallel()

	page := samplePage()
	for _, name := range Fields() {
		value, ok := FieldValue(&page, name)
		if name == "nodeId" {
			require.False(t, ok)
			continue
		}
		require.True(t, ok, name)
		require.IsType(t, "", value, name)
	}

	_, ok := FieldValue(&page, "layout")
	require.False(t, ok)
	_, ok = FieldValue(nil, "id")
	require.False(t, ok)

	page.Vertical = nil
	_, ok = FieldValue(&page, "vertical")
	require.False(t, ok)
}

func TestCompareOrdersKindsAndValues(t *testing.T) {
	t.Parallel()

	values := []any{"b", 2, nil, true, "a", 1.5, false}
	sort.SliceStable(values, func(i, j int) bool { return Compare(values[i], values[j]) < 0 })
	require.Equal(t, []any{nil, false, true, 1.5, 2, "a", "b"}, values)

	require.Zero(t, Compare("x", "x"))
	require.Zero(t, Compare(nil, nil))
	require.Equal(t, -1, Compare(domain.TemplateCustom, domain.TemplateLanding))
}

func TestOpKindString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "not_in", OpNotIn.String())
	require.Equal(t, "OpKind(0)", OpKind(0).String())
}
