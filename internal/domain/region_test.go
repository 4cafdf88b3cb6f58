package domain

import "testing"

func TestRegionForCountry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string
		want RegionZone
	}{
		{code: "SA", want: RegionGCCEU},
		{code: "ae", want: RegionGCCEU},
		{code: " de ", want: RegionGCCEU},
		{code: "EG", want: RegionMENA},
		{code: "JP", want: RegionAPAC},
		{code: "us", want: RegionAmericas},
		{code: "ZZ", want: RegionGlobal},
		{code: "", want: RegionGlobal},
		{code: "global", want: RegionGlobal},
	}
	for _, tc := range tests {
		if got := RegionForCountry(tc.code); got != tc.want {
			t.Fatalf("RegionForCountry(%q) = %s, want %s", tc.code, got, tc.want)
		}
	}
}

func TestIsGlobalCountry(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"", "global", "GLOBAL", " Global "} {
		if !IsGlobalCountry(code) {
			t.Fatalf("expected %q to be global", code)
		}
	}
	if IsGlobalCountry("SA") {
		t.Fatalf("expected SA to be country specific")
	}
}

func TestContentPageCloneIsDeep(t *testing.T) {
	t.Parallel()

	page := ContentPage{
		Vertical:       &VerticalConfig{Slug: "a", FilterFields: []string{"x"}},
		Layout:         []Block{{BlockType: "hero"}},
		GovernanceTags: []string{"generated"},
	}
	cp := page.Clone()
	cp.Vertical.Slug = "b"
	cp.Vertical.FilterFields[0] = "y"
	cp.Layout[0].BlockType = "grid"
	cp.GovernanceTags[0] = "authored"

	if page.Vertical.Slug != "a" || page.Vertical.FilterFields[0] != "x" {
		t.Fatalf("vertical aliased: %+v", page.Vertical)
	}
	if page.Layout[0].BlockType != "hero" || page.GovernanceTags[0] != "generated" {
		t.Fatalf("slices aliased: %+v", page)
	}
}
