package registry

import domain "github.com/hanko-field/storefront-content/internal/domain"

// verticals is the source-of-truth table. Declaration order drives page order in the
// registry and child order in navigation.
var verticals = []domain.VerticalDefinition{
	{
		Slug:         "restaurants",
		Title:        "Restaurants",
		Endpoint:     "/store/restaurants",
		Description:  "Discover restaurants, cafes and takeaways near you.",
		FilterFields: []string{"cuisine", "price_range", "rating", "delivery"},
		SortFields:   []string{"rating", "name", "distance"},
		CardLayout:   "grid",
		Category:     domain.CategoryCommerce,
	},
	{
		Slug:         "grocery",
		Title:        "Grocery",
		Endpoint:     "/store/grocery",
		Description:  "Fresh produce and household essentials delivered fast.",
		FilterFields: []string{"category", "brand", "organic"},
		SortFields:   []string{"price", "name"},
		CardLayout:   "compact",
		Category:     domain.CategoryCommerce,
	},
	{
		Slug:         "fashion",
		Title:        "Fashion",
		Endpoint:     "/store/fashion",
		Description:  "Clothing, shoes and accessories from local boutiques.",
		FilterFields: []string{"gender", "size", "brand", "price_range"},
		SortFields:   []string{"price", "newest"},
		CardLayout:   "grid",
		Category:     domain.CategoryCommerce,
	},
	{
		Slug:         "electronics",
		Title:        "Electronics",
		Endpoint:     "/store/electronics",
		Description:  "Phones, laptops and smart home devices from trusted sellers.",
		FilterFields: []string{"brand", "condition", "price_range"},
		SortFields:   []string{"price", "rating", "newest"},
		CardLayout:   "grid",
		Category:     domain.CategoryCommerce,
	},
	{
		Slug:         "automotive",
		Title:        "Automotive",
		Endpoint:     "/store/automotive",
		Description:  "Cars, parts and workshop services in one place.",
		FilterFields: []string{"make", "model", "year", "condition"},
		SortFields:   []string{"price", "year"},
		CardLayout:   "list",
		Category:     domain.CategoryCommerce,
	},
	{
		Slug:         "healthcare",
		Title:        "Healthcare",
		Endpoint:     "/store/healthcare",
		Description:  "Find clinics, doctors and pharmacies and book appointments.",
		FilterFields: []string{"specialty", "insurance", "language"},
		SortFields:   []string{"rating", "name", "distance"},
		CardLayout:   "list",
		Category:     domain.CategoryServices,
	},
	{
		Slug:         "legal",
		Title:        "Legal Services",
		Endpoint:     "/store/legal",
		Description:  "Lawyers, notaries and legal consultants for every need.",
		FilterFields: []string{"practice_area", "language"},
		SortFields:   []string{"rating", "name"},
		CardLayout:   "list",
		Category:     domain.CategoryServices,
	},
	{
		Slug:         "financial-services",
		Title:        "Financial Services",
		Endpoint:     "/store/financial-services",
		Description:  "Banking, insurance and advisory services compared side by side.",
		FilterFields: []string{"service_type", "sharia_compliant"},
		SortFields:   []string{"rating", "name"},
		CardLayout:   "list",
		Category:     domain.CategoryServices,
	},
	{
		Slug:         "home-services",
		Title:        "Home Services",
		Endpoint:     "/store/home-services",
		Description:  "Cleaning, repairs and maintenance from verified providers.",
		FilterFields: []string{"service_type", "availability"},
		SortFields:   []string{"rating", "price"},
		CardLayout:   "grid",
		Category:     domain.CategoryServices,
	},
	{
		Slug:         "education",
		Title:        "Education",
		Endpoint:     "/store/education",
		Description:  "Schools, tutors and online courses for all ages.",
		FilterFields: []string{"level", "subject", "format"},
		SortFields:   []string{"rating", "price"},
		CardLayout:   "grid",
		Category:     domain.CategoryServices,
	},
	{
		Slug:         "fitness",
		Title:        "Fitness",
		Endpoint:     "/store/fitness",
		Description:  "Gyms, studios and personal trainers around the city.",
		FilterFields: []string{"activity", "membership"},
		SortFields:   []string{"rating", "price"},
		CardLayout:   "grid",
		Category:     domain.CategoryLifestyle,
	},
	{
		Slug:         "travel",
		Title:        "Travel",
		Endpoint:     "/store/travel",
		Description:  "Hotels, tours and experiences for your next trip.",
		FilterFields: []string{"destination", "stars", "price_range"},
		SortFields:   []string{"price", "rating"},
		CardLayout:   "grid",
		Category:     domain.CategoryLifestyle,
	},
	{
		Slug:         "events",
		Title:        "Events",
		Endpoint:     "/store/events",
		Description:  "Concerts, exhibitions and festivals happening soon.",
		FilterFields: []string{"category", "date", "venue"},
		SortFields:   []string{"date", "popularity"},
		CardLayout:   "calendar",
		Category:     domain.CategoryLifestyle,
	},
	{
		Slug:         "beauty",
		Title:        "Beauty & Wellness",
		Endpoint:     "/store/beauty",
		Description:  "Salons, spas and wellness treatments to book online.",
		FilterFields: []string{"service_type", "gender"},
		SortFields:   []string{"rating", "price"},
		CardLayout:   "grid",
		Category:     domain.CategoryLifestyle,
	},
	{
		Slug:         "real-estate",
		Title:        "Real Estate",
		Endpoint:     "/store/real-estate",
		Description:  "Homes and offices to rent or buy.",
		FilterFields: []string{"listing_type", "bedrooms", "price_range"},
		SortFields:   []string{"price", "newest"},
		CardLayout:   "map",
		Category:     domain.CategoryLifestyle,
	},
	{
		Slug:         "charities",
		Title:        "Charities",
		Endpoint:     "/store/charities",
		Description:  "Registered charities and causes you can support.",
		FilterFields: []string{"cause", "verified"},
		SortFields:   []string{"name", "raised"},
		CardLayout:   "list",
		Category:     domain.CategoryCommunity,
	},
	{
		Slug:         "volunteering",
		Title:        "Volunteering",
		Endpoint:     "/store/volunteering",
		Description:  "Volunteer opportunities with local organisations.",
		FilterFields: []string{"cause", "commitment"},
		SortFields:   []string{"date", "name"},
		CardLayout:   "list",
		Category:     domain.CategoryCommunity,
	},
	{
		Slug:         "classifieds",
		Title:        "Classifieds",
		Endpoint:     "/store/classifieds",
		Description:  "Buy, sell and swap with your neighbours.",
		FilterFields: []string{"category", "condition", "price_range"},
		SortFields:   []string{"newest", "price"},
		CardLayout:   "compact",
		Category:     domain.CategoryCommunity,
	},
	{
		Slug:         "community-groups",
		Title:        "Community Groups",
		Endpoint:     "/store/community-groups",
		Description:  "Clubs and interest groups meeting in your area.",
		FilterFields: []string{"interest", "language"},
		SortFields:   []string{"members", "name"},
		CardLayout:   "grid",
		Category:     domain.CategoryCommunity,
	},
}

// Verticals returns a copy of the vertical definition table in declaration order.
func Verticals() []domain.VerticalDefinition {
	out := make([]domain.VerticalDefinition, len(verticals))
	for i, v := range verticals {
		out[i] = v
		out[i].FilterFields = append([]string(nil), v.FilterFields...)
		out[i].SortFields = append([]string(nil), v.SortFields...)
	}
	return out
}
