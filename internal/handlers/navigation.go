package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	domain "github.com/hanko-field/storefront-content/internal/domain"
	"github.com/hanko-field/storefront-content/internal/platform/httpx"
	"github.com/hanko-field/storefront-content/internal/platform/requestctx"
	"github.com/hanko-field/storefront-content/internal/services"
)

// NavigationHandlers exposes navigation trees.
type NavigationHandlers struct {
	navigation    services.NavigationService
	defaultTenant string
	cacheMaxAge   time.Duration
}

// NavigationOption customises construction of NavigationHandlers.
type NavigationOption func(*NavigationHandlers)

// WithNavigationService injects the navigation service dependency.
func WithNavigationService(svc services.NavigationService) NavigationOption {
	return func(h *NavigationHandlers) {
		h.navigation = svc
	}
}

// WithNavigationDefaultTenant sets the tenant used when the request carries none.
func WithNavigationDefaultTenant(tenant string) NavigationOption {
	return func(h *NavigationHandlers) {
		h.defaultTenant = strings.TrimSpace(tenant)
	}
}

// WithNavigationCacheMaxAge sets the max-age advertised on navigation responses.
func WithNavigationCacheMaxAge(maxAge time.Duration) NavigationOption {
	return func(h *NavigationHandlers) {
		if maxAge >= 0 {
			h.cacheMaxAge = maxAge
		}
	}
}

// NewNavigationHandlers constructs handlers for navigation endpoints.
func NewNavigationHandlers(opts ...NavigationOption) *NavigationHandlers {
	h := &NavigationHandlers{cacheMaxAge: defaultCacheMaxAge}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	return h
}

// Routes registers navigation endpoints against the provided router.
func (h *NavigationHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/{location}", h.getNavigation)
}

func (h *NavigationHandlers) getNavigation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.navigation == nil {
		httpx.WriteError(ctx, w, httpx.NewError("navigation_service_unavailable", "navigation service is not configured", http.StatusServiceUnavailable))
		return
	}

	location := strings.TrimSpace(chi.URLParam(r, "location"))
	if location == "" {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_location", "location is required", http.StatusBadRequest))
		return
	}

	tenantID, ok := requestctx.Tenant(ctx)
	if !ok {
		tenantID = strings.TrimSpace(r.URL.Query().Get("tenant"))
	}
	if tenantID == "" {
		tenantID = h.defaultTenant
	}

	entry, ok := h.navigation.GetNavigation(ctx, tenantID, domain.NavigationLocation(location))
	if !ok {
		httpx.WriteError(ctx, w, httpx.NewError("navigation_not_found", fmt.Sprintf("no navigation for location %q", location), http.StatusNotFound))
		return
	}

	w.Header().Set("Cache-Control", cacheControl(h.cacheMaxAge))
	httpx.WriteJSON(w, http.StatusOK, entry)
}
