package handlers

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	domain "github.com/hanko-field/storefront-content/internal/domain"
	"github.com/hanko-field/storefront-content/internal/filter"
	"github.com/hanko-field/storefront-content/internal/platform/httpx"
	"github.com/hanko-field/storefront-content/internal/platform/pagination"
	"github.com/hanko-field/storefront-content/internal/platform/requestctx"
	"github.com/hanko-field/storefront-content/internal/services"
)

const (
	defaultCacheMaxAge    = 5 * time.Minute
	defaultRemoteTimeout  = 2 * time.Second
	maxPathLength         = 512
	maxCountryCodeLength  = 16
	errorPageNotFoundCode = "page_not_found"
)

// RemoteContent is consulted when the local registry has no page for a request.
type RemoteContent interface {
	FetchPage(ctx context.Context, req services.ResolveRequest) (domain.ContentPage, bool, error)
}

// RemoteContentFunc adapts a function to the RemoteContent interface.
type RemoteContentFunc func(ctx context.Context, req services.ResolveRequest) (domain.ContentPage, bool, error)

// FetchPage implements RemoteContent.
func (fn RemoteContentFunc) FetchPage(ctx context.Context, req services.ResolveRequest) (domain.ContentPage, bool, error) {
	if fn == nil {
		return domain.ContentPage{}, false, nil
	}
	return fn(ctx, req)
}

// PageHandlers exposes page resolution and page queries.
type PageHandlers struct {
	pages         services.PageService
	remote        RemoteContent
	remoteTimeout time.Duration
	remoteCache   int
	cacheMaxAge   time.Duration
	defaultTenant string
	defaultLocale string
	paging        pagination.Options
}

// PageOption customises construction of PageHandlers.
type PageOption func(*PageHandlers)

// WithPageService injects the page service dependency.
func WithPageService(svc services.PageService) PageOption {
	return func(h *PageHandlers) {
		h.pages = svc
	}
}

// WithRemoteContent sets the collaborator used after a local miss.
func WithRemoteContent(remote RemoteContent) PageOption {
	return func(h *PageHandlers) {
		h.remote = remote
	}
}

// WithRemoteTimeout bounds each remote lookup.
func WithRemoteTimeout(timeout time.Duration) PageOption {
	return func(h *PageHandlers) {
		if timeout > 0 {
			h.remoteTimeout = timeout
		}
	}
}

// WithRemoteCache keeps up to size remote lookups for the page cache max-age.
func WithRemoteCache(size int) PageOption {
	return func(h *PageHandlers) {
		h.remoteCache = size
	}
}

// WithPageCacheMaxAge sets the max-age advertised on resolved pages. Zero disables caching.
func WithPageCacheMaxAge(maxAge time.Duration) PageOption {
	return func(h *PageHandlers) {
		if maxAge >= 0 {
			h.cacheMaxAge = maxAge
		}
	}
}

// WithPageDefaults sets the tenant and locale applied when a request omits them.
func WithPageDefaults(tenant, locale string) PageOption {
	return func(h *PageHandlers) {
		h.defaultTenant = strings.TrimSpace(tenant)
		h.defaultLocale = strings.TrimSpace(locale)
	}
}

// WithPageQueryLimits overrides the default and maximum query page sizes.
func WithPageQueryLimits(defaultLimit, maxLimit int) PageOption {
	return func(h *PageHandlers) {
		if defaultLimit > 0 {
			h.paging.DefaultLimit = defaultLimit
		}
		if maxLimit > 0 {
			h.paging.MaxLimit = maxLimit
		}
	}
}

// NewPageHandlers constructs handlers for page endpoints.
func NewPageHandlers(opts ...PageOption) *PageHandlers {
	h := &PageHandlers{
		remoteTimeout: defaultRemoteTimeout,
		cacheMaxAge:   defaultCacheMaxAge,
		paging: pagination.Options{
			DefaultLimit:      pagination.DefaultLimit,
			MaxLimit:          pagination.DefaultMaxLimit,
			AllowedSortFields: filter.Fields(),
		},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	h.remote = NewCachedRemoteContent(h.remote, h.remoteCache, h.cacheMaxAge)
	return h
}

// Routes registers page endpoints against the provided router.
func (h *PageHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/resolve", h.resolvePage)
	r.With(pagination.Middleware(h.paging, writePaginationError)).Get("/", h.queryPages)
}

func (h *PageHandlers) resolvePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.pages == nil {
		httpx.WriteError(ctx, w, httpx.NewError("page_service_unavailable", "page service is not configured", http.StatusServiceUnavailable))
		return
	}

	req, apiErr := h.resolveRequest(r)
	if apiErr != nil {
		httpx.WriteError(ctx, w, *apiErr)
		return
	}

	page, ok := h.pages.ResolvePage(ctx, req)
	if !ok {
		page, ok = h.fetchRemote(ctx, req)
	}
	if !ok {
		httpx.WriteError(ctx, w, httpx.NewError(errorPageNotFoundCode, fmt.Sprintf("no page for path %q", req.Path), http.StatusNotFound))
		return
	}

	etag := computePageETag(page, req)
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", cacheControl(h.cacheMaxAge))
	if matchesETag(r, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, page)
}

func (h *PageHandlers) resolveRequest(r *http.Request) (services.ResolveRequest, *httpx.Error) {
	query := r.URL.Query()

	path := strings.TrimSpace(query.Get("path"))
	if len(path) > maxPathLength {
		err := httpx.NewError("invalid_path", "path is too long", http.StatusBadRequest)
		return services.ResolveRequest{}, &err
	}

	tenantID, ok := requestctx.Tenant(r.Context())
	if !ok {
		tenantID = strings.TrimSpace(query.Get("tenant"))
	}
	if tenantID == "" {
		tenantID = h.defaultTenant
	}

	rawLocale := strings.TrimSpace(query.Get("locale"))
	if rawLocale == "" {
		rawLocale = h.defaultLocale
	}
	locale, err := normalizeLocale(rawLocale)
	if err != nil {
		apiErr := httpx.NewError("invalid_locale", err.Error(), http.StatusBadRequest)
		return services.ResolveRequest{}, &apiErr
	}

	country := strings.TrimSpace(query.Get("country"))
	if len(country) > maxCountryCodeLength {
		apiErr := httpx.NewError("invalid_country", "country is too long", http.StatusBadRequest)
		return services.ResolveRequest{}, &apiErr
	}

	return services.ResolveRequest{
		Path:        path,
		TenantID:    tenantID,
		Locale:      locale,
		CountryCode: country,
	}, nil
}

func (h *PageHandlers) fetchRemote(ctx context.Context, req services.ResolveRequest) (domain.ContentPage, bool) {
	if h.remote == nil {
		return domain.ContentPage{}, false
	}
	remoteCtx, cancel := context.WithTimeout(ctx, h.remoteTimeout)
	defer cancel()

	page, ok, err := h.remote.FetchPage(remoteCtx, req)
	if err != nil {
		requestctx.Logger(ctx).Warn("remote content lookup failed",
			zap.String("path", req.Path),
			zap.String("tenant", req.TenantID),
			zap.Error(err),
		)
		return domain.ContentPage{}, false
	}
	return page, ok
}

func (h *PageHandlers) queryPages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.pages == nil {
		httpx.WriteError(ctx, w, httpx.NewError("page_service_unavailable", "page service is not configured", http.StatusServiceUnavailable))
		return
	}

	params, ok := pagination.FromContext(ctx)
	if !ok {
		parsed, err := pagination.FromRequest(r, h.paging)
		if err != nil {
			writePaginationError(w, r, err)
			return
		}
		params = parsed
	}

	result := h.pages.QueryPages(ctx, services.PageQuery{
		Where: params.Where,
		Limit: params.Limit,
		Page:  params.Page,
		Sort:  params.Sort,
	})
	httpx.WriteJSON(w, http.StatusOK, result)
}

func writePaginationError(w http.ResponseWriter, r *http.Request, err error) {
	code := "invalid_query"
	switch {
	case errors.Is(err, pagination.ErrInvalidWhere):
		code = "invalid_where"
	case errors.Is(err, pagination.ErrInvalidLimit):
		code = "invalid_limit"
	case errors.Is(err, pagination.ErrInvalidPage):
		code = "invalid_page"
	case errors.Is(err, pagination.ErrInvalidSort):
		code = "invalid_sort"
	}
	httpx.WriteError(r.Context(), w, httpx.NewError(code, err.Error(), http.StatusBadRequest))
}

// normalizeLocale canonicalises a BCP 47 tag. The wildcard "all" and the empty string
// pass through unchanged.
func normalizeLocale(raw string) (string, error) {
	if raw == "" || strings.EqualFold(raw, domain.LocaleAll) {
		return strings.ToLower(raw), nil
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("locale %q is not a valid language tag", raw)
	}
	return tag.String(), nil
}

func computePageETag(page domain.ContentPage, req services.ResolveRequest) string {
	hash := sha256.New()
	for _, part := range []string{page.ID, page.Tenant, req.Locale, req.CountryCode, formatTimestamp(page.UpdatedAt)} {
		hash.Write([]byte(part))
		hash.Write([]byte("|"))
	}
	return fmt.Sprintf("W/\"%x\"", hash.Sum(nil))
}

func matchesETag(r *http.Request, etag string) bool {
	if etag == "" || r == nil {
		return false
	}
	raw := r.Header.Get("If-None-Match")
	if strings.TrimSpace(raw) == "" {
		return false
	}
	for _, candidate := range strings.Split(raw, ",") {
		trimmed := strings.TrimSpace(candidate)
		if trimmed == "*" || trimmed == etag {
			return true
		}
	}
	return false
}

func cacheControl(maxAge time.Duration) string {
	if maxAge <= 0 {
		return "no-store"
	}
	return fmt.Sprintf("public, max-age=%d", int(maxAge.Seconds()))
}

func formatTimestamp(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(time.RFC3339)
}
