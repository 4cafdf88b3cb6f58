package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/hanko-field/storefront-content/internal/platform/httpx"
	"github.com/hanko-field/storefront-content/internal/platform/requestctx"
)

const maxTenantLength = 64

// ErrTenantNotFound is returned by resolvers that know the slug does not exist.
var ErrTenantNotFound = errors.New("tenant not found")

// TenantResolver maps a public tenant slug to the id pages are keyed by.
type TenantResolver interface {
	ResolveTenant(ctx context.Context, slug string) (string, error)
}

// TenantResolverFunc adapts a function to the TenantResolver interface.
type TenantResolverFunc func(ctx context.Context, slug string) (string, error)

// ResolveTenant implements TenantResolver.
func (fn TenantResolverFunc) ResolveTenant(ctx context.Context, slug string) (string, error) {
	if fn == nil {
		return slug, nil
	}
	return fn(ctx, slug)
}

// StaticTenantResolver resolves slugs from a fixed alias table. Unknown slugs are
// returned unchanged.
type StaticTenantResolver struct {
	aliases map[string]string
}

// NewStaticTenantResolver copies aliases, lower-casing the keys.
func NewStaticTenantResolver(aliases map[string]string) *StaticTenantResolver {
	copied := make(map[string]string, len(aliases))
	for slug, id := range aliases {
		copied[strings.ToLower(strings.TrimSpace(slug))] = id
	}
	return &StaticTenantResolver{aliases: copied}
}

// ResolveTenant implements TenantResolver.
func (s *StaticTenantResolver) ResolveTenant(_ context.Context, slug string) (string, error) {
	if s != nil {
		if id, ok := s.aliases[strings.ToLower(slug)]; ok {
			return id, nil
		}
	}
	return slug, nil
}

// TenantMiddleware reads the tenant query parameter, falling back to defaultTenant,
// resolves it and stores the id on the request context.
func TenantMiddleware(resolver TenantResolver, defaultTenant string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			slug := strings.TrimSpace(r.URL.Query().Get("tenant"))
			if slug == "" {
				slug = defaultTenant
			}
			if slug == "" {
				httpx.WriteError(ctx, w, httpx.NewError("invalid_tenant", "tenant is required", http.StatusBadRequest))
				return
			}
			if len(slug) > maxTenantLength {
				httpx.WriteError(ctx, w, httpx.NewError("invalid_tenant", "tenant is too long", http.StatusBadRequest))
				return
			}

			tenantID := slug
			if resolver != nil {
				resolved, err := resolver.ResolveTenant(ctx, slug)
				switch {
				case errors.Is(err, ErrTenantNotFound):
					httpx.WriteError(ctx, w, httpx.NewError("tenant_not_found", "tenant not found", http.StatusNotFound))
					return
				case err != nil:
					requestctx.Logger(ctx).Warn("tenant resolution failed", zap.String("tenant", slug), zap.Error(err))
					httpx.WriteError(ctx, w, httpx.NewError("tenant_resolution_failed", "unable to resolve tenant", http.StatusBadGateway))
					return
				}
				if resolved != "" {
					tenantID = resolved
				}
			}

			next.ServeHTTP(w, r.WithContext(requestctx.WithTenant(ctx, tenantID)))
		})
	}
}
