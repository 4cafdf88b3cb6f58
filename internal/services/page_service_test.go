package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	domain "github.com/hanko-field/storefront-content/internal/domain"
	"github.com/hanko-field/storefront-content/internal/platform/requestctx"
	"github.com/hanko-field/storefront-content/internal/registry"
)

func newTestPageService(t *testing.T) PageService {
	t.Helper()
	svc, err := NewPageService(PageServiceDeps{
		Registry: registry.Build(testTenant),
		Tracer:   tracenoop.NewTracerProvider().Tracer("test"),
		Meter:    metricnoop.NewMeterProvider().Meter("test"),
	})
	require.NoError(t, err)
	return svc
}

func TestNewPageServiceRequiresRegistry(t *testing.T) {
	t.Parallel()

	_, err := NewPageService(PageServiceDeps{})
	require.True(t, errors.Is(err, ErrRegistryMissing))

	_, err = NewNavigationService(NavigationServiceDeps{})
	require.True(t, errors.Is(err, ErrRegistryMissing))
}

func TestPageServiceResolvePage(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	ctx := requestctx.WithLogger(context.Background(), zap.New(core))

	svc := newTestPageService(t)
	page, ok := svc.ResolvePage(ctx, ResolveRequest{Path: "restaurants/best-pizza", TenantID: testTenant})
	require.True(t, ok)
	require.Equal(t, domain.TemplateVerticalDetail, page.Template)

	entries := logs.FilterMessage("content: page resolved").All()
	require.Len(t, entries, 1)
	require.Equal(t, string(StageSynthesized), entries[0].ContextMap()["stage"])

	_, ok = svc.ResolvePage(ctx, ResolveRequest{Path: "nonexistent-page", TenantID: testTenant})
	require.False(t, ok)
}

func TestPageServiceQueryPages(t *testing.T) {
	t.Parallel()

	svc := newTestPageService(t)
	result := svc.QueryPages(context.Background(), PageQuery{Where: mustWhere(t, `{"template":"vertical-list"}`), Limit: 5, Page: 2})
	require.Equal(t, len(registry.Verticals()), result.TotalDocs)
	require.Len(t, result.Docs, 5)
	require.Equal(t, "healthcare-list", result.Docs[0].ID)
	require.True(t, result.HasPrevPage)
}

func TestPageServiceUsesGlobalProvidersByDefault(t *testing.T) {
	t.Parallel()

	svc, err := NewPageService(PageServiceDeps{Registry: registry.Build(testTenant)})
	require.NoError(t, err)
	_, ok := svc.ResolvePage(context.Background(), ResolveRequest{Path: "store", TenantID: testTenant})
	require.True(t, ok)
}

func TestNavigationServiceGetNavigation(t *testing.T) {
	t.Parallel()

	svc, err := NewNavigationService(NavigationServiceDeps{
		Registry: registry.Build(testTenant),
		Tracer:   tracenoop.NewTracerProvider().Tracer("test"),
	})
	require.NoError(t, err)
	ctx := context.Background()

	header, ok := svc.GetNavigation(ctx, testTenant, domain.LocationHeader)
	require.True(t, ok)
	labels := make([]string, 0, len(header.Items))
	for _, item := range header.Items {
		labels = append(labels, item.Label)
		require.GreaterOrEqual(t, len(item.Children), 1)
	}
	require.ElementsMatch(t, []string{"Commerce", "Services", "Lifestyle", "Community"}, labels)

	_, ok = svc.GetNavigation(ctx, testTenant, domain.LocationSidebar)
	require.False(t, ok)
	_, ok = svc.GetNavigation(ctx, "wrong-tenant", domain.LocationHeader)
	require.False(t, ok)

	footer, ok := svc.GetNavigation(ctx, testTenant, "FOOTER")
	require.True(t, ok)
	require.Equal(t, domain.LocationFooter, footer.Location)
}

func TestNavigationSkipsUnpublishedEntries(t *testing.T) {
	t.Parallel()

	reg := registry.New(nil, []domain.NavigationEntry{
		{ID: "draft", Tenant: testTenant, Location: domain.LocationMobile, Status: domain.StatusDraft},
		{ID: "live", Tenant: testTenant, Location: domain.LocationMobile, Status: domain.StatusPublished},
	})
	entry, ok := findNavigation(reg, testTenant, domain.LocationMobile)
	require.True(t, ok)
	require.Equal(t, "live", entry.ID)
}
