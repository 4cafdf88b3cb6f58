package services

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	domain "github.com/hanko-field/storefront-content/internal/domain"
	"github.com/hanko-field/storefront-content/internal/registry"
)

// NavigationServiceDeps groups constructor parameters for the navigation service.
type NavigationServiceDeps struct {
	Registry *registry.Registry
	Tracer   trace.Tracer
}

type navigationService struct {
	registry *registry.Registry
	tracer   trace.Tracer
}

// NewNavigationService constructs the navigation lookup over an immutable registry.
func NewNavigationService(deps NavigationServiceDeps) (NavigationService, error) {
	if deps.Registry == nil {
		return nil, ErrRegistryMissing
	}
	tracer := deps.Tracer
	if tracer == nil {
		tracer = otel.Tracer(instrumentationName)
	}
	return &navigationService{registry: deps.Registry, tracer: tracer}, nil
}

func (s *navigationService) GetNavigation(ctx context.Context, tenantID string, location domain.NavigationLocation) (domain.NavigationEntry, bool) {
	_, span := s.tracer.Start(ctx, "content.GetNavigation")
	defer span.End()

	entry, ok := findNavigation(s.registry, tenantID, location)
	span.SetAttributes(
		attribute.String("content.tenant", tenantID),
		attribute.String("content.location", string(location)),
		attribute.Bool("content.found", ok),
	)
	return entry, ok
}

func findNavigation(reg *registry.Registry, tenantID string, location domain.NavigationLocation) (domain.NavigationEntry, bool) {
	var (
		found domain.NavigationEntry
		ok    bool
	)
	location = domain.NavigationLocation(strings.ToLower(strings.TrimSpace(string(location))))
	reg.EachNavigation(func(entry *domain.NavigationEntry) bool {
		if entry.Tenant == tenantID && entry.Location == location && entry.Status == domain.StatusPublished {
			found = entry.Clone()
			ok = true
			return false
		}
		return true
	})
	return found, ok
}
