package services

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	domain "github.com/hanko-field/storefront-content/internal/domain"
	"github.com/hanko-field/storefront-content/internal/platform/requestctx"
	"github.com/hanko-field/storefront-content/internal/registry"
)

const instrumentationName = "github.com/hanko-field/storefront-content/internal/services"

// ErrRegistryMissing signals that the content registry dependency is absent.
var ErrRegistryMissing = errors.New("services: content registry is not configured")

// PageServiceDeps groups constructor parameters for the page service.
type PageServiceDeps struct {
	Registry *registry.Registry
	Tracer   trace.Tracer
	Meter    metric.Meter
	Logger   *zap.Logger
}

type pageService struct {
	registry *registry.Registry
	tracer   trace.Tracer

	resolutions        metric.Int64Counter
	resolutionsEnabled bool
	queries            metric.Int64Counter
	queriesEnabled     bool
	queryDocs          metric.Int64Histogram
	queryDocsEnabled   bool
}

// NewPageService constructs the page service over an immutable registry.
func NewPageService(deps PageServiceDeps) (PageService, error) {
	if deps.Registry == nil {
		return nil, ErrRegistryMissing
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	tracer := deps.Tracer
	if tracer == nil {
		tracer = otel.Tracer(instrumentationName)
	}
	meter := deps.Meter
	if meter == nil {
		meter = otel.GetMeterProvider().Meter(instrumentationName)
	}

	resolutions, resolutionsErr := meter.Int64Counter(
		"content.resolve.count",
		metric.WithDescription("Count of page resolutions by winning cascade stage"),
	)
	if resolutionsErr != nil {
		logger.Warn("services: unable to register resolution metric", zap.Error(resolutionsErr))
	}
	queries, queriesErr := meter.Int64Counter(
		"content.query.count",
		metric.WithDescription("Count of page queries by filter mode"),
	)
	if queriesErr != nil {
		logger.Warn("services: unable to register query metric", zap.Error(queriesErr))
	}
	queryDocs, queryDocsErr := meter.Int64Histogram(
		"content.query.total_docs",
		metric.WithDescription("Number of pages matching each query before slicing"),
	)
	if queryDocsErr != nil {
		logger.Warn("services: unable to register query size metric", zap.Error(queryDocsErr))
	}

	return &pageService{
		registry:           deps.Registry,
		tracer:             tracer,
		resolutions:        resolutions,
		resolutionsEnabled: resolutionsErr == nil,
		queries:            queries,
		queriesEnabled:     queriesErr == nil,
		queryDocs:          queryDocs,
		queryDocsEnabled:   queryDocsErr == nil,
	}, nil
}

func (s *pageService) ResolvePage(ctx context.Context, req ResolveRequest) (domain.ContentPage, bool) {
	ctx, span := s.tracer.Start(ctx, "content.ResolvePage")
	defer span.End()

	page, stage, ok := resolvePage(s.registry, req)

	attrs := []attribute.KeyValue{
		attribute.String("content.tenant", req.TenantID),
		attribute.String("content.stage", string(stage)),
	}
	span.SetAttributes(append(attrs,
		attribute.String("content.path", req.Path),
		attribute.String("content.locale", req.Locale),
		attribute.String("content.country", req.CountryCode),
	)...)
	if ok {
		span.SetAttributes(attribute.String("content.page_id", page.ID))
	}
	if s.resolutionsEnabled {
		s.resolutions.Add(ctx, 1, metric.WithAttributes(attrs...))
	}

	requestctx.Logger(ctx).Debug("content: page resolved",
		zap.String("path", req.Path),
		zap.String("tenant", req.TenantID),
		zap.String("stage", string(stage)),
		zap.String("pageId", page.ID),
	)
	return page, ok
}

func (s *pageService) QueryPages(ctx context.Context, query PageQuery) domain.PaginatedDocs[domain.ContentPage] {
	ctx, span := s.tracer.Start(ctx, "content.QueryPages")
	defer span.End()

	result := queryPages(s.registry, query)

	mode := "all"
	if query.Where != nil {
		mode = "filtered"
	}
	span.SetAttributes(
		attribute.String("content.query.mode", mode),
		attribute.String("content.query.sort", query.Sort),
		attribute.Int("content.query.limit", result.Limit),
		attribute.Int("content.query.page", result.Page),
		attribute.Int("content.query.total_docs", result.TotalDocs),
	)
	modeAttr := metric.WithAttributes(attribute.String("mode", mode))
	if s.queriesEnabled {
		s.queries.Add(ctx, 1, modeAttr)
	}
	if s.queryDocsEnabled {
		s.queryDocs.Record(ctx, int64(result.TotalDocs), modeAttr)
	}
	return result
}
