package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	types "github.com/foodcartapp/foodcart-api/internal/domains/fulfillment/application/types"
	"github.com/foodcartapp/foodcart-api/internal/domains/fulfillment/ports"
	ordersdomain "github.com/foodcartapp/foodcart-api/internal/domains/orders/domain"
)

const tracerName = "github.com/foodcartapp/foodcart-api/internal/domains/fulfillment/adapters/observability"

// Service decorates the enrichment port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core enrichment service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

// EnrichOrders runs the enrichment batch with instrumentation.
func (s *Service) EnrichOrders(ctx context.Context, statuses []ordersdomain.Status) ([]types.EnrichedOrder, error) {
	requested := make([]string, 0, len(statuses))
	for _, status := range statuses {
		requested = append(requested, string(status))
	}
	ctx, span := s.startSpan(ctx, "Service.EnrichOrders", attribute.StringSlice("order.statuses.requested", requested))
	defer span.End()

	s.logInfo(ctx, "enriching orders", slog.Any("statuses", requested))
	result, err := s.inner.EnrichOrders(ctx, statuses)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to enrich orders", slog.Any("statuses", requested))
	}
	unfulfillable := 0
	for _, enriched := range result {
		if enriched.RequiresManualSelection {
			unfulfillable++
		}
	}
	span.SetAttributes(
		attribute.Int("order.result.count", len(result)),
		attribute.Int("order.result.unfulfillable", unfulfillable),
	)
	s.metrics.recordBatch(ctx, len(result), unfulfillable)
	s.logInfo(ctx, "enriched orders", slog.Int("count", len(result)), slog.Int("unfulfillable", unfulfillable))
	return result, nil
}

// EnrichOrder computes the derived fields for one order with instrumentation.
func (s *Service) EnrichOrder(ctx context.Context, order *ordersdomain.Order) (*types.EnrichedOrder, error) {
	var orderID int64
	if order != nil {
		orderID = order.ID
	}
	ctx, span := s.startSpan(ctx, "Service.EnrichOrder", attribute.Int64("order.id", orderID))
	defer span.End()

	result, err := s.inner.EnrichOrder(ctx, order)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to enrich order", slog.Int64("order.id", orderID))
	}
	if result != nil {
		span.SetAttributes(attribute.Int("order.candidates.count", len(result.CandidateRestaurants)))
	}
	return result, nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	ordersEnriched      metric.Int64Counter
	ordersUnfulfillable metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	ordersEnriched, _ := m.Int64Counter("fulfillment.service.enriched", metric.WithDescription("Number of orders enriched"))
	ordersUnfulfillable, _ := m.Int64Counter("fulfillment.service.unfulfillable", metric.WithDescription("Number of enriched orders no single restaurant can fulfill"))
	return serviceMetrics{
		ordersEnriched:      ordersEnriched,
		ordersUnfulfillable: ordersUnfulfillable,
	}
}

func (m serviceMetrics) recordBatch(ctx context.Context, enriched, unfulfillable int) {
	addCounter(ctx, m.ordersEnriched, int64(enriched))
	addCounter(ctx, m.ordersUnfulfillable, int64(unfulfillable))
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)
