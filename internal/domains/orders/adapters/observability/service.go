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

	orderdomain "github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/domain"
	orderports "github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/ports"
	"github.com/Apurer/go-gin-grubdash-api/internal/shared/payload"
	"github.com/Apurer/go-gin-grubdash-api/internal/shared/pipeline"
)

const tracerName = "github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/adapters/observability/service"

// Service decorates the order service with tracing, logging, and metrics.
type Service struct {
	inner   orderports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core order service.
func New(inner orderports.Service, opts ...Option) orderports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
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
	return s
}

func (s *Service) CreateOrder(ctx context.Context, data payload.Data) (*orderdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.CreateOrder")
	defer span.End()

	s.logInfo(ctx, "creating order")
	result, err := s.inner.CreateOrder(ctx, data)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create order")
	}
	span.SetAttributes(attribute.String("order.id", result.ID), attribute.Int("order.lines", len(result.Dishes)))
	s.metrics.recordCreated(ctx)
	s.logInfo(ctx, "order created", slog.String("order.id", result.ID), slog.Int("order.lines", len(result.Dishes)))
	return result, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]*orderdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ListOrders")
	defer span.End()

	result, err := s.inner.ListOrders(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("orders.count", len(result)))
	return result, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*orderdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GetOrder", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	result, err := s.inner.GetOrder(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.String("order.id", id))
	}
	span.SetAttributes(attribute.String("order.status", string(result.Status)))
	return result, nil
}

func (s *Service) UpdateOrder(ctx context.Context, id string, data payload.Data) (*orderdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.UpdateOrder", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	s.logInfo(ctx, "updating order", slog.String("order.id", id))
	result, err := s.inner.UpdateOrder(ctx, id, data)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update order", slog.String("order.id", id))
	}
	span.SetAttributes(attribute.String("order.status", string(result.Status)))
	s.metrics.recordStatusChanged(ctx, result.Status)
	s.logInfo(ctx, "order updated", slog.String("order.id", result.ID), slog.String("order.status", string(result.Status)))
	return result, nil
}

func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "OrderService.DeleteOrder", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	s.logInfo(ctx, "deleting order", slog.String("order.id", id))
	if err := s.inner.DeleteOrder(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete order", slog.String("order.id", id))
	}
	s.metrics.recordDeleted(ctx)
	s.logInfo(ctx, "order deleted", slog.String("order.id", id))
	return nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	level := slog.LevelError
	if rejection, ok := pipeline.AsRejection(err); ok {
		level = slog.LevelWarn
		span.SetAttributes(attribute.Int("rejection.status", rejection.Status))
		attrs = append(attrs, slog.Int("status", rejection.Status), slog.String("reason", rejection.Message))
	} else {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	if s.logger != nil {
		s.logger.LogAttrs(ctx, level, msg, attrs...)
	}
	return err
}

type serviceMetrics struct {
	created       metric.Int64Counter
	statusChanged metric.Int64Counter
	deleted       metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	created, _ := m.Int64Counter("orders.service.created", metric.WithDescription("Number of orders created"))
	statusChanged, _ := m.Int64Counter("orders.service.status_changed", metric.WithDescription("Number of order updates by resulting status"))
	deleted, _ := m.Int64Counter("orders.service.deleted", metric.WithDescription("Number of orders deleted"))
	return serviceMetrics{created: created, statusChanged: statusChanged, deleted: deleted}
}

func (m serviceMetrics) recordCreated(ctx context.Context) {
	if m.created != nil {
		m.created.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordStatusChanged(ctx context.Context, status orderdomain.Status) {
	if m.statusChanged != nil {
		m.statusChanged.Add(ctx, 1, metric.WithAttributes(attribute.String("order.status", string(status))))
	}
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	if m.deleted != nil {
		m.deleted.Add(ctx, 1)
	}
}

var _ orderports.Service = (*Service)(nil)
