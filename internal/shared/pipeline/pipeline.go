// Package pipeline runs ordered, short-circuiting validation chains in front of
// a terminal mutation. Each step either continues (nil) or halts the chain with a
// *Rejection; any other error is an unexpected fault and halts the chain as well.
package pipeline

import (
	"context"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"
)

const tracerName = "github.com/Apurer/go-gin-grubdash-api/internal/shared/pipeline"

// Check inspects the per-request context. It returns nil to continue, a
// *Rejection to reject, or any other error to abort with a fault.
type Check[C any] func(ctx context.Context, req *C) error

// Terminal is the mutation that runs once every step continued.
type Terminal[C any] func(ctx context.Context, req *C) error

// Step is a named check. The name shows up in traces and logs.
type Step[C any] struct {
	Name  string
	Check Check[C]
}

// NewStep pairs a check with a name.
func NewStep[C any](name string, check Check[C]) Step[C] {
	return Step[C]{Name: name, Check: check}
}

// Pipeline is an immutable, ordered list of steps for one operation.
type Pipeline[C any] struct {
	name    string
	steps   []Step[C]
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics pipelineMetrics
}

// Option configures instrumentation shared by every run of a pipeline.
type Option func(*settings)

type settings struct {
	tracer trace.Tracer
	logger *slog.Logger
	meter  metric.Meter
}

// WithTracer records one span per run.
func WithTracer(tr trace.Tracer) Option {
	return func(s *settings) {
		s.tracer = tr
	}
}

// WithLogger logs rejections at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithMeter counts rejections by pipeline and status.
func WithMeter(m metric.Meter) Option {
	return func(s *settings) {
		s.meter = m
	}
}

// New builds a pipeline. Steps run in the order given.
func New[C any](name string, steps []Step[C], opts ...Option) *Pipeline[C] {
	cfg := settings{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.tracer == nil {
		cfg.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return &Pipeline[C]{
		name:    name,
		steps:   append([]Step[C](nil), steps...),
		tracer:  cfg.tracer,
		logger:  cfg.logger,
		metrics: newPipelineMetrics(cfg.meter),
	}
}

// Name returns the pipeline identifier, e.g. "dishes.update".
func (p *Pipeline[C]) Name() string {
	return p.name
}

// StepNames lists the steps in execution order.
func (p *Pipeline[C]) StepNames() []string {
	names := make([]string, 0, len(p.steps))
	for _, step := range p.steps {
		names = append(names, step.Name)
	}
	return names
}

// Validate runs every step in order and stops at the first one that does not
// continue. It never runs a terminal action.
func (p *Pipeline[C]) Validate(ctx context.Context, req *C) error {
	ctx, span := p.tracer.Start(ctx, "pipeline."+p.name,
		trace.WithAttributes(attribute.String("pipeline.name", p.name), attribute.Int("pipeline.steps", len(p.steps))))
	defer span.End()

	for _, step := range p.steps {
		err := step.Check(ctx, req)
		if err == nil {
			continue
		}
		if rejection, ok := AsRejection(err); ok {
			span.AddEvent("pipeline.rejected", trace.WithAttributes(
				attribute.String("pipeline.step", step.Name),
				attribute.Int("rejection.status", rejection.Status),
			))
			p.metrics.recordRejection(ctx, p.name, step.Name, rejection.Status)
			p.logDebug(ctx, "pipeline rejected request",
				slog.String("pipeline", p.name),
				slog.String("step", step.Name),
				slog.Int("status", rejection.Status),
				slog.String("message", rejection.Message))
			return rejection
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Run validates req and, when every step continued, invokes terminal.
func (p *Pipeline[C]) Run(ctx context.Context, req *C, terminal Terminal[C]) error {
	if err := p.Validate(ctx, req); err != nil {
		return err
	}
	if terminal == nil {
		return nil
	}
	return terminal(ctx, req)
}

func (p *Pipeline[C]) logDebug(ctx context.Context, msg string, attrs ...slog.Attr) {
	if p.logger == nil {
		return
	}
	p.logger.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

type pipelineMetrics struct {
	rejections metric.Int64Counter
}

func newPipelineMetrics(m metric.Meter) pipelineMetrics {
	if m == nil {
		return pipelineMetrics{}
	}
	rejections, _ := m.Int64Counter("pipeline.rejections", metric.WithDescription("Number of requests rejected by a validation step"))
	return pipelineMetrics{rejections: rejections}
}

func (m pipelineMetrics) recordRejection(ctx context.Context, pipelineName, step string, status int) {
	if m.rejections == nil {
		return
	}
	m.rejections.Add(ctx, 1, metric.WithAttributes(
		attribute.String("pipeline", pipelineName),
		attribute.String("step", step),
		attribute.String("status", http.StatusText(status)),
	))
}
