// Package observability decorates the mood classifier with tracing,
// logging, and metrics.
package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/lunapup/adoption-api/internal/domains/mood/domain"
	"github.com/lunapup/adoption-api/internal/domains/mood/ports"
)

const tracerName = "github.com/lunapup/adoption-api/internal/domains/mood/adapters/observability/service"

// Service decorates a mood port with instrumentation. Visitor text is
// never logged, only its length and the resulting label.
type Service struct {
	inner   ports.Service
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

// New wires a decorator around the core classifier.
func New(inner ports.Service, opts ...Option) ports.Service {
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
	return s
}

func (s *Service) Classify(ctx context.Context, text string) domain.Label {
	ctx, span := s.tracer.Start(ctx, "Service.Classify",
		trace.WithAttributes(attribute.Int("mood.text_len", len(text))))
	defer span.End()

	label := s.inner.Classify(ctx, text)

	span.SetAttributes(attribute.String("mood.label", string(label)))
	s.metrics.recordClassification(ctx, label)
	if s.logger != nil {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "mood classified",
			slog.Int("text_len", len(text)),
			slog.String("label", string(label)),
		)
	}
	return label
}

type serviceMetrics struct {
	classifications metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	classifications, _ := m.Int64Counter("mood.service.classifications", metric.WithDescription("Number of mood classifications by label"))
	return serviceMetrics{classifications: classifications}
}

func (m serviceMetrics) recordClassification(ctx context.Context, label domain.Label) {
	if m.classifications == nil {
		return
	}
	m.classifications.Add(ctx, 1, metric.WithAttributes(attribute.String("mood.label", string(label))))
}

var _ ports.Service = (*Service)(nil)
