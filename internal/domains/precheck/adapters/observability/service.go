// Package observability decorates the precheck service with tracing,
// logging, and metrics.
package observability

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/lunapup/adoption-api/internal/domains/precheck/application"
	"github.com/lunapup/adoption-api/internal/domains/precheck/domain"
	"github.com/lunapup/adoption-api/internal/domains/precheck/ports"
)

const tracerName = "github.com/lunapup/adoption-api/internal/domains/precheck/adapters/observability/service"

// Service decorates a precheck port with instrumentation. The answers
// themselves are never logged; only outcome metadata is.
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

// WithMeter injects the meter used to create the counter instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core service.
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

// Evaluate runs the gate with instrumentation around every outcome class.
func (s *Service) Evaluate(ctx context.Context, answers domain.Answers, clientKey string) (*domain.Evaluation, error) {
	ctx, span := s.tracer.Start(ctx, "Service.Evaluate",
		trace.WithAttributes(attribute.String("precheck.client_key", clientKey)))
	defer span.End()

	s.logInfo(ctx, "evaluating precheck", slog.String("client_key", clientKey))
	eval, err := s.inner.Evaluate(ctx, answers, clientKey)
	if err != nil {
		s.recordFailure(ctx, span, err, clientKey)
		return nil, err
	}

	outcome := "rejected"
	if eval.Pass {
		outcome = "passed"
	}
	s.metrics.recordEvaluation(ctx, outcome)
	span.SetAttributes(
		attribute.Bool("precheck.pass", eval.Pass),
		attribute.Int("precheck.score", eval.Score),
		attribute.Int("precheck.flags", len(eval.Flags)),
	)
	s.logInfo(ctx, "precheck evaluated",
		slog.String("client_key", clientKey),
		slog.Bool("pass", eval.Pass),
		slog.Int("score", eval.Score),
		slog.Int("remaining", eval.Remaining),
	)
	return eval, nil
}

func (s *Service) recordFailure(ctx context.Context, span trace.Span, err error, clientKey string) {
	var vErr *domain.ValidationError
	var rlErr *application.RateLimitError
	switch {
	case errors.As(err, &vErr):
		s.metrics.recordEvaluation(ctx, "incomplete")
		span.SetAttributes(attribute.StringSlice("precheck.missing", vErr.Missing))
		s.logInfo(ctx, "precheck incomplete", slog.String("client_key", clientKey), slog.Any("missing", vErr.Missing))
	case errors.As(err, &rlErr):
		s.metrics.recordRateLimited(ctx)
		s.logInfo(ctx, "precheck rate limited",
			slog.String("client_key", clientKey),
			slog.Duration("retry_after", rlErr.RetryAfter),
		)
	default:
		s.metrics.recordOracleFailure(ctx)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logError(ctx, "precheck evaluation failed", err, slog.String("client_key", clientKey))
	}
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

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	evaluations    metric.Int64Counter
	rateLimited    metric.Int64Counter
	oracleFailures metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	evaluations, _ := m.Int64Counter("precheck.service.evaluations", metric.WithDescription("Number of precheck evaluations by outcome"))
	rateLimited, _ := m.Int64Counter("precheck.service.rate_limited", metric.WithDescription("Number of rate-limited precheck attempts"))
	oracleFailures, _ := m.Int64Counter("precheck.service.oracle_failures", metric.WithDescription("Number of failed oracle scoring calls"))
	return serviceMetrics{
		evaluations:    evaluations,
		rateLimited:    rateLimited,
		oracleFailures: oracleFailures,
	}
}

func (m serviceMetrics) recordEvaluation(ctx context.Context, outcome string) {
	addCounter(ctx, m.evaluations, 1, attribute.String("precheck.outcome", outcome))
}

func (m serviceMetrics) recordRateLimited(ctx context.Context) {
	addCounter(ctx, m.rateLimited, 1)
}

func (m serviceMetrics) recordOracleFailure(ctx context.Context) {
	addCounter(ctx, m.oracleFailures, 1)
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)
