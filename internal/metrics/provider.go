package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Outcome labels attached to provider call metrics.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

type ProviderCollector struct {
	callCount             metric.Int64Counter
	callDuration          metric.Float64Histogram
	errorCount            metric.Int64Counter
	circuitBreakerState   metric.Int64Gauge
	circuitBreakerChanges metric.Int64Counter
}

func NewProviderCollector(meter metric.Meter) (*ProviderCollector, error) {
	// The noop meter never returns errors, so a nil meter is safe here.
	if meter == nil {
		meter = noop.NewMeterProvider().Meter("noop")
	}
	callCount, err := meter.Int64Counter(
		"provider.calls",
		metric.WithDescription("Total calls to external providers"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	callDuration, err := meter.Float64Histogram(
		"provider.duration",
		metric.WithDescription("External provider call duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"provider.errors",
		metric.WithDescription("Total external provider errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	circuitBreakerState, err := meter.Int64Gauge(
		"provider.circuit_breaker.state",
		metric.WithDescription("Circuit breaker state (0=Closed, 1=Open, 2=HalfOpen)"),
		metric.WithUnit("{state}"),
	)
	if err != nil {
		return nil, err
	}

	circuitBreakerChanges, err := meter.Int64Counter(
		"provider.circuit_breaker.state_changes",
		metric.WithDescription("Circuit breaker state changes"),
		metric.WithUnit("{change}"),
	)
	if err != nil {
		return nil, err
	}

	return &ProviderCollector{
		callCount:             callCount,
		callDuration:          callDuration,
		errorCount:            errorCount,
		circuitBreakerState:   circuitBreakerState,
		circuitBreakerChanges: circuitBreakerChanges,
	}, nil
}

// RecordCall records one call to a provider operation such as fcm/send or smtp/send.
func (c *ProviderCollector) RecordCall(
	ctx context.Context,
	provider string,
	operation string,
	duration time.Duration,
	err error,
) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}

	attrs := []attribute.KeyValue{
		attribute.String("provider.name", provider),
		attribute.String("provider.operation", operation),
		attribute.String("provider.outcome", outcome),
	}

	c.callCount.Add(ctx, 1, metric.WithAttributes(attrs...))
	c.callDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))

	if err != nil {
		errorAttrs := []attribute.KeyValue{
			attribute.String("provider.name", provider),
			attribute.String("provider.operation", operation),
			attribute.String("error.type", getErrorType(err)),
		}
		c.errorCount.Add(ctx, 1, metric.WithAttributes(errorAttrs...))
	}
}

func (c *ProviderCollector) RecordCircuitBreakerState(
	ctx context.Context,
	provider string,
	state string,
) {
	attrs := []attribute.KeyValue{
		attribute.String("provider.name", provider),
		attribute.String("circuit_breaker.state", state),
	}

	c.circuitBreakerState.Record(ctx, circuitBreakerStateToInt(state), metric.WithAttributes(attrs...))
}

func (c *ProviderCollector) RecordCircuitBreakerStateChange(
	ctx context.Context,
	provider string,
	fromState string,
	toState string,
) {
	attrs := []attribute.KeyValue{
		attribute.String("provider.name", provider),
		attribute.String("circuit_breaker.from_state", fromState),
		attribute.String("circuit_breaker.to_state", toState),
	}

	c.circuitBreakerChanges.Add(ctx, 1, metric.WithAttributes(attrs...))
}

func circuitBreakerStateToInt(state string) int64 {
	switch state {
	case gobreaker.StateClosed.String():
		return 0
	case gobreaker.StateOpen.String():
		return 1
	case gobreaker.StateHalfOpen.String():
		return 2
	default:
		return -1
	}
}

func getErrorType(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_breaker_open"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "provider_error"
	}
}
