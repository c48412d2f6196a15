package client

import (
	"context"
	"errors"
	"sync"
	"time"

	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"github.com/kelseyhightower/envconfig"
	"github.com/koungkub/notification-relay/internal/metrics"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Breaker names, one per external provider.
const (
	ProviderFCM  = "fcm"
	ProviderAuth = "auth"
	ProviderSMTP = "smtp"
)

type CircuitBreakerRegistry struct {
	breakers  *sync.Map
	settings  gobreaker.Settings
	collector *metrics.ProviderCollector
}

type CircuitBreakerRegistryParams struct {
	fx.In

	Config    CircuitBreakerRegistryConfig
	Logger    *zap.Logger                `optional:"true"`
	Collector *metrics.ProviderCollector `optional:"true"`
}

func NewCircuitBreakerRegistry(params CircuitBreakerRegistryParams) *CircuitBreakerRegistry {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	collector := params.Collector
	if collector == nil {
		collector, _ = metrics.NewProviderCollector(nil)
	}

	return &CircuitBreakerRegistry{
		breakers:  &sync.Map{},
		collector: collector,
		settings: gobreaker.Settings{
			MaxRequests: params.Config.MaxHalfOpenRequests,
			Timeout:     params.Config.OpenStateTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)

				return counts.Requests >= params.Config.MinRequestsBeforeTrip &&
					failureRatio >= (params.Config.FailureThresholdPercent/100)
			},
			IsSuccessful: isBreakerSuccess,
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				logger.Warn("circuit breaker state changed",
					zap.String("provider", name),
					zap.Stringer("from", from),
					zap.Stringer("to", to),
				)
				collector.RecordCircuitBreakerStateChange(context.Background(), name, from.String(), to.String())
			},
		},
	}
}

type CircuitBreakerRegistryConfig struct {
	MaxHalfOpenRequests     uint32        `envconfig:"CIRCUIT_BREAKER_MAX_HALF_OPEN_REQUESTS" default:"5"`
	OpenStateTimeout        time.Duration `envconfig:"CIRCUIT_BREAKER_OPEN_STATE_TIMEOUT" default:"60s"`
	MinRequestsBeforeTrip   uint32        `envconfig:"CIRCUIT_BREAKER_MIN_REQUESTS_BEFORE_TRIP" default:"3"`
	FailureThresholdPercent float64       `envconfig:"CIRCUIT_BREAKER_FAILURE_THRESHOLD_PERCENT" default:"60"`
}

func NewCircuitBreakerRegistryConfig() CircuitBreakerRegistryConfig {
	var cfg CircuitBreakerRegistryConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}

func (r *CircuitBreakerRegistry) GetOrCreate(provider string) *gobreaker.CircuitBreaker[any] {
	if cb, ok := r.breakers.Load(provider); ok {
		return cb.(*gobreaker.CircuitBreaker[any])
	}

	settings := r.settings
	settings.Name = provider

	cb := gobreaker.NewCircuitBreaker[any](settings)

	actual, _ := r.breakers.LoadOrStore(provider, cb)
	return actual.(*gobreaker.CircuitBreaker[any])
}

// execute runs fn behind the provider's breaker and records the call.
func execute[T any](
	ctx context.Context,
	registry *CircuitBreakerRegistry,
	provider string,
	operation string,
	fn func(ctx context.Context) (T, error),
) (T, error) {
	start := time.Now()
	cb := registry.GetOrCreate(provider)
	registry.collector.RecordCircuitBreakerState(ctx, provider, cb.State().String())

	result, err := cb.Execute(func() (any, error) {
		return fn(ctx)
	})
	registry.collector.RecordCall(ctx, provider, operation, time.Since(start), err)

	if err != nil {
		var zero T
		return zero, err
	}
	return result.(T), nil
}

// isBreakerSuccess keeps caller-side rejections from tripping a breaker: an
// unknown uid or a stale device token says nothing about provider health.
func isBreakerSuccess(err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, context.Canceled):
		return true
	case auth.IsUserNotFound(err):
		return true
	case messaging.IsInvalidArgument(err), messaging.IsUnregistered(err), messaging.IsSenderIDMismatch(err):
		return true
	default:
		return false
	}
}
