package service

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/fx"
)

var Module = fx.Module("service",
	fx.Provide(
		NewConfig,
		fx.Annotate(
			NewPushService,
			fx.As(new(PushProvider)),
		),
		fx.Annotate(
			NewMailService,
			fx.As(new(MailProvider)),
		),
	),
)

var (
	// ErrInvalidRequest marks input that fails field validation.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrMissingEmail is returned when the resolved user has no email address.
	ErrMissingEmail = errors.New("user does not have an email")
)

// Config bounds every external call made while serving one request.
type Config struct {
	ProviderTimeout time.Duration `envconfig:"PROVIDER_TIMEOUT" default:"10s"`
}

func NewConfig() Config {
	var cfg Config
	envconfig.MustProcess("", &cfg)

	return cfg
}
