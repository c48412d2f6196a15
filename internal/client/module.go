package client

import "go.uber.org/fx"

var Module = fx.Module("provider_client",
	fx.Provide(
		NewFirebaseConfig,
		NewFirebaseApp,
		NewSMTPConfig,
		NewCircuitBreakerRegistry,
		NewCircuitBreakerRegistryConfig,
		fx.Annotate(
			NewMessaging,
			fx.As(new(MessagingProvider)),
		),
		fx.Annotate(
			NewUserDirectory,
			fx.As(new(UserDirectoryProvider)),
		),
		fx.Annotate(
			NewSMTPMailer,
			fx.As(new(MailerProvider)),
		),
	),
)
