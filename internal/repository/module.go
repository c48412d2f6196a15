package repository

import "go.uber.org/fx"

var Module = fx.Module("repository",
	cacheModule,
)

var (
	cacheModule = fx.Provide(
		fx.Annotate(
			NewRecipientCache,
			fx.As(new(RecipientCacheProvider)),
		),
		NewCacheConfig,
	)
)
