package main

import (
	"github.com/koungkub/notification-relay/internal/client"
	"github.com/koungkub/notification-relay/internal/handler"
	"github.com/koungkub/notification-relay/internal/metrics"
	"github.com/koungkub/notification-relay/internal/repository"
	"github.com/koungkub/notification-relay/internal/server"
	"github.com/koungkub/notification-relay/internal/service"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	app := fx.New(relay(logger))
	if err := app.Err(); err != nil {
		// Missing provider credentials end up here, before anything listens.
		logger.Fatal("notification relay failed to start", zap.Error(err))
	}

	app.Run()
}

// relay assembles the provider clients, services and HTTP server.
func relay(logger *zap.Logger) fx.Option {
	return fx.Options(
		fx.Supply(logger),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		metrics.Module,
		server.Module,
		handler.Module,
		service.Module,
		repository.Module,
		client.Module,
		fx.Invoke(func(*server.HTTPServer) {}),
	)
}
