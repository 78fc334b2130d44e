package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/ps-health/patient-service/config"
	"github.com/ps-health/patient-service/logger"
	patientsPostgres "github.com/ps-health/patient-service/patients/postgres"
	patientsRepository "github.com/ps-health/patient-service/patients/repository"
	"github.com/ps-health/patient-service/patients/service"
	"github.com/ps-health/patient-service/store"
)

func Start(e *echo.Echo, cfg *config.Config, log *zap.SugaredLogger, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infow("starting http server", "address", cfg.HttpAddress)
				if err := e.Start(cfg.HttpAddress); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Errorw("http server stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

func SetReady(healthCheck *HealthCheck, pinger store.Pinger, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := pinger.Ping(ctx); err != nil {
				return err
			}

			// Hooks run in registration order, so the store is connected and
			// its indexes or migrations are applied by the time this runs
			healthCheck.SetReady(true)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			healthCheck.SetReady(false)
			return nil
		},
	})
}

// Dependencies returns the providers shared by the http server, the cli and the
// integration tests. Constructors only run when something depends on them.
func Dependencies() []fx.Option {
	cfg, err := config.New()
	if err != nil {
		return []fx.Option{fx.Error(err)}
	}

	deps := []fx.Option{
		fx.Supply(cfg),
		fx.Provide(
			logger.NewProductionLogger,
			logger.Suggar,
			service.NewService,
			NewHealthCheck,
			NewMetrics,
			NewHandler,
			NewServer,
		),
	}

	switch cfg.StoreBackend {
	case config.StoreBackendPostgres:
		deps = append(deps, patientsPostgres.Module)
	default:
		deps = append(deps, patientsRepository.Module)
	}

	return deps
}

func MainLoop() {
	deps := append(Dependencies(),
		fx.Invoke(Start),
		fx.Invoke(SetReady),
	)
	fx.New(deps...).Run()
}
