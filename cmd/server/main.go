// Package main is the entry point for the task and place API. It wires the
// JSON store, security adapters, email verification client and services with
// samber/do v2, starts the HTTP server and shuts down gracefully on
// SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/taskplace-api/internal/adapters/http"
	"github.com/jsamuelsen11/taskplace-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskplace-api/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/taskplace-api/internal/adapters/clients/neutrino"
	"github.com/jsamuelsen11/taskplace-api/internal/adapters/security"
	"github.com/jsamuelsen11/taskplace-api/internal/adapters/store/jsonfile"
	"github.com/jsamuelsen11/taskplace-api/internal/app"
	"github.com/jsamuelsen11/taskplace-api/internal/platform/config"
	"github.com/jsamuelsen11/taskplace-api/internal/platform/health"
	"github.com/jsamuelsen11/taskplace-api/internal/platform/httpclient"
	"github.com/jsamuelsen11/taskplace-api/internal/platform/logging"
	"github.com/jsamuelsen11/taskplace-api/internal/platform/telemetry"
	"github.com/jsamuelsen11/taskplace-api/internal/ports"
)

const otelShutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(flushCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)
	registerDependencies(injector, cfg, logger)

	logger.Info("configuration loaded",
		slog.String("profile", profile),
		slog.String("data_dir", cfg.Store.DataDir),
		slog.Bool("email_verification", cfg.EmailVerification.Active()),
		slog.Bool("telemetry", cfg.Telemetry.Enabled),
	)

	// Resolving the server builds the whole graph, including the store's
	// collection files, before anything listens.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("running server: %w", err)
	}
	logger.Info("shutdown complete")
	return nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*jsonfile.Store, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		store := jsonfile.New(cfg.Store.DataDir, metrics, logger)
		err := store.Init(context.Background(), ports.CollectionUsers, ports.CollectionTasks, ports.CollectionPlaces)
		if err != nil {
			return nil, fmt.Errorf("initializing store: %w", err)
		}
		return store, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.Store, error) {
		return do.MustInvoke[*jsonfile.Store](i), nil
	})

	do.Provide(injector, func(_ do.Injector) (*app.CollectionLocks, error) {
		return app.NewCollectionLocks(), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.PasswordHasher, error) {
		return security.NewBcryptHasher(cfg.Auth.BcryptCost)
	})

	do.Provide(injector, func(_ do.Injector) (ports.TokenIssuer, error) {
		return security.NewTokenIssuer(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL)
	})

	do.Provide(injector, func(i do.Injector) (*neutrino.Verifier, error) {
		ev := cfg.EmailVerification
		if !ev.Active() {
			logger.Info("email verification disabled, all addresses pass")
			return neutrino.NewVerifier(nil, logger), nil
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		client := httpclient.New(&ev.Client, neutrino.ServiceName, metrics, logger,
			httpclient.WithHeader("user-id", ev.UserID),
			httpclient.WithHeader("api-key", ev.APIKey),
		)
		return neutrino.NewVerifier(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.EmailVerifier, error) {
		return do.MustInvoke[*neutrino.Verifier](i), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.UserService, error) {
		return app.NewUserService(
			do.MustInvoke[ports.Store](i),
			do.MustInvoke[ports.PasswordHasher](i),
			do.MustInvoke[ports.EmailVerifier](i),
			do.MustInvoke[*app.CollectionLocks](i),
			do.MustInvoke[*telemetry.Metrics](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AuthService, error) {
		return app.NewAuthService(
			do.MustInvoke[ports.Store](i),
			do.MustInvoke[ports.PasswordHasher](i),
			do.MustInvoke[ports.TokenIssuer](i),
			logger,
		), nil
	})

	do.ProvideNamed(injector, ports.CollectionTasks, func(i do.Injector) (*handlers.ResourceHandler, error) {
		return newResourceHandler(i, app.TaskResource, logger), nil
	})

	do.ProvideNamed(injector, ports.CollectionPlaces, func(i do.Injector) (*handlers.ResourceHandler, error) {
		return newResourceHandler(i, app.PlaceResource, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		registry.Register(do.MustInvoke[*jsonfile.Store](i))
		registry.Register(do.MustInvoke[*neutrino.Verifier](i))
		return registry, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		auth := do.MustInvoke[ports.AuthService](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		routes := adapthttp.Routes{
			Users:        handlers.NewUserHandler(do.MustInvoke[ports.UserService](i)),
			Auth:         handlers.NewAuthHandler(auth),
			Tasks:        do.MustInvokeNamed[*handlers.ResourceHandler](i, ports.CollectionTasks),
			Places:       do.MustInvokeNamed[*handlers.ResourceHandler](i, ports.CollectionPlaces),
			Health:       handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			Authenticate: middleware.Authenticate(auth),
			StaticDir:    cfg.Static.Dir,
		}

		return adapthttp.NewRouter(routes,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.AppContext(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

func newResourceHandler(
	i do.Injector,
	resource func(ports.Store) app.ResourceConfig,
	logger *slog.Logger,
) *handlers.ResourceHandler {
	store := do.MustInvoke[ports.Store](i)
	svc := app.NewResourceService(
		resource(store),
		store,
		do.MustInvoke[*app.CollectionLocks](i),
		do.MustInvoke[*telemetry.Metrics](i),
		logger,
	)
	return handlers.NewResourceHandler(svc)
}
