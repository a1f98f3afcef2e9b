package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/maid-cafe-service/internal/api/http"
	"github.com/spec-kit/maid-cafe-service/internal/api/http/handlers"
	"github.com/spec-kit/maid-cafe-service/internal/auth"
	"github.com/spec-kit/maid-cafe-service/internal/config"
	"github.com/spec-kit/maid-cafe-service/internal/observability"
	"github.com/spec-kit/maid-cafe-service/internal/persistence"
	"github.com/spec-kit/maid-cafe-service/internal/repository"
	"github.com/spec-kit/maid-cafe-service/internal/service"
)

const shutdownTimeout = 10 * time.Second

func newRootCmd() *cobra.Command {
	var (
		envFiles []string
		cfg      *config.Config
	)

	root := &cobra.Command{
		Use:           "maid-cafe",
		Short:         "Maid cafe REST API",
		Long:          "CRUD REST API for customers, maids and orders with token authentication and JSON/XML output.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(envFiles...)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return nil
		},
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv files to load (default .env)")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cfg)
		},
	}

	var subject string
	token := &cobra.Command{
		Use:   "token",
		Short: "Mint a session token for smoke tests",
		RunE: func(cmd *cobra.Command, args []string) error {
			if subject == "" {
				subject = cfg.Auth.Username
			}
			tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())
			signed, expiresAt, err := tokens.Issue(subject)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", expiresAt.UTC().Format(time.RFC3339))
			return nil
		},
	}
	token.Flags().StringVar(&subject, "subject", "", "token subject (default AUTH_USERNAME)")

	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context(), cfg)
		},
	}

	root.AddCommand(serve, token, migrate)
	root.RunE = serve.RunE
	return root
}

func runServe(ctx context.Context, cfg *config.Config) error {
	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		return fmt.Errorf("failed to connect postgres: %w", err)
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()
	var cache handlers.Pinger
	if redis != nil {
		cache = redis
	}

	pool := pg.PoolHandle()
	customerService := service.NewCustomerService(repository.NewCustomerRepository(pool))
	maidService := service.NewMaidService(repository.NewMaidRepository(pool))
	orderService := service.NewOrderService(repository.NewOrderRepository(pool))

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())
	validator, err := auth.NewCredentialValidator(cfg.Auth, tokens)
	if err != nil {
		return err
	}
	authService := service.NewAuthService(validator)

	metrics := observability.NewMetrics("maid_cafe")
	app := httptransport.NewApp(cfg.App)
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, cache),
		Auth:      handlers.NewAuthHandler(authService),
		Customers: handlers.NewCustomersHandler(customerService),
		Maids:     handlers.NewMaidsHandler(maidService),
		Orders:    handlers.NewOrdersHandler(orderService),
		Gate:      auth.NewAccessGate(tokens),
		Metrics:   metrics,
	})

	listenErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening",
			zap.String("addr", cfg.App.Addr()),
			zap.String("env", cfg.App.Env),
			zap.String("version", cfg.App.Version),
		)
		listenErr <- app.Listen(cfg.App.Addr())
	}()

	if err := waitForShutdown(logger, listenErr); err != nil {
		return fmt.Errorf("fiber listen: %w", err)
	}
	return app.ShutdownWithTimeout(shutdownTimeout)
}

func runMigrate(ctx context.Context, cfg *config.Config) error {
	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		return fmt.Errorf("failed to connect postgres: %w", err)
	}
	defer pg.Close()

	return persistence.RunMigrations(ctx, pg.PoolHandle(), logger)
}

// waitForShutdown blocks until a termination signal arrives or the listener fails.
func waitForShutdown(logger *zap.Logger, listenErr <-chan error) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
		return nil
	case err := <-listenErr:
		return err
	}
}
