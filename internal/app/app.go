package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/heartmarshall/watchlist-backend/internal/adapter/records/ledger"
	"github.com/heartmarshall/watchlist-backend/internal/adapter/records/policy"
	"github.com/heartmarshall/watchlist-backend/internal/config"
	"github.com/heartmarshall/watchlist-backend/internal/metrics"
	"github.com/heartmarshall/watchlist-backend/internal/service/alert"
	"github.com/heartmarshall/watchlist-backend/internal/service/settings"
	"github.com/heartmarshall/watchlist-backend/internal/service/watchlist"
	"github.com/heartmarshall/watchlist-backend/internal/transport/discord"
	"github.com/heartmarshall/watchlist-backend/internal/transport/rest"
)

// Run is the application entry point. It opens storage, connects to the
// gateway and serves the operator HTTP endpoints until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("storage", cfg.Storage.Driver),
		slog.String("locks", cfg.Locks.Driver),
		slog.String("log_level", cfg.Log.Level),
	)

	storage, err := OpenStorage(ctx, cfg.Storage, logger)
	if err != nil {
		return err
	}
	defer storage.Close()

	if cfg.Storage.AutoMigrate {
		if _, err := storage.MigrateUp(ctx); err != nil {
			return err
		}
	}
	if err := storage.EnsureSchema(ctx); err != nil {
		return err
	}

	locks, closeLocks, err := newLocker(ctx, cfg.Locks, logger)
	if err != nil {
		return err
	}
	defer closeLocks()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	sess, err := discord.NewSession(cfg.Discord)
	if err != nil {
		return err
	}

	policies := policy.New(storage.Store, logger)
	ledgerRepo := ledger.New(storage.Store, logger)

	dispatcher := alert.NewDispatcher(logger,
		discord.NewDirectory(sess, sess.State),
		discord.NewSender(sess),
		m,
		alert.Config{
			Concurrency:   cfg.Dispatch.Concurrency,
			RatePerSecond: cfg.Dispatch.RatePerSecond,
			Burst:         cfg.Dispatch.Burst,
			SendTimeout:   cfg.Dispatch.SendTimeout,
		},
	)
	engine := watchlist.NewService(logger, policies, ledgerRepo, locks, dispatcher, m,
		watchlist.Config{IgnoreBots: cfg.Discord.IgnoreBots})
	settingsSvc := settings.NewService(logger, policies, ledgerRepo, dispatcher, storage.Tx)

	handler := discord.NewHandler(logger, sess, engine, settingsSvc, m, cfg.Discord)
	bot := discord.NewBot(logger, sess, handler)

	srv := &http.Server{
		Addr: net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler: rest.NewRouter(logger, m,
			rest.NewHealthHandler(storage, bot, BuildVersion()),
			rest.NewAdminHandler(policies, ledgerRepo, logger),
			reg,
		),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	if err := bot.Start(ctx); err != nil {
		shutdownHTTP(srv, cfg.Server, logger)
		return err
	}

	var runErr error
	select {
	case <-ctx.Done():
	case err := <-errCh:
		runErr = fmt.Errorf("http server: %w", err)
	}

	logger.Info("shutting down")
	if err := bot.Close(); err != nil {
		logger.Error("gateway close", slog.String("error", err.Error()))
	}
	shutdownHTTP(srv, cfg.Server, logger)
	logger.Info("stopped")
	return runErr
}

func shutdownHTTP(srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("http shutdown", slog.String("error", err.Error()))
	}
}

// ResetScope restores a scope's policy to defaults and zeroes its join
// counters without connecting to the gateway.
func ResetScope(ctx context.Context, cfg *config.Config, logger *slog.Logger, scopeID string) (*settings.ResetScopeResult, error) {
	storage, err := OpenStorage(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, err
	}
	defer storage.Close()

	if err := storage.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	// Reset never announces, so no delivery path is wired.
	svc := settings.NewService(logger,
		policy.New(storage.Store, logger),
		ledger.New(storage.Store, logger),
		nil,
		storage.Tx,
	)
	return svc.ResetScope(ctx, scopeID)
}
