package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/marketplace/internal/auth"
	"github.com/nikolayk812/marketplace/internal/config"
	"github.com/nikolayk812/marketplace/internal/httpapi"
	"github.com/nikolayk812/marketplace/internal/notify"
	"github.com/nikolayk812/marketplace/internal/payment"
	"github.com/nikolayk812/marketplace/internal/repository"
	"github.com/nikolayk812/marketplace/internal/service"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("pgxpool.New: %w", err)
	}
	defer pool.Close()

	if err := repository.Migrate(ctx, pool); err != nil {
		return fmt.Errorf("repository.Migrate: %w", err)
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("redis.ParseURL: %w", err)
	}
	redisClient := redis.NewClient(redisOpts)
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close failed", "error", err)
		}
	}()

	sender, closeSender, err := newSender(cfg, logger)
	if err != nil {
		return fmt.Errorf("newSender: %w", err)
	}
	defer closeSender()

	dispatcher, err := notify.NewDispatcher(sender, cfg.NotifyTimeout, logger)
	if err != nil {
		return fmt.Errorf("notify.NewDispatcher: %w", err)
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()

	failedSends := make(chan int, 1)
	go func() {
		var n int
		dispatcher.Watch(watchCtx, func(notify.DeliveryError) { n++ })
		failedSends <- n
	}()

	handler, err := newHandler(cfg, logger, pool, redisClient, dispatcher)
	if err != nil {
		return fmt.Errorf("newHandler: %w", err)
	}

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server.ListenAndServe: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	var shutdownErr error
	if err := server.Shutdown(shutdownCtx); err != nil {
		shutdownErr = errors.Join(shutdownErr, fmt.Errorf("server.Shutdown: %w", err))
	}
	if err := dispatcher.Close(shutdownCtx); err != nil {
		shutdownErr = errors.Join(shutdownErr, fmt.Errorf("dispatcher.Close: %w", err))
	}

	stopWatch()
	if n := <-failedSends; n > 0 {
		logger.Warn("order notifications failed since start", "count", n)
	}

	if shutdownErr == nil {
		logger.Info("server exited properly")
	}

	return shutdownErr
}

// newSender publishes to AMQP when a broker is configured and only logs otherwise.
func newSender(cfg config.Config, logger *slog.Logger) (notify.Sender, func(), error) {
	if cfg.AMQPURL == "" {
		logger.Warn("AMQP_URL is empty, order confirmations are only logged")
		return notify.NewLogSender(logger), func() {}, nil
	}

	conn, ch, err := notify.SetupConn(cfg.AMQPURL, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("notify.SetupConn: %w", err)
	}

	closeFn := func() {
		if err := ch.Close(); err != nil {
			logger.Warn("amqp channel close failed", "error", err)
		}
		if err := conn.Close(); err != nil {
			logger.Warn("amqp connection close failed", "error", err)
		}
	}

	return notify.NewAMQPSender(ch), closeFn, nil
}

func newHandler(cfg config.Config, logger *slog.Logger, pool *pgxpool.Pool, redisClient *redis.Client, dispatcher *notify.Dispatcher) (*httpapi.Handler, error) {
	orderRepo, err := repository.NewOrder(pool)
	if err != nil {
		return nil, fmt.Errorf("repository.NewOrder: %w", err)
	}
	userRepo := repository.NewUser(pool)

	sessions, err := auth.NewSessionStore(redisClient, cfg.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("auth.NewSessionStore: %w", err)
	}

	gate, err := auth.NewGate(sessions, userRepo)
	if err != nil {
		return nil, fmt.Errorf("auth.NewGate: %w", err)
	}

	orders, err := service.NewOrderService(orderRepo, userRepo, dispatcher, logger)
	if err != nil {
		return nil, fmt.Errorf("service.NewOrderService: %w", err)
	}

	users, err := service.NewUserService(userRepo, sessions)
	if err != nil {
		return nil, fmt.Errorf("service.NewUserService: %w", err)
	}

	catalog, err := service.NewCatalogService(repository.NewProduct(pool), repository.NewProperty(pool))
	if err != nil {
		return nil, fmt.Errorf("service.NewCatalogService: %w", err)
	}

	stripe, err := payment.NewStripeGateway(cfg.StripeURL, cfg.StripeSecretKey, cfg.PaymentTimeout)
	if err != nil {
		return nil, fmt.Errorf("payment.NewStripeGateway: %w", err)
	}

	paytm, err := payment.NewHTTPGateway(cfg.PaytmURL, cfg.PaytmMerchantID, cfg.PaymentTimeout)
	if err != nil {
		return nil, fmt.Errorf("payment.NewHTTPGateway: %w", err)
	}

	rpc, err := payment.NewRPCGateway(cfg.RPCURL, cfg.PaymentTimeout)
	if err != nil {
		return nil, fmt.Errorf("payment.NewRPCGateway: %w", err)
	}

	return httpapi.NewHandler(httpapi.Deps{
		Orders:  orders,
		Users:   users,
		Catalog: catalog,
		Auth:    gate,
		Stripe:  stripe,
		Paytm:   paytm,
		RPC:     rpc,
		Checks: map[string]httpapi.HealthCheck{
			"postgres": pool.Ping,
			"redis": func(ctx context.Context) error {
				return redisClient.Ping(ctx).Err()
			},
		},
		SessionTTL: cfg.SessionTTL,
		Logger:     logger,
	})
}
