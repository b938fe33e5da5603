package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"iotpersistence/adapters/redis"
	"iotpersistence/adapters/sqlite"
	"iotpersistence/domain"
	"iotpersistence/handlers"
	"iotpersistence/interfaces"
	"iotpersistence/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
)

const (
	userCachePrefix     = "iotpersistence_user"
	healthCheckInterval = 5 * time.Second
	shutdownTimeout     = 10 * time.Second
)

// app is the wired service: storage, services, the HTTP API and the health server.
type app struct {
	config    *Config
	logger    log.Logger
	store     *sqlite.Store
	directory *service.Directory
	echo      *echo.Echo
	grpc      *grpc.Server
	health    *health.Server
	closers   []func() error

	httpListener   net.Listener
	healthListener net.Listener
}

// newApp opens the database and the optional cache and wires every component.
func newApp(config *Config, logger log.Logger) (*app, error) {
	a := &app{config: config, logger: logger}

	{
		store, err := sqlite.Open(config.Database)
		if err != nil {
			return nil, fmt.Errorf("open database %s: %w", config.Database, err)
		}
		a.store = store
		a.closers = append(a.closers, store.Close)
		level.Info(logger).Log("msg", "Database opened", "path", config.Database)
	}

	var userStore interfaces.UserStore
	{
		userStore = sqlite.NewUserStore(a.store)
		if config.RedisAddr != "" {
			redisClient, err := redis.NewRedisUniversalClient(config.RedisAddr)
			if err != nil {
				a.Close()
				return nil, fmt.Errorf("create redis client: %w", err)
			}
			a.closers = append(a.closers, redisClient.Close)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := redisClient.Ping(ctx).Err(); err != nil {
				a.Close()
				return nil, fmt.Errorf("connect to redis: %w", err)
			}
			level.Info(logger).Log("msg", "Connected to Redis", "redis_addr", config.RedisAddr)

			cache := redis.NewJSONCache[domain.User](redisClient, userCachePrefix)
			userStore = service.NewCachedUserStore(userStore, cache, config.CacheTTLMs, log.WithPrefix(logger, "component", "UserCache"))
		}
	}

	var (
		stateStore = sqlite.NewStateStore(a.store)
		hasher     = service.NewBcryptHasher(config.BcryptCost)
	)

	var (
		credentials *service.CredentialStore
		states      *service.StateService
	)
	{
		credentials = service.NewCredentialStore(userStore, hasher, log.WithPrefix(logger, "component", "CredentialStore"))
		states = service.NewStateService(stateStore, log.WithPrefix(logger, "component", "StateService"))
		a.directory = service.NewDirectory(userStore, stateStore, hasher, log.WithPrefix(logger, "component", "Directory"))
	}

	{
		validator, err := handlers.NewOpenAPIRouter()
		if err != nil {
			a.Close()
			return nil, err
		}

		e := echo.New()
		e.HideBanner = true
		e.HidePort = true
		service.RegisterErrorHandler(e, logger)
		e.Use(handlers.RequestID(), handlers.AccessLog(log.WithPrefix(logger, "component", "AccessLog")))
		handlers.RegisterHandlers(e, handlers.NewHTTPServer(states, a.directory, logger), handlers.RouteOptions{
			Authenticator: credentials,
			Realm:         config.Realm,
			Validator:     validator,
		})
		a.echo = e
	}

	if config.HealthPort != 0 {
		a.grpc, a.health = newHealthServer()
	}

	return a, nil
}

// Listen binds the configured ports.
func (a *app) Listen() error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", a.config.HTTPPort))
	if err != nil {
		return fmt.Errorf("listen http: %w", err)
	}
	a.httpListener = lis
	a.echo.Listener = lis

	if a.grpc != nil {
		lis, err := net.Listen("tcp", fmt.Sprintf(":%d", a.config.HealthPort))
		if err != nil {
			a.httpListener.Close()
			return fmt.Errorf("listen health: %w", err)
		}
		a.healthListener = lis
	}
	return nil
}

// Serve runs the servers until ctx is done or one of them fails, then shuts both down.
func (a *app) Serve(ctx context.Context) error {
	errCh := make(chan error, 2)

	go func() {
		level.Info(a.logger).Log("msg", "Starting HTTP server", "addr", a.httpListener.Addr())
		if err := a.echo.Start(""); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	watchCtx, stopWatch := context.WithCancel(ctx)
	defer stopWatch()
	if a.grpc != nil {
		go watchHealth(watchCtx, a.store, a.health, healthCheckInterval, a.logger)
		go func() {
			level.Info(a.logger).Log("msg", "Starting gRPC health server", "addr", a.healthListener.Addr())
			if err := a.grpc.Serve(a.healthListener); err != nil {
				errCh <- fmt.Errorf("health server: %w", err)
			}
		}()
	}

	var err error
	select {
	case <-ctx.Done():
	case err = <-errCh:
		level.Error(a.logger).Log("msg", "Server failed", "err", err)
	}

	level.Info(a.logger).Log("msg", "Shutting down...")
	stopWatch()
	if a.health != nil {
		a.health.Shutdown()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if shutdownErr := a.echo.Shutdown(shutdownCtx); shutdownErr != nil {
		level.Error(a.logger).Log("msg", "Error during server shutdown", "err", shutdownErr)
	}
	if a.grpc != nil {
		a.grpc.GracefulStop()
	}

	level.Info(a.logger).Log("msg", "Server stopped")
	return err
}

// Close releases the cache and the database in reverse order of opening.
func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
