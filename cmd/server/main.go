package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rebookz-admin/internal/apiclient"
	"rebookz-admin/internal/config"
	"rebookz-admin/internal/console"
	"rebookz-admin/internal/db"
	"rebookz-admin/internal/guest"
	"rebookz-admin/internal/listing"
	"rebookz-admin/internal/logger"
	"rebookz-admin/internal/session"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	shutdownTimeout = 10 * time.Second
	sweepInterval   = time.Minute
)

var (
	openStoreFunc   = openStore
	startServerFunc = startServer
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server exited", zap.Error(err))
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStoreFunc(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	c, err := newServer(cfg, store)
	if err != nil {
		return err
	}

	go sweep(ctx, store, c.Workspaces())
	go c.Limiter().Run(ctx)

	logger.L().Info("admin console listening",
		zap.String("port", cfg.AppPort),
		zap.String("api", cfg.APIBaseURL),
		zap.String("session_store", cfg.SessionStore),
	)
	return startServerFunc(ctx, ":"+cfg.AppPort, c.Routes())
}

func newServer(cfg *config.Config, store session.Store) (*console.Console, error) {
	api := apiclient.New(cfg.APIBaseURL, apiclient.WithTimeout(cfg.APITimeout))

	sessions := session.NewService(
		session.NewRepository(api),
		store,
		session.NewSigner(cfg.SessionSecret),
		cfg.SessionTTL,
	)
	guestSvc := guest.NewService(api, guest.Options{
		ServerURL:   cfg.ServerURL,
		Scheme:      cfg.AppScheme,
		DownloadURL: cfg.AppDownloadURL,
	})

	mode := listing.KeywordOnSubmit
	if cfg.KeywordMode == "live" {
		mode = listing.KeywordLive
	}

	return console.New(api, sessions, guestSvc, console.Options{
		ServerURL:    cfg.ServerURL,
		CookieName:   cfg.SessionCookie,
		SecureCookie: cfg.IsProduction(),
		PageSize:     cfg.PageSize,
		KeywordMode:  mode,
		SuperAdmin:   cfg.SuperAdminEmail,
		LoginRate:    cfg.LoginRateLimit,
		LoginBurst:   cfg.LoginRateBurst,

		TrustedProxies: cfg.TrustedProxies,
	})
}

// openStore connects the session store named by SESSION_STORE. The returned
// func releases its connection.
func openStore(ctx context.Context, cfg *config.Config) (session.Store, func(), error) {
	switch cfg.SessionStore {
	case "postgres":
		database, err := db.NewDatabase(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return session.NewPostgresStore(database), func() { _ = database.Close() }, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		return session.NewRedisStore(client), func() { _ = client.Close() }, nil

	default:
		return session.NewMemoryStore(), func() {}, nil
	}
}

// sweep drops expired sessions and their workspaces until ctx is done.
func sweep(ctx context.Context, store session.Store, workspaces *console.Workspaces) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweepOnce(ctx, store, workspaces)
		}
	}
}

func sweepOnce(ctx context.Context, store session.Store, workspaces *console.Workspaces) {
	log := logger.L().With(zap.String("layer", "sweeper"))

	if s, ok := store.(session.Sweeper); ok {
		n, err := s.DeleteExpired(ctx)
		if err != nil {
			log.Error("failed to delete expired sessions", zap.Error(err))
		} else if n > 0 {
			log.Info("expired sessions deleted", zap.Int64("count", n))
		}
	}
	if n := workspaces.Sweep(); n > 0 {
		log.Info("expired workspaces dropped", zap.Int("count", n))
	}
}

func startServer(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.L().Info("shutting down admin console")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
