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

	"github.com/actuallystonmai/program-finder/internal/cache"
	"github.com/actuallystonmai/program-finder/internal/catalog"
	"github.com/actuallystonmai/program-finder/internal/config"
	"github.com/actuallystonmai/program-finder/internal/handler"
	"github.com/actuallystonmai/program-finder/internal/logger"
	"github.com/actuallystonmai/program-finder/internal/repository"
	"github.com/actuallystonmai/program-finder/internal/router"
	"github.com/actuallystonmai/program-finder/internal/service"
	"github.com/actuallystonmai/program-finder/migrations"
	"github.com/actuallystonmai/program-finder/seeds"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var opts []service.Option
	questions := seeds.Questions()
	programs := seeds.Programs()

	// ------------ PostgreSQL ---------------
	if cfg.CatalogSource == config.SourcePostgres {
		pool, err := openPool(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer pool.Close()

		// for migrate-down using CLI command
		if len(os.Args) > 1 && os.Args[1] == "migrate-down" {
			if _, err := pool.Exec(ctx, migrations.Down); err != nil {
				return fmt.Errorf("migrate down: %w", err)
			}
			log.Info("migrations dropped")
			return nil
		}

		if _, err := pool.Exec(ctx, migrations.Up); err != nil {
			return fmt.Errorf("migrate up: %w", err)
		}
		log.Info("migrations applied")

		repo := repository.NewRepository(pool)
		if err := checkSeed(ctx, repo, pool, log); err != nil {
			return err
		}

		questions, programs, err = repo.Load(ctx)
		if err != nil {
			return err
		}
		opts = append(opts, service.WithLoader(repo))
	}

	snap, err := catalog.New(questions, programs)
	if err != nil {
		return err
	}
	log.Info("catalog loaded",
		zap.String("source", cfg.CatalogSource),
		zap.String("catalog_version", snap.Version()),
		zap.Int("questions", len(questions)),
		zap.Int("programs", len(programs)),
	)

	// ------------ Redis ---------------
	if cfg.CacheEnabled() {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("parse redis url: %w", err)
		}
		client := redis.NewClient(redisOpts)
		defer client.Close()

		c := cache.NewCache(client, cfg.CacheTTL)
		if err := c.Ping(ctx); err != nil {
			log.Warn("redis unreachable, continuing without a warm cache", zap.Error(err))
		} else {
			log.Info("connected to Redis")
		}
		opts = append(opts, service.WithCache(c))
	} else {
		log.Info("result cache disabled")
	}

	opts = append(opts, service.WithBatchConcurrency(cfg.BatchConcurrency))
	svc := service.NewService(catalog.NewStore(snap), log, opts...)
	h := handler.NewHandler(svc, log)

	// ---------------- Server --------------------
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.Setup(h, log, cfg.RequestTimeout),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openPool(ctx context.Context, cfg *config.Config, log *zap.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.DBPoolSize)
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := waitForDB(ctx, pool, log); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database not ready: %w", err)
	}
	log.Info("connected to PostgreSQL")
	return pool, nil
}

func waitForDB(ctx context.Context, pool *pgxpool.Pool, log *zap.Logger) error {
	for i := 0; i < 30; i++ {
		if err := pool.Ping(ctx); err == nil {
			return nil
		}
		log.Info("waiting for database", zap.Int("attempt", i+1), zap.Int("max_attempts", 30))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(1 * time.Second):
		}
	}
	return fmt.Errorf("database connection timeout after 30s")
}

func checkSeed(ctx context.Context, repo *repository.Repository, pool *pgxpool.Pool, log *zap.Logger) error {
	count, err := repo.CountPrograms(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Info("database already seeded, skipping", zap.Int("programs", count))
		return nil
	}
	return seeds.Setup(ctx, pool, log)
}
