package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"
	"trip-planner-service/internal/adapters/cache"
	"trip-planner-service/internal/adapters/places"
	"trip-planner-service/internal/adapters/repositories"
	"trip-planner-service/internal/api"
	"trip-planner-service/internal/config"
	"trip-planner-service/internal/platform/db"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/session"

	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres, Redis, recommendation API)
// behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	conn, dialect, store, err := openPlanStore(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	// Demo plans are optional for local runs.
	if cfg.SeedPath != "" {
		n, err := repositories.SeedFromJSON(ctx, store, cfg.SeedPath)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("Seeded plans count=%d path=%s", n, cfg.SeedPath)
	}

	provider, err := places.NewRecoClient(cfg.RecoBaseURL, cfg.RecoTimeout)
	if err != nil {
		log.Fatal(err)
	}

	// Redis is preferred for the place cache; the plan database serves as a
	// fallback so repeated searches stay cheap on single-node runs.
	var placeCache ports.PlaceCache = cache.NewSQLPlaceCache(conn, dialect, cfg.PlacesCacheTTL)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("redis unavailable, using sql place cache: addr=%s err=%v", cfg.RedisAddr, err)
		} else {
			placeCache = cache.NewRedisPlaceCache(rdb, cfg.PlacesCacheTTL)
		}
	}

	router := api.NewRouter(api.Deps{
		Sessions:       session.NewRegistry(),
		Store:          store,
		Places:         provider,
		PlaceCache:     placeCache,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	log.Printf("Server listening addr=:%s db=%s", cfg.Port, cfg.DBDriver)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// planStore is a PlanStore that can also be seeded.
type planStore interface {
	ports.PlanStore
	repositories.PlanSeeder
}

func openPlanStore(
	ctx context.Context,
	cfg *config.Config,
) (*sql.DB, repositories.Dialect, planStore, error) {
	dialect, err := repositories.ParseDialect(cfg.DBDriver)
	if err != nil {
		return nil, "", nil, fmt.Errorf("open plan store: %w", err)
	}

	var conn *sql.DB
	switch dialect {
	case repositories.DialectPostgres:
		conn, err = db.Open(ctx, cfg.DatabaseURL)
	default:
		conn, err = db.OpenSqlite(ctx, cfg.DBPath)
	}
	if err != nil {
		return nil, "", nil, fmt.Errorf("open plan store: %w", err)
	}

	if err := repositories.InitSchema(ctx, conn, dialect); err != nil {
		conn.Close()
		return nil, "", nil, fmt.Errorf("open plan store: %w", err)
	}

	if dialect == repositories.DialectPostgres {
		return conn, dialect, repositories.NewPostgresPlanStore(conn), nil
	}
	return conn, dialect, repositories.NewSqlitePlanStore(conn), nil
}
