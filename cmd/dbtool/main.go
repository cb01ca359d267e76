package main

import (
	"context"
	"database/sql"
	"log"
	"time"
	"trip-planner-service/internal/adapters/repositories"
	"trip-planner-service/internal/config"
	"trip-planner-service/internal/platform/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	dialect, err := repositories.ParseDialect(cfg.DBDriver)
	if err != nil {
		log.Fatal(err)
	}

	var conn *sql.DB
	if dialect == repositories.DialectPostgres {
		conn, err = db.Open(ctx, cfg.DatabaseURL)
	} else {
		conn, err = db.OpenSqlite(ctx, cfg.DBPath)
	}
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	var store repositories.PlanSeeder = repositories.NewSqlitePlanStore(conn)
	if dialect == repositories.DialectPostgres {
		store = repositories.NewPostgresPlanStore(conn)
	}

	seedPath := config.Get("SEED_PATH", "data/seeds/plans.json")
	initAndSeed(ctx, conn, dialect, store, seedPath)
}

func initAndSeed(ctx context.Context, conn *sql.DB, dialect repositories.Dialect, store repositories.PlanSeeder, seedPath string) {
	log.Printf("Initializing database schema... driver=%s", dialect)
	if err := repositories.InitSchema(ctx, conn, dialect); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	n, err := repositories.SeedFromJSON(ctx, store, seedPath)
	if err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Printf("Seeding complete. plans=%d", n)
}
