package main

import (
	"context"
	"flag"
	"log"

	"github.com/UnknownOlympus/ems/internal/config"
	"github.com/UnknownOlympus/ems/internal/lib/logger/sl"
	"github.com/UnknownOlympus/ems/internal/metrics"
	"github.com/UnknownOlympus/ems/internal/repository"
	"github.com/UnknownOlympus/ems/internal/services/employees"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	migrationsDir := flag.String("dir", "migrations", "directory holding the goose migrations")
	seed := flag.Int("seed", 0, "number of demo employees to insert after migrating")
	flag.Parse()

	ctx := context.Background()
	cfg := config.MustLoad()

	dbpool, dbErr := repository.NewDatabase(ctx, cfg.Postgres)
	if dbErr != nil {
		log.Fatalf("Failed to connect to DB: %v", dbErr)
	}
	defer dbpool.Close()

	dtb := stdlib.OpenDBFromPool(dbpool)
	if migrationErr := goose.Up(dtb, *migrationsDir); migrationErr != nil {
		log.Fatal(migrationErr) //nolint:gocritic // process exits anyway
	}

	log.Println("✅ Migrations applied successfully")

	if *seed <= 0 {
		return
	}

	logger := sl.Setup(cfg.Env)
	repo := repository.NewEmployeeRepository(dbpool, metrics.NewMetrics(prometheus.NewRegistry()))

	created, seedErr := employees.NewStaff(logger, repo).Seed(ctx, *seed)
	if seedErr != nil {
		log.Fatalf("Failed to seed employees: %v", seedErr)
	}

	log.Printf("✅ Seeded %d employees", len(created))
}
