package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dento-health/dento-portal/backend/internal/adapters/database"
	"github.com/dento-health/dento-portal/backend/internal/adapters/search"
	"github.com/dento-health/dento-portal/backend/internal/domain/repositories"
	"github.com/dento-health/dento-portal/backend/internal/infrastructure/clients/postgres"
	"github.com/dento-health/dento-portal/backend/internal/infrastructure/clients/typesense"
	"github.com/dento-health/dento-portal/backend/pkg/config"
)

// Backfills the doctor search index from the database. Safe to re-run:
// index writes are upserts.
func main() {
	var batchSize int

	flag.IntVar(&batchSize, "batch", 100, "Doctors fetched per page")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pgClient.Close()

	typesenseClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		log.Fatalf("Failed to connect to Typesense: %v", err)
	}

	doctorRepo := database.NewDoctorAdapter(pgClient)
	searchAdapter := search.NewDoctorSearchAdapter(typesenseClient)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := searchAdapter.InitSchema(ctx); err != nil {
		log.Fatalf("Failed to init search schema: %v", err)
	}

	start := time.Now()
	indexed := 0
	failed := 0

	for offset := 0; ; offset += batchSize {
		doctors, err := doctorRepo.List(ctx, repositories.DoctorFilter{
			Limit:  batchSize,
			Offset: offset,
		})
		if err != nil {
			log.Fatalf("Failed to list doctors at offset %d: %v", offset, err)
		}
		if len(doctors) == 0 {
			break
		}

		for _, doctor := range doctors {
			if err := searchAdapter.Index(ctx, doctor); err != nil {
				log.Printf("Failed to index doctor %s: %v", doctor.ID, err)
				failed++
				continue
			}
			indexed++
		}
	}

	log.Printf("Indexing complete in %s", time.Since(start))
	log.Printf("Indexed: %d", indexed)
	log.Printf("Failed: %d", failed)
}
