package main

import (
	"context"
	"log"
	"os"
	"time"

	"supervisionlab-backend/shared/config"
	"supervisionlab-backend/shared/database"
	"supervisionlab-backend/shared/storage"
	"supervisionlab-backend/shared/synth"
)

type adapterFailure struct {
	adapter string
	err     error
}

func main() {
	log.Println("🌱 Starting data seeding...")

	// Load configuration
	config.LoadConfig()

	if delay := config.GetConfig().SeedStartupDelaySeconds; delay > 0 {
		log.Printf("Waiting %ds for services to initialize...", delay)
		time.Sleep(time.Duration(delay) * time.Second)
	}

	// One snapshot feeds every adapter.
	log.Println("Generating synthetic data...")
	snapshot := synth.New(synth.DefaultSeed).GenerateAll()
	log.Printf("Generated %d regions, %d supervisors, %d workers, %d cases, %d reviews",
		len(snapshot.Regions), len(snapshot.Supervisors), len(snapshot.Workers),
		len(snapshot.Cases), len(snapshot.Reviews))
	log.Printf("Generated %d contacts, %d companies, %d deals",
		len(snapshot.Contacts), len(snapshot.Companies), len(snapshot.Deals))

	// Adapters run strictly sequentially; a failure in one never prevents
	// the next from attempting to run.
	var failures []adapterFailure

	if err := seedOLTP(snapshot); err != nil {
		log.Printf("ERROR: Failed to seed OLTP database: %v", err)
		failures = append(failures, adapterFailure{adapter: "OLTP", err: err})
	}

	if err := seedLanding(snapshot); err != nil {
		log.Printf("ERROR: Failed to seed landing bucket: %v", err)
		failures = append(failures, adapterFailure{adapter: "Landing", err: err})
	}

	if len(failures) > 0 {
		log.Printf("Seeding completed with %d error(s):", len(failures))
		for _, failure := range failures {
			log.Printf("  - %s: %v", failure.adapter, failure.err)
		}
		os.Exit(1)
	}

	log.Println("✅ All data sources seeded successfully!")
}

func seedOLTP(snapshot *synth.Snapshot) error {
	if err := database.InitDatabase(); err != nil {
		return err
	}
	defer database.CloseDatabase()

	return database.SeedSnapshot(database.GetDB(), snapshot)
}

func seedLanding(snapshot *synth.Snapshot) error {
	store, err := storage.NewLandingStore()
	if err != nil {
		return err
	}

	return storage.SeedLanding(context.Background(), store, snapshot)
}
