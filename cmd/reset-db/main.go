package main

import (
	"log"

	"supervisionlab-backend/shared/config"
	"supervisionlab-backend/shared/database"
	"supervisionlab-backend/shared/database/models"
)

func main() {
	log.Println("🗑️ Resetting OLTP database...")

	// Load configuration
	config.LoadConfig()

	if err := database.InitDatabase(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDatabase()

	// Drop in reverse dependency order so foreign keys never block.
	tables := []interface{}{
		&models.Review{},
		&models.Case{},
		&models.Worker{},
		&models.Supervisor{},
		&models.Region{},
	}

	migrator := database.GetDB().Migrator()
	for _, table := range tables {
		if !migrator.HasTable(table) {
			continue
		}
		if err := migrator.DropTable(table); err != nil {
			log.Fatalf("Failed to drop table for %T: %v", table, err)
		}
		log.Printf("Dropped table for %T", table)
	}

	log.Println("✅ Database reset completed")
}
