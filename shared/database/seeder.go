package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"supervisionlab-backend/shared/synth"
)

// SeedSnapshot loads the supervision half of a snapshot into the relational
// store inside one transaction: either every table commits or none do.
// Dimension-like entities (regions, supervisors, workers) are upserted on
// their business keys so re-seeding against an existing schema is a no-op
// for them; cases and reviews are fact-like and use plain inserts.
func SeedSnapshot(db *gorm.DB, snap *synth.Snapshot) error {
	log.Println("🌱 Seeding OLTP database...")

	err := db.Transaction(func(tx *gorm.DB) error {
		// Insert order follows the foreign-key graph. The deterministic
		// generator reproduces ids as well as business keys on a re-run, so
		// the upsert skips on whichever unique constraint fires.
		if err := tx.Clauses(clause.OnConflict{
			DoNothing: true,
		}).Create(&snap.Regions).Error; err != nil {
			return fmt.Errorf("failed to seed regions: %w", err)
		}
		log.Printf("Inserted %d regions", len(snap.Regions))

		if err := tx.Clauses(clause.OnConflict{
			DoNothing: true,
		}).Omit("Region").Create(&snap.Supervisors).Error; err != nil {
			return fmt.Errorf("failed to seed supervisors: %w", err)
		}
		log.Printf("Inserted %d supervisors", len(snap.Supervisors))

		if err := tx.Clauses(clause.OnConflict{
			DoNothing: true,
		}).Omit("Supervisor", "Region").Create(&snap.Workers).Error; err != nil {
			return fmt.Errorf("failed to seed workers: %w", err)
		}
		log.Printf("Inserted %d workers", len(snap.Workers))

		if err := tx.Omit("Worker").Create(&snap.Cases).Error; err != nil {
			return fmt.Errorf("failed to seed cases: %w", err)
		}
		log.Printf("Inserted %d cases", len(snap.Cases))

		if err := tx.Omit("Case", "Supervisor").Create(&snap.Reviews).Error; err != nil {
			return fmt.Errorf("failed to seed reviews: %w", err)
		}
		log.Printf("Inserted %d reviews", len(snap.Reviews))

		return nil
	})
	if err != nil {
		return err
	}

	log.Println("✅ OLTP database seeded successfully")
	return nil
}
