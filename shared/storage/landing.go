package storage

import (
	"context"
	"fmt"
	"log"

	"supervisionlab-backend/shared/synth"
)

const (
	contactsObjectKey          = "hubspot/contacts.csv"
	dealsObjectKey             = "hubspot/deals.csv"
	stateRequirementsObjectKey = "reference/state_requirements.xlsx"

	csvContentType  = "text/csv"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// SeedLanding serializes the CRM half of a snapshot plus the static
// reference workbook and uploads everything into the landing bucket. The
// first failed step aborts the remaining ones.
func SeedLanding(ctx context.Context, store *LandingStore, snap *synth.Snapshot) error {
	log.Println("🌱 Seeding landing bucket...")

	if err := store.EnsureBucket(ctx); err != nil {
		return err
	}

	contactsCSV, err := ContactsCSV(snap.Contacts)
	if err != nil {
		return fmt.Errorf("failed to serialize contacts: %w", err)
	}
	if err := store.UploadObject(ctx, contactsObjectKey, contactsCSV, csvContentType); err != nil {
		return err
	}
	log.Printf("Uploaded %d contacts to %s", len(snap.Contacts), contactsObjectKey)

	dealsCSV, err := DealsCSV(snap.Deals)
	if err != nil {
		return fmt.Errorf("failed to serialize deals: %w", err)
	}
	if err := store.UploadObject(ctx, dealsObjectKey, dealsCSV, csvContentType); err != nil {
		return err
	}
	log.Printf("Uploaded %d deals to %s", len(snap.Deals), dealsObjectKey)

	workbook, err := StateRequirementsXLSX()
	if err != nil {
		return fmt.Errorf("failed to serialize state requirements: %w", err)
	}
	if err := store.UploadObject(ctx, stateRequirementsObjectKey, workbook, xlsxContentType); err != nil {
		return err
	}
	log.Printf("Uploaded state requirements to %s", stateRequirementsObjectKey)

	log.Println("✅ Landing bucket seeded successfully")
	return nil
}
