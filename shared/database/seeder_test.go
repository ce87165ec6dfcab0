package database

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"supervisionlab-backend/shared/database/models"
	"supervisionlab-backend/shared/synth"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, runMigrations(db))

	return db
}

func testSnapshot() *synth.Snapshot {
	return synth.NewAt(synth.DefaultSeed, testNow).Generate(synth.Counts{
		Supervisors: 3,
		Workers:     6,
		Cases:       20,
		Reviews:     30,
		Contacts:    2,
		Companies:   2,
		Deals:       2,
	})
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func TestSeedSnapshot(t *testing.T) {
	db := newTestDB(t, "seed_snapshot")
	snap := testSnapshot()

	require.NoError(t, SeedSnapshot(db, snap))

	assert.EqualValues(t, 10, countRows(t, db, &models.Region{}))
	assert.EqualValues(t, 3, countRows(t, db, &models.Supervisor{}))
	assert.EqualValues(t, 6, countRows(t, db, &models.Worker{}))
	assert.EqualValues(t, 20, countRows(t, db, &models.Case{}))
	assert.EqualValues(t, 30, countRows(t, db, &models.Review{}))

	// Every foreign key must resolve after the load.
	var orphaned int64
	require.NoError(t, db.Model(&models.Review{}).
		Where("case_id NOT IN (?)", db.Model(&models.Case{}).Select("id")).
		Count(&orphaned).Error)
	assert.Zero(t, orphaned, "reviews must not reference missing cases")

	require.NoError(t, db.Model(&models.Case{}).
		Where("worker_id NOT IN (?)", db.Model(&models.Worker{}).Select("id")).
		Count(&orphaned).Error)
	assert.Zero(t, orphaned, "cases must not reference missing workers")

	require.NoError(t, db.Model(&models.Worker{}).
		Where("supervisor_id NOT IN (?)", db.Model(&models.Supervisor{}).Select("id")).
		Count(&orphaned).Error)
	assert.Zero(t, orphaned, "workers must not reference missing supervisors")
}

func TestSeedSnapshotRollsBackOnConflict(t *testing.T) {
	db := newTestDB(t, "seed_rollback")
	snap := testSnapshot()

	require.NoError(t, SeedSnapshot(db, snap))

	// Dimension upserts are idempotent, but re-inserting the fact rows with
	// identical primary keys must fail and roll the whole pass back.
	err := SeedSnapshot(db, snap)
	require.Error(t, err)

	assert.EqualValues(t, 10, countRows(t, db, &models.Region{}))
	assert.EqualValues(t, 3, countRows(t, db, &models.Supervisor{}))
	assert.EqualValues(t, 20, countRows(t, db, &models.Case{}))
	assert.EqualValues(t, 30, countRows(t, db, &models.Review{}))
}

func TestSeededReviewSupervisorsMatchWorkerChain(t *testing.T) {
	db := newTestDB(t, "seed_chain")
	snap := testSnapshot()

	require.NoError(t, SeedSnapshot(db, snap))

	var mismatched int64
	require.NoError(t, db.Model(&models.Review{}).
		Joins("JOIN cases ON cases.id = reviews.case_id").
		Joins("JOIN workers ON workers.id = cases.worker_id").
		Where("workers.supervisor_id != reviews.supervisor_id").
		Count(&mismatched).Error)

	assert.Zero(t, mismatched, "persisted reviews must keep the derived supervisor")
}
