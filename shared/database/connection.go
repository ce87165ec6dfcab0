package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"supervisionlab-backend/shared/config"
	"supervisionlab-backend/shared/database/models"
)

var DB *gorm.DB

const (
	connectMaxRetries = 10
	connectRetryDelay = 2 * time.Second
)

// getLogLevel returns appropriate log level based on environment
func getLogLevel(cfg *config.Config) logger.LogLevel {
	if cfg.DBHost == "localhost" || cfg.DBHost == "127.0.0.1" {
		return logger.Warn
	}
	return logger.Error
}

// InitDatabase initializes the database connection and runs migrations.
// Connection establishment is retried a fixed number of times with a fixed
// delay; once connected, individual statements are never retried.
func InitDatabase() error {
	cfg := config.GetConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(getLogLevel(cfg)),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	var err error
	for attempt := 1; attempt <= connectMaxRetries; attempt++ {
		DB, err = gorm.Open(postgres.Open(dsn), gormConfig)
		if err == nil {
			if sqlDB, dbErr := DB.DB(); dbErr != nil {
				err = dbErr
			} else {
				err = sqlDB.Ping()
			}
		}
		if err == nil {
			break
		}
		if attempt < connectMaxRetries {
			log.Printf("Connection attempt %d failed, retrying in %s...", attempt, connectRetryDelay)
			time.Sleep(connectRetryDelay)
		}
	}
	if err != nil {
		return fmt.Errorf("failed to connect to database after %d attempts: %w", connectMaxRetries, err)
	}

	// Configure connection pool
	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("✅ Database connection established successfully")

	// Run migrations
	if err := runMigrations(DB); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

// runMigrations creates the five supervision tables when missing.
func runMigrations(db *gorm.DB) error {
	log.Println("🔄 Checking database schema...")

	modelsToMigrate := []interface{}{
		&models.Region{},
		&models.Supervisor{},
		&models.Worker{},
		&models.Case{},
		&models.Review{},
	}

	migrator := db.Migrator()
	allTablesExist := true
	for _, model := range modelsToMigrate {
		if !migrator.HasTable(model) {
			allTablesExist = false
			break
		}
	}

	if allTablesExist {
		log.Println("✅ Database schema is up to date - skipping migration")
		return nil
	}

	for _, model := range modelsToMigrate {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	log.Println("✅ Database migrations completed")
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// CloseDatabase closes the database connection
func CloseDatabase() error {
	if DB != nil {
		sqlDB, err := DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
