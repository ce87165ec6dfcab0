package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// OLTP Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// MinIO (landing bucket)
	MinIOServerURL    string
	MinIORootUser     string
	MinIORootPassword string
	MinIOUseSSL       bool
	LandingBucketName string

	// Service URLs
	MockHubSpotURL string
	PipelineURL    string

	// Seeding
	SeedStartupDelaySeconds int

	// Pipeline defaults
	MeltanoEnvironment string
}

var cfg *Config

// LoadConfig loads configuration from environment variables
func LoadConfig() {
	envPaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	envLoaded := false
	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			log.Printf("✅ Environment loaded from: %s", path)
			envLoaded = true
			break
		}
	}

	if !envLoaded {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg = &Config{
		// OLTP Database
		DBHost:     getEnv("OLTP_HOST", "localhost"),
		DBPort:     getEnv("OLTP_PORT", "5433"),
		DBUser:     getEnv("OLTP_USER", "admin"),
		DBPassword: getEnv("OLTP_PASSWORD", "oltp_secret"),
		DBName:     getEnv("OLTP_DB", "supervision"),
		DBSSLMode:  getEnv("OLTP_SSLMODE", "disable"),

		// MinIO Configuration
		MinIOServerURL:    getEnv("MINIO_SERVER_URL", "http://localhost:9000"),
		MinIORootUser:     getEnv("MINIO_ROOT_USER", "minioadmin"),
		MinIORootPassword: getEnv("MINIO_ROOT_PASSWORD", "minioadmin"),
		MinIOUseSSL:       getEnvAsBool("MINIO_USE_SSL", false),
		LandingBucketName: getEnv("LANDING_BUCKET_NAME", "supervision-landing"),

		// Service URLs - Environment-based configuration
		MockHubSpotURL: getEnv("MOCK_HUBSPOT_URL", "http://localhost:8006"),
		PipelineURL:    getEnv("PIPELINE_URL", "http://localhost:8007"),

		// Seeding
		SeedStartupDelaySeconds: getEnvAsInt("SEED_STARTUP_DELAY_SECONDS", 5),

		// Pipeline defaults
		MeltanoEnvironment: getEnv("MELTANO_ENVIRONMENT", "dev"),
	}

	log.Println("✅ Configuration loaded successfully")
}

// GetConfig returns the current configuration
func GetConfig() *Config {
	if cfg == nil {
		LoadConfig()
	}
	return cfg
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets environment variable as integer with default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
