package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// SQLite by default; Postgres is used when DBHost is set.
	DBPath     string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	WahaBaseURL string
	WahaAPIKey  string
	WahaSession string

	// Country code (digits only) assumed for phones stored without one.
	DefaultCountryCode string

	// Anti-throttling window between campaign sends.
	CampaignMinDelaySeconds int
	CampaignMaxDelaySeconds int
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file")
	}

	return &Config{
		Port:                    getEnv("PORT", "8080"),
		DBPath:                  getEnv("DB_PATH", "./contacts.db"),
		DBHost:                  getEnv("DB_HOST", ""),
		DBUser:                  getEnv("DB_USER", "postgres"),
		DBPassword:              getEnv("DB_PASSWORD", ""),
		DBName:                  getEnv("DB_NAME", "personal_crm"),
		DBPort:                  getEnv("DB_PORT", "5432"),
		DBSSLMode:               getEnv("DB_SSLMODE", "disable"),
		WahaBaseURL:             getEnv("WAHA_BASE_URL", "http://localhost:3000"),
		WahaAPIKey:              getEnv("WAHA_API_KEY", ""),
		WahaSession:             getEnv("WAHA_SESSION", "default"),
		DefaultCountryCode:      getEnv("DEFAULT_COUNTRY_CODE", "58"),
		CampaignMinDelaySeconds: getEnvInt("CAMPAIGN_MIN_DELAY_SECONDS", 5),
		CampaignMaxDelaySeconds: getEnvInt("CAMPAIGN_MAX_DELAY_SECONDS", 15),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("Warning: invalid value for %s, using %d", key, fallback)
	}
	return fallback
}
