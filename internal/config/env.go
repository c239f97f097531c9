package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Env carries all runtime configuration. It is loaded once in main and
// passed explicitly to constructors; nothing reads the environment after
// startup.
type Env struct {
	AppAddr string
	GinMode string

	DBDSN string

	JWTSecret string
	TokenTTL  time.Duration

	ResetCodeTTL    time.Duration
	ResetVerifyTTL  time.Duration
	ResetPurgeEvery string

	UploadDir     string
	MigrationsDir string
	RunMigrations bool
}

func LoadEnv() Env {
	// .env is optional; real deployments use the process environment.
	_ = godotenv.Load()

	return Env{
		AppAddr: getString("APP_ADDR", ":8080"),
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		DBDSN: getString("DB_DSN",
			"root:@tcp(127.0.0.1:3306)/newsportal?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"),

		JWTSecret: getString("JWT_SECRET", "change-me-in-production"),
		TokenTTL:  getDuration("TOKEN_TTL", 2*time.Hour),

		ResetCodeTTL:    getDuration("RESET_CODE_TTL", 15*time.Minute),
		ResetVerifyTTL:  getDuration("RESET_VERIFY_TTL", 10*time.Minute),
		ResetPurgeEvery: getString("RESET_PURGE_EVERY", "@every 10m"),

		UploadDir:     getString("UPLOAD_DIR", "./uploads"),
		MigrationsDir: getString("MIGRATIONS_DIR", "./migrations"),
		RunMigrations: getBool("RUN_MIGRATIONS", false),
	}
}

func getString(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
