package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment after
// loading an optional .env file from the working directory. Credentials are
// env-only on purpose; they never appear in the JSON file or on the command
// line.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	set(&cfg.Adapter, "GAADI_ADAPTER")
	set(&cfg.LocalDBPath, "GAADI_DB_PATH")
	set(&cfg.MongoURI, "GAADI_MONGO_URI")
	set(&cfg.MongoDatabase, "GAADI_MONGO_DB")
	set(&cfg.AssistEndpoint, "GAADI_ASSIST_ENDPOINT")
	set(&cfg.S3Bucket, "GAADI_S3_BUCKET")
	set(&cfg.S3Region, "GAADI_S3_REGION")
	set(&cfg.S3Endpoint, "GAADI_S3_ENDPOINT")
	set(&cfg.S3AccessKey, "GAADI_S3_ACCESS_KEY")
	set(&cfg.S3SecretKey, "GAADI_S3_SECRET_KEY")
}
