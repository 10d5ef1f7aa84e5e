package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds everything the API reads from the environment.
// Required values fail fast in Load so a misconfigured deployment
// dies at startup instead of on the first request.
type Config struct {
	Env         string
	Port        string
	DatabaseURL string
	JWTSecret   string

	// Public base URL used to build links to locally stored uploads.
	BaseURL   string
	UploadDir string

	CORSOrigins []string

	// Optional S3-compatible storage. When Endpoint is empty the API
	// falls back to local disk under UploadDir.
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:       getEnv("APP_ENV", "development"),
		Port:      getEnv("PORT", "4000"),
		BaseURL:   getEnv("BASE_URL", "http://localhost:4000"),
		UploadDir: getEnv("UPLOAD_DIR", "./uploads"),

		MinioEndpoint:  os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:    getEnv("MINIO_BUCKET", "moksh-media"),
		MinioUseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
	}

	var err error
	if cfg.DatabaseURL, err = requireEnv("DATABASE_URL"); err != nil {
		return nil, err
	}
	if cfg.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}

	for _, origin := range strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func requireEnv(name string) (string, error) {
	v := os.Getenv(name)
	if v == "" {
		return "", fmt.Errorf("missing required environment variable: %s", name)
	}
	return v, nil
}
