package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/mokshlabs/moksh-api/internal/config"
	"github.com/mokshlabs/moksh-api/internal/database"
	"github.com/mokshlabs/moksh-api/internal/handlers"
	"github.com/mokshlabs/moksh-api/internal/routes"
	"github.com/mokshlabs/moksh-api/internal/storage"
	"github.com/mokshlabs/moksh-api/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: no .env file found, relying on system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.OpenDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		log.Fatalf("Failed to ensure database schema: %v", err)
	}

	var objStorage storage.ObjectStorage
	if cfg.MinioEndpoint != "" {
		objStorage, err = storage.NewMinioStorage(
			cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL,
		)
		if err != nil {
			log.Fatalf("Failed to connect to MinIO: %v", err)
		}
		log.Printf("Media storage: MinIO bucket %q at %s", cfg.MinioBucket, cfg.MinioEndpoint)
	} else {
		objStorage = storage.NewDiskStorage(cfg.UploadDir, cfg.BaseURL)
		log.Printf("Media storage: local disk at %s", cfg.UploadDir)
	}

	h := handlers.New(cfg, store.New(db), objStorage)
	router := routes.SetupRouter(h)

	log.Printf("Starting moksh-api on port %s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
