// Seed creates the initial admin account and the default categories.
// Safe to run repeatedly: existing rows are left alone.
package main

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/mokshlabs/moksh-api/internal/config"
	"github.com/mokshlabs/moksh-api/internal/database"
	"github.com/mokshlabs/moksh-api/internal/models"
	"github.com/mokshlabs/moksh-api/internal/store"
)

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

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

	s := store.New(db)

	// --- Admin ---
	email := getEnv("SEED_ADMIN_EMAIL", "admin@moksh.com")
	name := getEnv("SEED_ADMIN_NAME", "Admin")

	if _, err := s.GetAdminByEmail(email); err == nil {
		log.Printf("Admin already exists: %s", email)
	} else if errors.Is(err, store.ErrNotFound) {
		var password models.Password
		if err := password.Set(getEnv("SEED_ADMIN_PASSWORD", "admin123")); err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		if _, err := s.CreateAdmin(email, password.Hash, name); err != nil {
			log.Fatalf("Failed to create admin: %v", err)
		}
		log.Printf("Admin created: %s", email)
	} else {
		log.Fatalf("Failed to look up admin: %v", err)
	}

	// --- Categories ---
	categories := []struct {
		Name  string
		Order int
	}{
		{"Kurti", 0},
		{"Bedsheet", 1},
		{"Jewellery", 2},
	}

	for _, cat := range categories {
		if _, err := s.ResolveCategoryID(store.Slugify(cat.Name)); err == nil {
			log.Printf("Category already exists: %s", cat.Name)
			continue
		} else if !errors.Is(err, store.ErrNotFound) {
			log.Fatalf("Failed to look up category %s: %v", cat.Name, err)
		}
		if _, err := s.CreateCategory(cat.Name, nil, cat.Order); err != nil {
			log.Fatalf("Failed to create category %s: %v", cat.Name, err)
		}
		log.Printf("Category created: %s", cat.Name)
	}
}
