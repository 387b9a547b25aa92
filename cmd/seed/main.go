package main

import (
	"context"
	"log"

	"htmxtodo/internal/config"
	"htmxtodo/internal/db"
	"htmxtodo/internal/repository"
	"htmxtodo/internal/seed"
)

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ids, err := seed.Roles(context.Background(), repository.NewPermissionRepository(gormDB), seed.DefaultRoles)
	if err != nil {
		log.Fatalf("Failed to seed roles: %v", err)
	}

	log.Printf("Seed completed successfully!")
	for name, id := range ids {
		log.Printf("  - role %s: id %d (%v)", name, id, seed.DefaultRoles[name])
	}
}
