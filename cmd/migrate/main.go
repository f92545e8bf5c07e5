package main

import (
	"log"
	"os"

	"nota-be/internal/model"
	"nota-be/internal/registry"
	"nota-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions (gen_random_uuid lives in pgcrypto)
	color.Cyan("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			color.Yellow("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate Core Models
	color.Cyan("Step 2: Running AutoMigrate for core tables...")

	models := []interface{}{
		&model.Document{},
		&model.BlockStructure{},
		&model.FavoriteBlock{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Per-Type Block Tables
	// Every registered block type gets its own table with the shared row
	// shape. The registry is the single source of the table list, so adding a
	// block type changes the migration automatically.
	blockRegistry := registry.NewBlockTableRegistry()
	bindings := blockRegistry.Bindings()

	color.Cyan("Step 3: Running AutoMigrate for %d block tables...", len(bindings))

	for _, binding := range bindings {
		if err := db.Table(binding.Table).AutoMigrate(&model.BlockRow{}); err != nil {
			log.Fatalf("Error: AutoMigrate failed for table %s: %v", binding.Table, err)
		}
		color.Green("  ✔ %s (%s)", binding.Table, binding.Type)
	}

	color.Green("✅ Success: Database migration completed successfully via GORM.")
}
