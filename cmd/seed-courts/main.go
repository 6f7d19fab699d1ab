package main

import (
	"lawyer_diary_go/config"
	"lawyer_diary_go/db"
	"lawyer_diary_go/models"
	"lawyer_diary_go/services"
	"log"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(&models.Court{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := services.SeedCourts(db.DB); err != nil {
		log.Fatalf("Failed to seed courts: %v", err)
	}
}
