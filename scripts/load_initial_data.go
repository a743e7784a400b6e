package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"technician-board/internal/config"
	"technician-board/internal/database"
	"technician-board/internal/database/seed"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	file := flag.String("file", "", "roster YAML file (defaults to the built-in roster)")
	replace := flag.Bool("replace", false, "discard existing assignments before loading")
	flag.Parse()

	_ = godotenv.Load()

	log.Println("🚀 Loading roster...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	roster, err := loadRoster(*file)
	if err != nil {
		log.Fatalf("Failed to read roster: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseDriver, cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	var n int
	if *replace {
		n, err = seed.Replace(ctx, db, roster, time.Now())
	} else {
		n, err = seed.IfEmpty(ctx, db, roster, time.Now())
	}
	if err != nil {
		log.Fatalf("Failed to load roster: %v", err)
	}

	if n == 0 {
		log.Println("ℹ️  Assignments already present, nothing loaded (use -replace to overwrite)")
		return
	}
	log.Printf("✅ Loaded %d assignments", n)
}

func loadRoster(path string) (*seed.File, error) {
	if path == "" {
		return seed.Default()
	}
	return seed.ParseFile(path)
}

func connectWithRetry(driver, dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(driver, dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
