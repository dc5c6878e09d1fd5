package main

import (
	"github.com/joho/godotenv"
	"github.com/pracaboard/job-offer-api/internal/config"
	"github.com/pracaboard/job-offer-api/internal/database"
	"github.com/pracaboard/job-offer-api/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("database connection failed", "err", err)
	}

	if err := database.Seed(db); err != nil {
		logger.Fatal("seeding failed", "err", err)
	}
	logger.Info("seed data in place")
}
