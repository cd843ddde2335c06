package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"luxestate/internal/config"
	"luxestate/internal/database"
	"luxestate/internal/modules/subscription"
)

// Sweeps active subscriptions whose billing date has passed without
// auto-renew and marks them expired. Meant to run from cron.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	repo := subscription.NewRepository(db)
	n, err := repo.ExpireOverdue(context.Background(), time.Now())
	if err != nil {
		log.Fatalf("expire sweep failed: %v", err)
	}

	log.Printf("expire sweep completed: subscriptions expired=%d", n)
}
