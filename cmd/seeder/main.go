package main

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/cricket-score/internal/config"
	"github.com/mauv0809/cricket-score/internal/database"
	"github.com/mauv0809/cricket-score/internal/seed"
	"github.com/mauv0809/cricket-score/internal/stats"
)

func main() {
	log.Info("Starting database seeder...")
	cfg := config.Load()
	cfg.ApplyLogLevel()

	db, teardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	startTime := time.Now()
	res, err := seed.Populate(ctx, stats.New(db), startTime)
	if err != nil {
		log.Error("Seeding failed", "error", err)
		return
	}

	log.Info("Database seeding complete!",
		"duration", time.Since(startTime),
		"teams_created", res.Teams,
		"players_created", res.Players,
		"matches_created", res.Matches,
		"balls_created", res.Balls,
		"performances_created", res.Performances,
	)
}
