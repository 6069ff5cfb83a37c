package main

import (
	"context"
	"log"
	"os"

	"github.com/safar/go-chat-store/internal/config"
	"github.com/safar/go-chat-store/internal/database"
	"github.com/safar/go-chat-store/internal/logger"
	"go.uber.org/zap"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run scripts/run_migrations.go [up|down]")
	}

	direction := database.Direction(os.Args[1])
	if direction != database.Up && direction != database.Down {
		log.Fatal("Direction must be 'up' or 'down'")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Load config: %v", err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("Build logger: %v", err)
	}
	defer lg.Sync()

	db, err := database.Open(&cfg.Database, lg)
	if err != nil {
		log.Fatalf("Connect to database: %v", err)
	}
	defer db.Close()

	applied, err := database.Migrate(context.Background(), db, "migrations", direction)
	if err != nil {
		log.Fatalf("Migrate: %v", err)
	}

	for _, name := range applied {
		lg.Info("migration applied", zap.String("file", name))
	}
	log.Printf("Successfully ran %d migration(s) %s", len(applied), direction)
}
