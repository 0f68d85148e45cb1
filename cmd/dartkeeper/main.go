package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/fredrikw/dartkeeper/internal/config"
	"github.com/fredrikw/dartkeeper/internal/logging"
	"github.com/fredrikw/dartkeeper/pkg/repositories/match"
	"github.com/fredrikw/dartkeeper/pkg/services/statistics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.NewLogger(logging.ParseLevel(cfg.LogLevel))

	// Initialize repository
	var repo match.Repository

	storageType := os.Getenv("STORAGE_TYPE")
	if storageType == "memory" {
		repo = match.NewMemoryRepository()
		logger.Info("Using in-memory repository (data will be lost on exit)")
	} else {
		logger.Info("Opening match store at %s", cfg.DBPath())
		sqliteRepo, err := match.NewSQLiteRepository(cfg.DBPath())
		if err != nil {
			logger.Error("Failed to open SQLite repository: %v", err)
			logger.Warn("Falling back to in-memory repository")
			repo = match.NewMemoryRepository()
		} else {
			repo = sqliteRepo
		}
	}
	defer repo.Close()

	stats := statistics.NewService(repo)
	ctx := context.Background()

	players, err := repo.GetPlayers(ctx)
	if err != nil {
		logger.LogError(err)
		os.Exit(1)
	}
	if len(players) == 0 {
		fmt.Println("No players recorded yet.")
		return
	}

	for _, name := range players {
		played, err := repo.GetNumberOfGamesPlayed(ctx, name)
		if err != nil {
			logger.LogError(err)
			continue
		}
		won, err := repo.GetNumberOfGamesWon(ctx, name)
		if err != nil {
			logger.LogError(err)
			continue
		}
		fmt.Printf("%s: %d played, %d won\n", name, played, won)

		if best, err := stats.GetHighestCheckoutGame(ctx, name); err != nil {
			logger.LogError(err)
		} else if best != nil {
			fmt.Printf("  highest checkout: %d (match %d)\n",
				best.WinnerSnapshot().Checkout, best.ID)
		}

		for _, family := range []int{3, 5} {
			best, err := stats.GetFewestTurnsGame(ctx, name, family)
			if err != nil {
				logger.LogError(err)
				continue
			}
			if best != nil {
				fmt.Printf("  fewest turns %d01: %d (match %d)\n",
					family, best.WinnerSnapshot().Turns, best.ID)
			}
		}

		history, err := repo.GetPlayerMatchData(ctx, name, 0, cfg.HistoryPageSize)
		if err != nil {
			logger.LogError(err)
			continue
		}
		for _, record := range history {
			fmt.Printf("  %s  %-6s  winner %s\n",
				record.Date.Format("2006-01-02"), record.Type, record.Winner)
		}
	}
}
