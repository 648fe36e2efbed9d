package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/leandrobouwier/Brev.ly/config"
	"github.com/leandrobouwier/Brev.ly/model"
	"github.com/leandrobouwier/Brev.ly/shared"
	"github.com/leandrobouwier/Brev.ly/shared/db"
)

// One-shot schema initialization: creates the links table if absent
// and exits.
func main() {
	cfg := config.Load()

	logger := shared.NewLogger(cfg.LogFile, 3, 1024, "info", "brevly-setup")
	logger.Init()

	pg := db.NewPostgresDB(cfg.DatabaseURL)
	if err := pg.Init(); err != nil {
		logger.Error("CannotConnectDatabase", zap.Error(err))
		os.Exit(1)
	}

	if err := pg.Migrate(&model.Link{}); err != nil {
		logger.Error("CannotMigrate", zap.Error(err))
		pg.Close()
		os.Exit(1)
	}

	logger.Info("Links table ready")
	pg.Close()
}
