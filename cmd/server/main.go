package main

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/leandrobouwier/Brev.ly/api"
	"github.com/leandrobouwier/Brev.ly/config"
	"github.com/leandrobouwier/Brev.ly/repo"
	"github.com/leandrobouwier/Brev.ly/report"
	"github.com/leandrobouwier/Brev.ly/service"
	"github.com/leandrobouwier/Brev.ly/shared"
	"github.com/leandrobouwier/Brev.ly/shared/db"
)

var logger *shared.Logger

func main() {
	cfg := config.Load()

	logger = shared.NewLogger(cfg.LogFile, 3, 1024, "info", "brevly")
	logger.Init()

	pg := db.NewPostgresDB(cfg.DatabaseURL)
	if err := pg.Init(); err != nil {
		logger.Error("CannotConnectDatabase", zap.Error(err))
		os.Exit(1)
	}

	linkRepo := repo.NewLinkRepo(pg)
	linkService := service.NewLinkService(linkRepo)

	var target report.Target = report.LocalDownload{}
	if cfg.ExportTarget == "s3" {
		storage, err := shared.NewObjectStorage(context.Background(), cfg.StorageBucket, cfg.StorageRegion, cfg.StorageEndpoint)
		if err != nil {
			logger.Error("CannotInitObjectStorage", zap.Error(err))
			os.Exit(1)
		}
		target = &report.SignedRemoteURL{Storage: storage, Expiry: cfg.ExportURLTTL}
	}

	httpService := shared.NewHttpService("brevly", cfg.Port, false)
	httpService.Init()

	httpService.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CorsOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api.New(linkService, target, logger).Register(httpService.App)

	logger.Info("Init done!!!", zap.String("port", cfg.Port), zap.String("exportTarget", cfg.ExportTarget))

	if err := httpService.Start(onGracefulShutdown(linkRepo)); err != nil {
		logger.Error("ServerStopped", zap.Error(err))
		os.Exit(1)
	}
}

func onGracefulShutdown(linkRepo *repo.LinkRepo) func() {
	return func() {
		logger.Info("Shutting down...")
		if err := linkRepo.Close(); err != nil {
			logger.Error("CannotCloseDatabase", zap.Error(err))
		}
	}
}
