package main

import (
	"github.com/robfig/cron/v3"
	"github.com/sbennell/Asset-System/internal/config"
	"github.com/sbennell/Asset-System/internal/models"
	"github.com/sbennell/Asset-System/internal/services"
	"github.com/sbennell/Asset-System/internal/utils"
	"github.com/sbennell/Asset-System/pkg/logger"
)

// appServices holds shared application state built at startup.
type appServices struct {
	cfg              *config.Config
	cleanupScheduler *cron.Cron
}

// bootstrap initializes the database, seeds defaults and starts the
// background schedulers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}
	if err := models.SeedDefaultData(); err != nil {
		logger.Warn().Err(err).Msg("Failed to seed default data")
	}

	services.InitActivityLogger(models.GetDB())
	cleanupScheduler := services.StartLogCleanupScheduler(models.GetDB())

	authService := services.NewAuthService(models.GetDB(), &cfg.JWT)
	if err := authService.CreateAdminIfNotExists(); err != nil {
		logger.Warn().Err(err).Msg("Failed to create admin user")
	}

	return &appServices{
		cfg:              cfg,
		cleanupScheduler: cleanupScheduler,
	}
}

// shutdown stops the background schedulers.
func (s *appServices) shutdown() {
	if s.cleanupScheduler != nil {
		s.cleanupScheduler.Stop()
	}
	logger.Info().Msg("Schedulers stopped")
}
