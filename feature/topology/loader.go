package topology

import (
	"topology-manager/core/reconcile"
	"topology-manager/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface for topology ingestion.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new topology feature.
func NewFeature(db *gorm.DB, client storage.Client, storageCfg storage.Config, cfg reconcile.Config, logger *zap.Logger) *Feature {
	service := NewService(db, client, storageCfg, cfg, logger)
	return &Feature{
		service: service,
		handler: NewHandler(service),
	}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "topology"
}

// IsEnabled returns true if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the feature's service for CLI commands.
func (f *Feature) Service() *Service {
	return f.service
}
