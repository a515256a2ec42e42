package cmd

import (
	"fmt"

	"topology-manager/core/config"
	"topology-manager/core/database"
	"topology-manager/core/logger"
	"topology-manager/core/storage"
	"topology-manager/feature/topology"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime bundles what every command needs after startup.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	store  storage.Client
}

// bootstrap loads configuration and the logger. The database and storage are opened on demand.
func bootstrap() (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &runtime{cfg: cfg, logger: logg}, nil
}

func (r *runtime) openDB() error {
	db, err := database.Connect(r.cfg.Database)
	if err != nil {
		return fmt.Errorf("database connection required: %w", err)
	}
	r.db = db
	r.logger.Debug("Connected to topology database",
		zap.String("driver", r.cfg.Database.Driver),
		zap.String("name", r.cfg.Database.Name))
	return nil
}

func (r *runtime) openStorage() error {
	client, err := storage.NewClient(r.cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}
	r.store = client
	return nil
}

func (r *runtime) topologyService() *topology.Service {
	return topology.NewService(r.db, r.store, r.cfg.Storage, r.cfg.Reconcile, r.logger)
}
