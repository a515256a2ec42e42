package integrity

import (
	"context"
	"fmt"

	"topology-manager/core/storage"
	"topology-manager/feature/integrity/checks"
	"topology-manager/feature/topology/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client  storage.Client
	storage storage.Config
	logger  *zap.Logger
	db      *gorm.DB
}

// NewService creates a new integrity service.
func NewService(client storage.Client, storageCfg storage.Config, logger *zap.Logger, db *gorm.DB) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:  client,
		storage: storageCfg,
		logger:  logger,
		db:      db,
	}
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.storage.Bucket, checks.RequiredFolders(s.storage))
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.storage.Bucket, s.logger, missing)
}

// CheckSchema compares the topology tables with their models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, models.All()...)
}

// CheckStats returns the row count of every topology table.
func (s *Service) CheckStats(ctx context.Context) (map[string]int64, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	stats := make(map[string]int64)
	for _, model := range models.All() {
		name := model.(interface{ TableName() string }).TableName()
		var n int64
		if err := s.db.WithContext(ctx).Model(model).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s rows: %w", name, err)
		}
		stats[name] = n
	}
	return stats, nil
}
