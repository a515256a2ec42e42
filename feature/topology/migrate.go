package topology

import (
	"context"
	"fmt"

	"topology-manager/feature/topology/models"
	"topology-manager/feature/topology/table"

	"gorm.io/gorm"
)

// Migrate creates or updates the topology tables and seeds the sentinel vendor prefix.
// It is safe to run repeatedly.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate topology tables: %w", err)
	}
	return table.EnsureSentinelOui(ctx, db)
}
