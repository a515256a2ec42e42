package table

import (
	"context"
	"fmt"

	"topology-manager/feature/topology/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FindMac looks up a MAC address. mac must already be lowercase.
func FindMac(ctx context.Context, db *gorm.DB, mac string) (*models.Mac, error) {
	row, err := findOne[models.Mac](ctx, db, "mac = ?", mac)
	if err != nil {
		return nil, fmt.Errorf("failed to look up mac %s: %w", mac, err)
	}
	return row, nil
}

// InsertMac creates a MAC row and sets its identity.
func InsertMac(ctx context.Context, db *gorm.DB, row *models.Mac) error {
	if err := db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to insert mac %s: %w", row.Mac, err)
	}
	return nil
}

// UpdateMac refreshes the vendor, poll event and enabled flag of MAC idx.
func UpdateMac(ctx context.Context, db *gorm.DB, idx int64, row *models.Mac) error {
	err := db.WithContext(ctx).
		Model(&models.Mac{}).
		Where("idx_mac = ?", idx).
		Updates(map[string]any{
			"idx_oui":   row.IdxOui,
			"idx_event": row.IdxEvent,
			"enabled":   row.Enabled,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update mac %d: %w", idx, err)
	}
	return nil
}

// UpsertMac inserts row or, if another writer already stored the address, refreshes it in
// a single statement. The stored row is returned.
func UpsertMac(ctx context.Context, db *gorm.DB, row *models.Mac) (*models.Mac, error) {
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "mac"}},
			DoUpdates: clause.AssignmentColumns([]string{"idx_oui", "idx_event", "enabled", "ts_modified"}),
		}).
		Create(row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert mac %s: %w", row.Mac, err)
	}
	return FindMac(ctx, db, row.Mac)
}
