package table

import (
	"context"
	"fmt"

	"topology-manager/feature/topology/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FindOui looks up a vendor prefix. prefix must already be lowercase.
func FindOui(ctx context.Context, db *gorm.DB, prefix string) (*models.Oui, error) {
	row, err := findOne[models.Oui](ctx, db, "oui = ?", prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to look up oui %s: %w", prefix, err)
	}
	return row, nil
}

// InsertOui creates a vendor prefix row and sets its identity.
func InsertOui(ctx context.Context, db *gorm.DB, row *models.Oui) error {
	if err := db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to insert oui %s: %w", row.Oui, err)
	}
	return nil
}

// UpdateOui overwrites the organization and enabled flag of vendor prefix idx.
func UpdateOui(ctx context.Context, db *gorm.DB, idx int64, row *models.Oui) error {
	err := db.WithContext(ctx).
		Model(&models.Oui{}).
		Where("idx_oui = ?", idx).
		Updates(map[string]any{
			"organization": row.Organization,
			"enabled":      row.Enabled,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update oui %d: %w", idx, err)
	}
	return nil
}

// UpsertOuis inserts or refreshes vendor prefixes, batchSize rows per statement.
func UpsertOuis(ctx context.Context, db *gorm.DB, rows []models.Oui, batchSize int) error {
	if len(rows) == 0 {
		return nil
	}
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "oui"}},
			DoUpdates: clause.AssignmentColumns([]string{"organization", "enabled", "ts_modified"}),
		}).
		CreateInBatches(&rows, batchSize).Error
	if err != nil {
		return fmt.Errorf("failed to upsert %d ouis: %w", len(rows), err)
	}
	return nil
}

// EnsureSentinelOui makes sure the "unknown" vendor prefix row exists with its fixed identity.
func EnsureSentinelOui(ctx context.Context, db *gorm.DB) error {
	existing, err := findOne[models.Oui](ctx, db, "idx_oui = ?", models.SentinelOuiID)
	if err != nil {
		return fmt.Errorf("failed to look up sentinel oui: %w", err)
	}
	if existing != nil {
		return nil
	}

	org := models.SentinelOrganization
	sentinel := &models.Oui{
		IdxOui:       models.SentinelOuiID,
		Oui:          "",
		Organization: &org,
		Enabled:      true,
	}
	err = db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(sentinel).Error
	if err != nil {
		return fmt.Errorf("failed to insert sentinel oui: %w", err)
	}
	return nil
}
