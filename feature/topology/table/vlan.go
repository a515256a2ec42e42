package table

import (
	"context"
	"fmt"

	"topology-manager/feature/topology/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FindVlan looks up a VLAN membership by (device, vlan number).
func FindVlan(ctx context.Context, db *gorm.DB, idxDevice, vlan int64) (*models.Vlan, error) {
	row, err := findOne[models.Vlan](ctx, db, "idx_device = ? AND vlan = ?", idxDevice, vlan)
	if err != nil {
		return nil, fmt.Errorf("failed to look up vlan %d/%d: %w", idxDevice, vlan, err)
	}
	return row, nil
}

// InsertVlan creates a VLAN row and sets its identity.
func InsertVlan(ctx context.Context, db *gorm.DB, row *models.Vlan) error {
	if err := db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to insert vlan %d/%d: %w", row.IdxDevice, row.Vlan, err)
	}
	return nil
}

// UpdateVlan refreshes the enabled flag of VLAN idx. The stored name is replaced only
// when row carries one; state is left as is.
func UpdateVlan(ctx context.Context, db *gorm.DB, idx int64, row *models.Vlan) error {
	values := map[string]any{"enabled": row.Enabled}
	if row.Name != nil {
		values["name"] = row.Name
	}

	err := db.WithContext(ctx).
		Model(&models.Vlan{}).
		Where("idx_vlan = ?", idx).
		Updates(values).Error
	if err != nil {
		return fmt.Errorf("failed to update vlan %d: %w", idx, err)
	}
	return nil
}

// UpsertVlan inserts row or refreshes the existing (device, vlan) row in a single statement,
// following the same column rules as UpdateVlan.
func UpsertVlan(ctx context.Context, db *gorm.DB, row *models.Vlan) error {
	columns := []string{"enabled", "ts_modified"}
	if row.Name != nil {
		columns = append(columns, "name")
	}

	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "idx_device"}, {Name: "vlan"}},
			DoUpdates: clause.AssignmentColumns(columns),
		}).
		Create(row).Error
	if err != nil {
		return fmt.Errorf("failed to upsert vlan %d/%d: %w", row.IdxDevice, row.Vlan, err)
	}
	return nil
}
