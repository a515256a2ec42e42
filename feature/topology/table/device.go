package table

import (
	"context"
	"fmt"

	"topology-manager/feature/topology/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var deviceColumns = []string{
	"idx_event", "sys_name", "sys_description", "sys_objectid",
	"sys_uptime", "last_polled", "enabled", "ts_modified",
}

// FindDevice looks up a device by hostname. A missing device returns (nil, nil).
func FindDevice(ctx context.Context, db *gorm.DB, hostname string) (*models.Device, error) {
	row, err := findOne[models.Device](ctx, db, "hostname = ?", hostname)
	if err != nil {
		return nil, fmt.Errorf("failed to look up device %s: %w", hostname, err)
	}
	return row, nil
}

// InsertDevice creates a device row and sets its identity.
func InsertDevice(ctx context.Context, db *gorm.DB, row *models.Device) error {
	if err := db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to insert device %s: %w", row.Hostname, err)
	}
	return nil
}

// UpdateDevice overwrites the mutable columns of device idx with the values in row.
func UpdateDevice(ctx context.Context, db *gorm.DB, idx int64, row *models.Device) error {
	err := db.WithContext(ctx).
		Model(&models.Device{}).
		Where("idx_device = ?", idx).
		Updates(map[string]any{
			"idx_event":       row.IdxEvent,
			"sys_name":        row.SysName,
			"sys_description": row.SysDescription,
			"sys_objectid":    row.SysObjectid,
			"sys_uptime":      row.SysUptime,
			"last_polled":     row.LastPolled,
			"enabled":         row.Enabled,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update device %d: %w", idx, err)
	}
	return nil
}

// UpsertDevice inserts row or, if the hostname already exists, updates it in a single
// statement. The stored row is returned.
func UpsertDevice(ctx context.Context, db *gorm.DB, row *models.Device) (*models.Device, error) {
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "hostname"}},
			DoUpdates: clause.AssignmentColumns(deviceColumns),
		}).
		Create(row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert device %s: %w", row.Hostname, err)
	}
	return FindDevice(ctx, db, row.Hostname)
}
