package table

import (
	"context"
	"fmt"

	"topology-manager/feature/topology/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FindMacIp looks up a binding by (device, mac, ip).
func FindMacIp(ctx context.Context, db *gorm.DB, idxDevice, idxMac int64, ip string) (*models.MacIp, error) {
	row, err := findOne[models.MacIp](ctx, db, "idx_device = ? AND idx_mac = ? AND ip_ = ?", idxDevice, idxMac, ip)
	if err != nil {
		return nil, fmt.Errorf("failed to look up macip %d/%d/%s: %w", idxDevice, idxMac, ip, err)
	}
	return row, nil
}

// FindIP returns every binding of an IP address across devices.
func FindIP(ctx context.Context, db *gorm.DB, ip string) ([]models.MacIp, error) {
	var rows []models.MacIp
	if err := db.WithContext(ctx).Where("ip_ = ?", ip).Order("idx_macip").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find ip %s: %w", ip, err)
	}
	return rows, nil
}

// FindHostname returns every binding whose annotated hostname contains hostname.
func FindHostname(ctx context.Context, db *gorm.DB, hostname string) ([]models.MacIp, error) {
	var rows []models.MacIp
	err := db.WithContext(ctx).
		Where("hostname LIKE ?", "%"+hostname+"%").
		Order("idx_macip").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find hostname %s: %w", hostname, err)
	}
	return rows, nil
}

// InsertMacIp creates a single binding.
func InsertMacIp(ctx context.Context, db *gorm.DB, row *models.MacIp) error {
	return InsertMacIps(ctx, db, []*models.MacIp{row}, 1)
}

// InsertMacIps creates bindings in bulk, batchSize rows per statement. A binding that a
// concurrent writer already stored is refreshed instead of failing the batch.
func InsertMacIps(ctx context.Context, db *gorm.DB, rows []*models.MacIp, batchSize int) error {
	if len(rows) == 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = len(rows)
	}
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "idx_device"}, {Name: "idx_mac"}, {Name: "ip_"}},
			DoUpdates: clause.AssignmentColumns([]string{"idx_oui", "version", "enabled", "ts_modified"}),
		}).
		CreateInBatches(rows, batchSize).Error
	if err != nil {
		return fmt.Errorf("failed to insert %d macip rows: %w", len(rows), err)
	}
	return nil
}

// UpdateMacIp overwrites binding idx with row. The hostname annotation is not touched.
func UpdateMacIp(ctx context.Context, db *gorm.DB, idx int64, row *models.MacIp) error {
	err := db.WithContext(ctx).
		Model(&models.MacIp{}).
		Where("idx_macip = ?", idx).
		Updates(map[string]any{
			"idx_device": row.IdxDevice,
			"idx_mac":    row.IdxMac,
			"ip_":        row.IP,
			"idx_oui":    row.IdxOui,
			"version":    row.Version,
			"enabled":    row.Enabled,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update macip %d: %w", idx, err)
	}
	return nil
}
