package table

import (
	"context"
	"fmt"

	"topology-manager/feature/topology/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// l1InterfaceColumns are refreshed on every poll. enabled is not among them: an
// operator's choice to disable an interface survives re-polling.
var l1InterfaceColumns = []string{
	"duplex", "ethernet", "nativevlan", "trunk", "ifspeed", "ifalias", "ifdescr",
	"ifadminstatus", "ifoperstatus",
	"cdpcachedeviceid", "cdpcachedeviceport", "cdpcacheplatform",
	"lldpremportdesc", "lldpremsyscapenabled", "lldpremsysdesc", "lldpremsysname",
	"ts_idle", "ts_modified",
}

// FindL1Interface looks up an interface by (device, ifindex).
func FindL1Interface(ctx context.Context, db *gorm.DB, idxDevice, ifindex int64) (*models.L1Interface, error) {
	row, err := findOne[models.L1Interface](ctx, db, "idx_device = ? AND ifindex = ?", idxDevice, ifindex)
	if err != nil {
		return nil, fmt.Errorf("failed to look up interface %d/%d: %w", idxDevice, ifindex, err)
	}
	return row, nil
}

// L1InterfaceIndexes returns the set of ifindexes stored for a device.
func L1InterfaceIndexes(ctx context.Context, db *gorm.DB, idxDevice int64) (map[int64]struct{}, error) {
	var indexes []int64
	err := db.WithContext(ctx).
		Model(&models.L1Interface{}).
		Where("idx_device = ?", idxDevice).
		Pluck("ifindex", &indexes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list interfaces of device %d: %w", idxDevice, err)
	}

	set := make(map[int64]struct{}, len(indexes))
	for _, i := range indexes {
		set[i] = struct{}{}
	}
	return set, nil
}

// InsertL1Interface creates an interface row and sets its identity.
func InsertL1Interface(ctx context.Context, db *gorm.DB, row *models.L1Interface) error {
	if err := db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to insert interface %d/%d: %w", row.IdxDevice, row.Ifindex, err)
	}
	return nil
}

// UpdateL1Interface overwrites interface idx with the attributes in row, including its
// idle marker and enabled flag.
func UpdateL1Interface(ctx context.Context, db *gorm.DB, idx int64, row *models.L1Interface) error {
	err := db.WithContext(ctx).
		Model(&models.L1Interface{}).
		Where("idx_l1interface = ?", idx).
		Updates(map[string]any{
			"idx_device":           row.IdxDevice,
			"ifindex":              row.Ifindex,
			"duplex":               row.Duplex,
			"ethernet":             row.Ethernet,
			"nativevlan":           row.Nativevlan,
			"trunk":                row.Trunk,
			"ifspeed":              row.Ifspeed,
			"ifalias":              row.Ifalias,
			"ifdescr":              row.Ifdescr,
			"ifadminstatus":        row.Ifadminstatus,
			"ifoperstatus":         row.Ifoperstatus,
			"cdpcachedeviceid":     row.Cdpcachedeviceid,
			"cdpcachedeviceport":   row.Cdpcachedeviceport,
			"cdpcacheplatform":     row.Cdpcacheplatform,
			"lldpremportdesc":      row.Lldpremportdesc,
			"lldpremsyscapenabled": row.Lldpremsyscapenabled,
			"lldpremsysdesc":       row.Lldpremsysdesc,
			"lldpremsysname":       row.Lldpremsysname,
			"ts_idle":              row.TsIdle,
			"enabled":              row.Enabled,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update interface %d: %w", idx, err)
	}
	return nil
}

// UpsertL1Interface inserts row or refreshes the existing (device, ifindex) row in a single
// statement, leaving its enabled flag untouched.
func UpsertL1Interface(ctx context.Context, db *gorm.DB, row *models.L1Interface) error {
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "idx_device"}, {Name: "ifindex"}},
			DoUpdates: clause.AssignmentColumns(l1InterfaceColumns),
		}).
		Create(row).Error
	if err != nil {
		return fmt.Errorf("failed to upsert interface %d/%d: %w", row.IdxDevice, row.Ifindex, err)
	}
	return nil
}
