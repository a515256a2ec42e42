package reconcile

import (
	"context"

	"topology-manager/core/logger"
	"topology-manager/core/reconcile"
	"topology-manager/feature/topology/models"
	"topology-manager/feature/topology/table"

	"gorm.io/gorm"
)

// Device inserts or refreshes the device row named by the snapshot host and returns it.
// Later steps look the device up again by hostname.
func (r *Reconciler) Device(ctx context.Context, db *gorm.DB, snap *models.Snapshot, idxEvent int64) (*models.Device, reconcile.Counts, error) {
	var counts reconcile.Counts
	log := logger.ForHost(r.logger, snap.Host)
	log.Debug("Updating Device table")

	lastPolled := snap.Timestamp
	if lastPolled == nil {
		ts := r.now().Unix()
		lastPolled = &ts
	}

	row := &models.Device{
		IdxEvent:       eventRef(idxEvent),
		Hostname:       snap.Host,
		SysName:        snap.System.Name,
		SysDescription: snap.System.Description,
		SysObjectid:    snap.System.ObjectID,
		SysUptime:      snap.System.Uptime,
		LastPolled:     lastPolled,
		Enabled:        true,
	}

	existing, err := table.FindDevice(ctx, db, snap.Host)
	if err != nil {
		return nil, counts, err
	}

	if existing != nil {
		if err := table.UpdateDevice(ctx, db, existing.IdxDevice, row); err != nil {
			return nil, counts, err
		}
		row.IdxDevice = existing.IdxDevice
		counts.Updated++
	} else {
		stored, err := table.UpsertDevice(ctx, db, row)
		if err != nil {
			return nil, counts, err
		}
		row = stored
		counts.Inserted++
	}

	log.Debug("Updated Device table")
	return row, counts, nil
}
