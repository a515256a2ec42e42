package reconcile

import (
	"context"
	"time"

	"topology-manager/core/logger"
	"topology-manager/core/reconcile"
	"topology-manager/feature/topology/models"
	"topology-manager/feature/topology/table"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// L1Interfaces inserts or refreshes every interface of the snapshot and advances each
// interface's idle marker. A snapshot whose device is not stored is skipped.
func (r *Reconciler) L1Interfaces(ctx context.Context, db *gorm.DB, snap *models.Snapshot) (reconcile.Counts, error) {
	var counts reconcile.Counts
	log := logger.ForHost(r.logger, snap.Host)
	log.Debug("Updating L1Interface table")

	dev, err := table.FindDevice(ctx, db, snap.Host)
	if err != nil {
		return counts, err
	}
	if dev == nil {
		log.Info("No device found, skipping interfaces")
		return counts, nil
	}

	for _, ifindex := range snap.Ifindexes() {
		iface := snap.Interfaces[ifindex]
		row := interfaceRow(dev.IdxDevice, ifindex, iface)

		existing, err := table.FindL1Interface(ctx, db, dev.IdxDevice, ifindex)
		if err != nil {
			return counts, err
		}

		if existing != nil {
			row.TsIdle = nextIdle(iface.AdminStatus, iface.OperStatus, existing.TsIdle, r.now())
			row.Enabled = existing.Enabled
			if err := table.UpdateL1Interface(ctx, db, existing.IdxL1Interface, row); err != nil {
				return counts, err
			}
			counts.Updated++
			continue
		}

		// First observation is the baseline: idle tracking starts on the next poll.
		row.TsIdle = 0
		row.Enabled = true
		if err := table.UpsertL1Interface(ctx, db, row); err != nil {
			return counts, err
		}
		counts.Inserted++
	}

	log.Debug("Updated L1Interface table", zap.Int("inserted", counts.Inserted), zap.Int("updated", counts.Updated))
	return counts, nil
}

// nextIdle returns the idle marker of an already stored interface.
//
//	admin up, oper up  -> 0
//	admin down         -> 0
//	otherwise (no link) -> current marker if set, else now
func nextIdle(admin, oper *int64, current int64, now time.Time) int64 {
	switch {
	case is(admin, models.StatusUp) && is(oper, models.StatusUp):
		return 0
	case is(admin, models.StatusDown):
		return 0
	case current != 0:
		return current
	default:
		return now.Unix()
	}
}

func is(status *int64, want int64) bool {
	return status != nil && *status == want
}

func interfaceRow(idxDevice, ifindex int64, iface models.Interface) *models.L1Interface {
	return &models.L1Interface{
		IdxDevice:            idxDevice,
		Ifindex:              ifindex,
		Duplex:               iface.Duplex,
		Ethernet:             iface.Ethernet,
		Nativevlan:           iface.NativeVlan,
		Trunk:                iface.Trunk,
		Ifspeed:              iface.Speed,
		Ifalias:              iface.Alias,
		Ifdescr:              iface.Descr,
		Ifadminstatus:        iface.AdminStatus,
		Ifoperstatus:         iface.OperStatus,
		Cdpcachedeviceid:     iface.CdpDeviceID,
		Cdpcachedeviceport:   iface.CdpDevicePort,
		Cdpcacheplatform:     iface.CdpPlatform,
		Lldpremportdesc:      iface.LldpPortDesc,
		Lldpremsyscapenabled: iface.LldpSysCapEnabled,
		Lldpremsysdesc:       iface.LldpSysDesc,
		Lldpremsysname:       iface.LldpSysName,
	}
}
