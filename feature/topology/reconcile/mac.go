package reconcile

import (
	"context"
	"sort"
	"strings"

	"topology-manager/core/logger"
	"topology-manager/core/reconcile"
	"topology-manager/feature/topology/models"
	"topology-manager/feature/topology/table"

	"gorm.io/gorm"
)

// Macs records the MAC addresses learned on the device's stored interfaces, each tagged
// with its vendor and the poll event. Addresses are lowercased and deduplicated before
// any lookup.
func (r *Reconciler) Macs(ctx context.Context, db *gorm.DB, snap *models.Snapshot, idxEvent int64) (reconcile.Counts, error) {
	var counts reconcile.Counts
	log := logger.ForHost(r.logger, snap.Host)
	log.Debug("Updating Mac table")

	dev, err := table.FindDevice(ctx, db, snap.Host)
	if err != nil {
		return counts, err
	}
	if dev == nil {
		log.Info("No device found, skipping macs")
		return counts, nil
	}

	stored, err := table.L1InterfaceIndexes(ctx, db, dev.IdxDevice)
	if err != nil {
		return counts, err
	}

	vendors := newVendorResolver(db)
	for _, mac := range collectMacs(snap, stored) {
		idxOui, err := vendors.resolve(ctx, mac)
		if err != nil {
			return counts, err
		}

		row := &models.Mac{IdxOui: idxOui, IdxEvent: eventRef(idxEvent), Mac: mac, Enabled: true}

		existing, err := table.FindMac(ctx, db, mac)
		if err != nil {
			return counts, err
		}

		if existing != nil {
			if err := table.UpdateMac(ctx, db, existing.IdxMac, row); err != nil {
				return counts, err
			}
			counts.Updated++
			continue
		}

		if _, err := table.UpsertMac(ctx, db, row); err != nil {
			return counts, err
		}
		counts.Inserted++
	}

	log.Debug("Updated Mac table")
	return counts, nil
}

// NormalizeMac returns the canonical stored form of a MAC address.
func NormalizeMac(mac string) string {
	return strings.ToLower(strings.TrimSpace(mac))
}

// collectMacs returns the distinct normalized MACs of the interfaces present in stored, ascending.
func collectMacs(snap *models.Snapshot, stored map[int64]struct{}) []string {
	seen := make(map[string]struct{})
	for ifindex, iface := range snap.Interfaces {
		if _, ok := stored[ifindex]; !ok {
			continue
		}
		for _, m := range iface.Macs {
			if mac := NormalizeMac(m); mac != "" {
				seen[mac] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(seen))
	for mac := range seen {
		out = append(out, mac)
	}
	sort.Strings(out)
	return out
}
