package reconcile

import (
	"context"
	"sort"

	"topology-manager/core/logger"
	"topology-manager/core/reconcile"
	"topology-manager/feature/topology/models"
	"topology-manager/feature/topology/table"

	"gorm.io/gorm"
)

// Vlans records the VLAN memberships reported by the device's stored interfaces. Each VLAN
// number is written once per device however many interfaces report it.
func (r *Reconciler) Vlans(ctx context.Context, db *gorm.DB, snap *models.Snapshot) (reconcile.Counts, error) {
	var counts reconcile.Counts
	log := logger.ForHost(r.logger, snap.Host)
	log.Debug("Updating Vlan table")

	dev, err := table.FindDevice(ctx, db, snap.Host)
	if err != nil {
		return counts, err
	}
	if dev == nil {
		log.Info("No device found, skipping vlans")
		return counts, nil
	}

	stored, err := table.L1InterfaceIndexes(ctx, db, dev.IdxDevice)
	if err != nil {
		return counts, err
	}

	for _, vlan := range collectVlans(snap, stored) {
		existing, err := table.FindVlan(ctx, db, dev.IdxDevice, vlan)
		if err != nil {
			return counts, err
		}

		if existing != nil {
			if err := table.UpdateVlan(ctx, db, existing.IdxVlan, &models.Vlan{Enabled: true}); err != nil {
				return counts, err
			}
			counts.Updated++
			continue
		}

		row := &models.Vlan{IdxDevice: dev.IdxDevice, Vlan: vlan, State: 0, Enabled: true}
		if err := table.UpsertVlan(ctx, db, row); err != nil {
			return counts, err
		}
		counts.Inserted++
	}

	log.Debug("Updated Vlan table")
	return counts, nil
}

// collectVlans returns the distinct VLAN numbers of the interfaces present in stored, ascending.
func collectVlans(snap *models.Snapshot, stored map[int64]struct{}) []int64 {
	seen := make(map[int64]struct{})
	for ifindex, iface := range snap.Interfaces {
		if _, ok := stored[ifindex]; !ok {
			continue
		}
		for _, v := range iface.Vlans {
			seen[v] = struct{}{}
		}
	}

	out := make([]int64, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
