package reconcile

import (
	"context"
	"sort"

	"topology-manager/core/logger"
	"topology-manager/core/reconcile"
	"topology-manager/feature/topology/models"
	"topology-manager/feature/topology/table"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// macIPUpdate is a binding that already exists, keyed by its identity.
type macIPUpdate struct {
	IdxMacIp int64
	Row      *models.MacIp
}

// macIPPlan separates the bindings of one snapshot into updates and adds.
type macIPPlan struct {
	Adds    []*models.MacIp
	Updates []macIPUpdate

	// queued holds the (mac, ip) keys already routed, so repeated pairs are written once.
	queued map[macIPKey]struct{}
}

type macIPKey struct {
	idxMac int64
	ip     string
}

// MacIPs records the IPv4 and IPv6 address tables of the snapshot. All bindings are
// planned first; updates are applied one by one, then all adds go out as one bulk insert.
// A MAC seen only in an address table gets its own mac row.
func (r *Reconciler) MacIPs(ctx context.Context, db *gorm.DB, snap *models.Snapshot, idxEvent int64) (reconcile.Counts, error) {
	var counts reconcile.Counts
	log := logger.ForHost(r.logger, snap.Host)
	log.Debug("Updating MacIp table")

	dev, err := table.FindDevice(ctx, db, snap.Host)
	if err != nil {
		return counts, err
	}
	if dev == nil {
		log.Info("No device found, skipping macip")
		return counts, nil
	}

	p := &planner{
		db:       db,
		device:   dev.IdxDevice,
		idxEvent: idxEvent,
		vendors:  newVendorResolver(db),
		macs:     make(map[string]int64),
		logger:   log,
	}

	plan := &macIPPlan{queued: make(map[macIPKey]struct{})}
	if err := p.planMacIP(ctx, snap.IPv4, 4, plan); err != nil {
		return counts, err
	}
	if err := p.planMacIP(ctx, snap.IPv6, 6, plan); err != nil {
		return counts, err
	}

	for _, u := range plan.Updates {
		if err := table.UpdateMacIp(ctx, db, u.IdxMacIp, u.Row); err != nil {
			return counts, err
		}
	}
	if err := table.InsertMacIps(ctx, db, plan.Adds, r.batchSize); err != nil {
		return counts, err
	}

	counts.Inserted = len(plan.Adds)
	counts.Updated = len(plan.Updates)

	log.Debug("Updated MacIp table", zap.Int("adds", counts.Inserted), zap.Int("updates", counts.Updated))
	return counts, nil
}

// planner carries the per-call lookups of one MAC-IP reconciliation.
type planner struct {
	db       *gorm.DB
	device   int64
	idxEvent int64
	vendors  *vendorResolver
	macs     map[string]int64
	logger   *zap.Logger
}

// planMacIP routes every (ip, mac) pair of one address family table into plan.
func (p *planner) planMacIP(ctx context.Context, addrs map[string]string, version int64, plan *macIPPlan) error {
	ips := make([]string, 0, len(addrs))
	for ip := range addrs {
		ips = append(ips, ip)
	}
	sort.Strings(ips)

	for _, ip := range ips {
		mac := NormalizeMac(addrs[ip])
		if mac == "" {
			continue
		}

		// Resolved from the binding's own MAC, not copied from the mac row.
		idxOui, err := p.vendors.resolve(ctx, mac)
		if err != nil {
			return err
		}

		idxMac, err := p.macID(ctx, mac, idxOui)
		if err != nil {
			return err
		}

		key := macIPKey{idxMac: idxMac, ip: ip}
		if _, ok := plan.queued[key]; ok {
			continue
		}
		plan.queued[key] = struct{}{}

		row := &models.MacIp{
			IdxDevice: p.device,
			IdxMac:    idxMac,
			IP:        ip,
			IdxOui:    idxOui,
			Version:   version,
			Enabled:   true,
		}

		existing, err := table.FindMacIp(ctx, p.db, p.device, idxMac, ip)
		if err != nil {
			return err
		}
		if existing != nil {
			plan.Updates = append(plan.Updates, macIPUpdate{IdxMacIp: existing.IdxMacIp, Row: row})
		} else {
			plan.Adds = append(plan.Adds, row)
		}
	}
	return nil
}

// macID returns the identity of mac, storing it first when no interface reported it.
func (p *planner) macID(ctx context.Context, mac string, idxOui int64) (int64, error) {
	if idx, ok := p.macs[mac]; ok {
		return idx, nil
	}

	row, err := table.FindMac(ctx, p.db, mac)
	if err != nil {
		return 0, err
	}
	if row == nil {
		row, err = table.UpsertMac(ctx, p.db, &models.Mac{
			IdxOui:   idxOui,
			IdxEvent: eventRef(p.idxEvent),
			Mac:      mac,
			Enabled:  true,
		})
		if err != nil {
			return 0, err
		}
		p.logger.Debug("Stored MAC seen only in address table", zap.String("mac", mac))
	}

	p.macs[mac] = row.IdxMac
	return row.IdxMac, nil
}
