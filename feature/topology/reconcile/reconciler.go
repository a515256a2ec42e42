package reconcile

import (
	"context"
	"fmt"
	"time"

	"topology-manager/core/logger"
	"topology-manager/core/reconcile"
	"topology-manager/feature/topology/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultBatchSize caps the rows of one bulk MAC-IP insert statement.
const DefaultBatchSize = 500

// Reconciler writes decoded snapshots into the topology store.
// It holds no state between calls and is safe for concurrent use.
type Reconciler struct {
	logger    *zap.Logger
	now       func() time.Time
	batchSize int
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithClock sets the time source used to stamp idle markers.
func WithClock(now func() time.Time) Option {
	return func(r *Reconciler) {
		r.now = now
	}
}

// WithBatchSize sets the rows per bulk insert statement.
func WithBatchSize(n int) Option {
	return func(r *Reconciler) {
		if n > 0 {
			r.batchSize = n
		}
	}
}

// New creates a Reconciler.
func New(logger *zap.Logger, opts ...Option) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Reconciler{
		logger:    logger,
		now:       time.Now,
		batchSize: DefaultBatchSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reconcile applies one device snapshot: device, interfaces, VLANs, MACs and MAC-IP
// bindings, in that order, inside a single transaction. Any store error rolls the whole
// snapshot back.
func (r *Reconciler) Reconcile(ctx context.Context, db *gorm.DB, snap *models.Snapshot, idxEvent int64) (*reconcile.Summary, error) {
	start := time.Now()
	summary := &reconcile.Summary{Host: snap.Host, EventID: idxEvent}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dev, counts, err := r.Device(ctx, tx, snap, idxEvent)
		if err != nil {
			return err
		}
		summary.DeviceID = dev.IdxDevice
		summary.Device = counts

		if summary.Interfaces, err = r.L1Interfaces(ctx, tx, snap); err != nil {
			return err
		}
		if summary.Vlans, err = r.Vlans(ctx, tx, snap); err != nil {
			return err
		}
		if summary.Macs, err = r.Macs(ctx, tx, snap, idxEvent); err != nil {
			return err
		}
		if summary.MacIPs, err = r.MacIPs(ctx, tx, snap, idxEvent); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconcile %s: %w", snap.Host, err)
	}

	summary.Duration = time.Since(start)

	logger.ForHost(r.logger, snap.Host).Info("Snapshot reconciled",
		zap.Int64("device", summary.DeviceID),
		zap.Int64("event", idxEvent),
		zap.Int("interfaces", summary.Interfaces.Total()),
		zap.Int("vlans", summary.Vlans.Total()),
		zap.Int("macs", summary.Macs.Total()),
		zap.Int("macips", summary.MacIPs.Total()),
		zap.Duration("duration", summary.Duration),
	)

	return summary, nil
}

// eventRef stores non-positive event ids as NULL.
func eventRef(idxEvent int64) *int64 {
	if idxEvent <= 0 {
		return nil
	}
	return &idxEvent
}
