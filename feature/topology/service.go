package topology

import (
	"context"
	"fmt"
	"time"

	"topology-manager/core/reconcile"
	"topology-manager/core/storage"
	"topology-manager/feature/topology/models"
	topologyReconcile "topology-manager/feature/topology/reconcile"
	"topology-manager/feature/topology/table"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service ingests topology snapshots into the store.
type Service struct {
	db         *gorm.DB
	client     storage.Client
	storage    storage.Config
	logger     *zap.Logger
	reconciler *topologyReconcile.Reconciler
	workers    int
	batchSize  int
}

// NewService creates a new topology service.
func NewService(db *gorm.DB, client storage.Client, storageCfg storage.Config, cfg reconcile.Config, logger *zap.Logger, opts ...topologyReconcile.Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = topologyReconcile.DefaultBatchSize
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	opts = append([]topologyReconcile.Option{topologyReconcile.WithBatchSize(batchSize)}, opts...)

	return &Service{
		db:         db,
		client:     client,
		storage:    storageCfg,
		logger:     logger,
		reconciler: topologyReconcile.New(logger, opts...),
		workers:    workers,
		batchSize:  batchSize,
	}
}

// Migrate prepares the store.
func (s *Service) Migrate(ctx context.Context) error {
	return Migrate(ctx, s.db)
}

// NewEvent records a new poll cycle.
func (s *Service) NewEvent(ctx context.Context, name string) (*models.Event, error) {
	if name == "" {
		name = fmt.Sprintf("poll-%d", time.Now().Unix())
	}
	return table.InsertEvent(ctx, s.db, name)
}

// ResolveEvent returns idxEvent if that event exists, or creates a new event named name
// when idxEvent is zero.
func (s *Service) ResolveEvent(ctx context.Context, idxEvent int64, name string) (int64, error) {
	if idxEvent <= 0 {
		ev, err := s.NewEvent(ctx, name)
		if err != nil {
			return 0, err
		}
		return ev.IdxEvent, nil
	}

	ev, err := table.FindEvent(ctx, s.db, idxEvent)
	if err != nil {
		return 0, err
	}
	if ev == nil {
		return 0, fmt.Errorf("event %d does not exist", idxEvent)
	}
	return ev.IdxEvent, nil
}

// ProcessSnapshot reconciles a single device snapshot.
func (s *Service) ProcessSnapshot(ctx context.Context, snap *models.Snapshot, idxEvent int64) (*reconcile.Summary, error) {
	return s.reconciler.Reconcile(ctx, s.db, snap, idxEvent)
}

// Ingest reconciles every snapshot of src on the worker pool, all stamped with idxEvent.
// Snapshots that fail are reported in their Outcome and left in place; successful ones
// are archived when archive is set.
func (s *Service) Ingest(ctx context.Context, src Source, idxEvent int64, archive bool) (reconcile.Report, error) {
	names, err := src.List(ctx)
	if err != nil {
		return reconcile.Report{}, err
	}

	s.logger.Info("Ingesting snapshots",
		zap.String("source", src.Name()),
		zap.Int("count", len(names)),
		zap.Int64("event", idxEvent),
		zap.Int("workers", s.workers),
	)

	jobs := make([]reconcile.Job, 0, len(names))
	for _, name := range names {
		jobs = append(jobs, reconcile.Job{
			Name: name,
			Run: func(ctx context.Context) (*reconcile.Summary, error) {
				return s.ingestOne(ctx, src, name, idxEvent, archive)
			},
		})
	}

	report := reconcile.NewReport(reconcile.RunAll(ctx, s.workers, jobs))
	for _, o := range report.Outcomes {
		if o.Err != nil {
			s.logger.Error("Snapshot failed", zap.String("snapshot", o.Name), zap.Error(o.Err))
		}
	}

	s.logger.Info("Ingestion finished",
		zap.Int("succeeded", report.Succeeded),
		zap.Int("failed", report.Failed),
		zap.Int("inserted", report.Rows.Inserted),
		zap.Int("updated", report.Rows.Updated),
	)
	return report, nil
}

func (s *Service) ingestOne(ctx context.Context, src Source, name string, idxEvent int64, archive bool) (*reconcile.Summary, error) {
	data, err := src.Read(ctx, name)
	if err != nil {
		return nil, err
	}

	snap, err := models.ParseSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("invalid snapshot %s: %w", name, err)
	}

	summary, err := s.ProcessSnapshot(ctx, snap, idxEvent)
	if err != nil {
		return nil, err
	}

	if archive {
		if err := src.Archive(ctx, name, data); err != nil {
			return summary, err
		}
	}
	return summary, nil
}

// BucketSource returns the configured snapshot prefix of the bucket as a Source.
func (s *Service) BucketSource() *BucketSource {
	return NewBucketSource(s.client, s.storage.Bucket, s.storage.SnapshotPrefix, s.storage.ArchivePrefix)
}
