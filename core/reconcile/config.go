package reconcile

// Config holds configuration for snapshot reconciliation.
type Config struct {
	// Workers is the number of devices reconciled concurrently.
	Workers int `mapstructure:"workers" default:"4"`
	// BatchSize caps the rows per bulk insert statement.
	BatchSize int `mapstructure:"batch_size" default:"500"`
	// SnapshotDir is the local directory scanned by `ingest --dir` when no directory is given.
	SnapshotDir string `mapstructure:"snapshot_dir" default:"./snapshots"`
}
