package storage

// Config holds configuration for the snapshot object store.
type Config struct {
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket holds polled snapshots and vendor files.
	Bucket string `mapstructure:"bucket" default:"switchmap"`
	// SnapshotPrefix is the folder polled snapshots are dropped into.
	SnapshotPrefix string `mapstructure:"snapshot_prefix" default:"snapshots"`
	// ArchivePrefix is the folder reconciled snapshots are moved to.
	ArchivePrefix string `mapstructure:"archive_prefix" default:"archive"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
