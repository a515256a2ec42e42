// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client. Pollers drop device snapshots as JSON objects under a
// snapshot prefix; the ingest command lists them, reconciles each one and moves it under
// the archive prefix. Vendor (OUI) files can be read from the same bucket.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Helpers
//
//   - ListKeys: Sorted object keys under a prefix, filtered by extension.
//   - ReadObject: Downloads an object into memory.
//   - MoveObject: Rewrites an object under another prefix and removes the original.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	keys, err := storage.ListKeys(ctx, client, cfg.Storage.Bucket, cfg.Storage.SnapshotPrefix, ".json")
package storage
