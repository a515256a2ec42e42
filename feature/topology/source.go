package topology

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"topology-manager/core/storage"

	"golang.org/x/sync/singleflight"
)

// Source lists, reads and archives snapshot documents.
type Source interface {
	// Name describes the source in logs.
	Name() string
	// List returns the snapshot names, sorted.
	List(ctx context.Context) ([]string, error)
	// Read returns the raw document of one snapshot.
	Read(ctx context.Context, name string) ([]byte, error)
	// Archive moves a reconciled snapshot out of the way so it is not ingested twice.
	// data is the content already returned by Read.
	Archive(ctx context.Context, name string, data []byte) error
}

// DirSource reads *.json snapshots from a local directory.
type DirSource struct {
	Dir        string
	ArchiveDir string
}

// NewDirSource creates a directory source. Archived files go to archiveDir, or to
// <dir>/archive when empty.
func NewDirSource(dir, archiveDir string) *DirSource {
	if archiveDir == "" {
		archiveDir = filepath.Join(dir, "archive")
	}
	return &DirSource{Dir: dir, ArchiveDir: archiveDir}
}

func (s *DirSource) Name() string {
	return "dir:" + s.Dir
}

func (s *DirSource) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot dir %s: %w", s.Dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

func (s *DirSource) Read(ctx context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", name, err)
	}
	return data, nil
}

func (s *DirSource) Archive(ctx context.Context, name string, _ []byte) error {
	if err := os.MkdirAll(s.ArchiveDir, 0o755); err != nil {
		return fmt.Errorf("failed to create archive dir %s: %w", s.ArchiveDir, err)
	}
	if err := os.Rename(filepath.Join(s.Dir, name), filepath.Join(s.ArchiveDir, name)); err != nil {
		return fmt.Errorf("failed to archive snapshot %s: %w", name, err)
	}
	return nil
}

// BucketSource reads *.json snapshots from an object storage prefix.
// Concurrent reads of the same key share one download.
type BucketSource struct {
	client        storage.Client
	bucket        string
	prefix        string
	archivePrefix string

	reads singleflight.Group
}

// NewBucketSource creates a bucket source.
func NewBucketSource(client storage.Client, bucket, prefix, archivePrefix string) *BucketSource {
	return &BucketSource{
		client:        client,
		bucket:        bucket,
		prefix:        prefix,
		archivePrefix: archivePrefix,
	}
}

func (s *BucketSource) Name() string {
	return "bucket:" + s.bucket + "/" + s.prefix
}

func (s *BucketSource) List(ctx context.Context) ([]string, error) {
	return storage.ListKeys(ctx, s.client, s.bucket, s.prefix, ".json")
}

func (s *BucketSource) Read(ctx context.Context, key string) ([]byte, error) {
	v, err, _ := s.reads.Do(key, func() (any, error) {
		return storage.ReadObject(ctx, s.client, s.bucket, key)
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (s *BucketSource) Archive(ctx context.Context, key string, data []byte) error {
	_, err := storage.MoveObject(ctx, s.client, s.bucket, key, s.archivePrefix, data)
	return err
}
