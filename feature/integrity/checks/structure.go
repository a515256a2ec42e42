package checks

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"topology-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// OUIFolder holds vendor prefix files imported with "oui import --object".
const OUIFolder = "oui"

// RequiredFolders lists the folders that must exist in the bucket: the snapshot drop
// prefix, the archive prefix and the vendor prefix folder.
func RequiredFolders(cfg storage.Config) []string {
	return []string{
		strings.Trim(cfg.SnapshotPrefix, "/"),
		strings.Trim(cfg.ArchivePrefix, "/"),
		OUIFolder,
	}
}

// CheckStructure returns the folders that are missing from the bucket.
func CheckStructure(ctx context.Context, client storage.Client, bucket string, folders []string) ([]string, error) {
	missing := []string{}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	for _, folder := range folders {
		opts := minio.ListObjectsOptions{
			Prefix:    folder + "/",
			Recursive: false,
			MaxKeys:   1,
		}

		found := false
		for range client.ListObjects(ctx, bucket, opts) {
			found = true
			break
		}

		if !found {
			missing = append(missing, folder)
		}
	}

	return missing, nil
}

// FixStructure creates the missing folders.
func FixStructure(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger, missing []string) error {
	for _, folder := range missing {
		folderPath := strings.TrimSuffix(folder, "/") + "/"

		_, err := client.PutObject(ctx, bucket, folderPath, bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("folder", folder), zap.Error(err))
			return fmt.Errorf("failed to create folder %s: %w", folder, err)
		}
		logger.Info("Created missing folder", zap.String("folder", folder))
	}
	return nil
}
