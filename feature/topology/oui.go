package topology

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"topology-manager/core/storage"
	"topology-manager/feature/topology/models"
	"topology-manager/feature/topology/table"

	"go.uber.org/zap"
)

// ParseOUI reads a vendor prefix file. Each useful line starts with a prefix in any of the
// forms "00:00:0C", "00-00-0C", "00000c", followed by the organization. IEEE "(hex)" and
// "(base 16)" markers are ignored. Lines without a valid prefix are skipped, and the first
// occurrence of a prefix wins.
func ParseOUI(r io.Reader) ([]models.Oui, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	seen := make(map[string]struct{})
	var rows []models.Oui

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		prefix, ok := normalizeOUI(fields[0])
		if !ok {
			continue
		}
		if _, dup := seen[prefix]; dup {
			continue
		}
		seen[prefix] = struct{}{}

		org := strings.TrimSpace(line[len(fields[0]):])
		org = strings.TrimSpace(strings.TrimPrefix(org, "(hex)"))
		org = strings.TrimSpace(strings.TrimPrefix(org, "(base 16)"))

		row := models.Oui{Oui: prefix, Enabled: true}
		if org != "" {
			row.Organization = &org
		}
		rows = append(rows, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read oui file: %w", err)
	}
	return rows, nil
}

func normalizeOUI(s string) (string, bool) {
	s = strings.ToLower(strings.NewReplacer(":", "", "-", "", ".", "").Replace(s))
	if len(s) != 6 {
		return "", false
	}
	for _, c := range s {
		if !strings.ContainsRune("0123456789abcdef", c) {
			return "", false
		}
	}
	return s, true
}

// ImportOUI parses a vendor prefix file and upserts every prefix. It returns the number
// of prefixes written.
func (s *Service) ImportOUI(ctx context.Context, r io.Reader) (int, error) {
	rows, err := ParseOUI(r)
	if err != nil {
		return 0, err
	}
	if err := table.UpsertOuis(ctx, s.db, rows, s.batchSize); err != nil {
		return 0, err
	}
	s.logger.Info("Imported vendor prefixes", zap.Int("count", len(rows)))
	return len(rows), nil
}

// ImportOUIObject imports a vendor prefix file stored in the bucket.
func (s *Service) ImportOUIObject(ctx context.Context, key string) (int, error) {
	data, err := storage.ReadObject(ctx, s.client, s.storage.Bucket, key)
	if err != nil {
		return 0, err
	}
	return s.ImportOUI(ctx, bytes.NewReader(data))
}
