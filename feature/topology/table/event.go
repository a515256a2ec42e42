package table

import (
	"context"
	"fmt"

	"topology-manager/feature/topology/models"

	"gorm.io/gorm"
)

// InsertEvent creates a poll event and returns it with its identity set.
func InsertEvent(ctx context.Context, db *gorm.DB, name string) (*models.Event, error) {
	row := &models.Event{Name: name, Enabled: true}
	if err := db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, fmt.Errorf("failed to insert event %q: %w", name, err)
	}
	return row, nil
}

// FindEvent looks up a poll event by identity.
func FindEvent(ctx context.Context, db *gorm.DB, idx int64) (*models.Event, error) {
	row, err := findOne[models.Event](ctx, db, "idx_event = ?", idx)
	if err != nil {
		return nil, fmt.Errorf("failed to look up event %d: %w", idx, err)
	}
	return row, nil
}
