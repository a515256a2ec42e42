package table

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// findOne returns the first row matching query, or nil when there is none.
func findOne[T any](ctx context.Context, db *gorm.DB, query any, args ...any) (*T, error) {
	var row T
	err := db.WithContext(ctx).Where(query, args...).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
