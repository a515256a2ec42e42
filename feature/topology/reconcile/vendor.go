package reconcile

import (
	"context"
	"strings"

	"topology-manager/feature/topology/models"
	"topology-manager/feature/topology/table"

	"gorm.io/gorm"
)

// OuiPrefix returns the lowercase 6 character vendor prefix of a MAC address.
func OuiPrefix(mac string) string {
	mac = strings.ToLower(mac)
	if len(mac) > 6 {
		return mac[:6]
	}
	return mac
}

// vendorResolver maps vendor prefixes to oui identities for the duration of one call.
// Unknown prefixes resolve to the sentinel row.
type vendorResolver struct {
	db    *gorm.DB
	cache map[string]int64
}

func newVendorResolver(db *gorm.DB) *vendorResolver {
	return &vendorResolver{db: db, cache: make(map[string]int64)}
}

func (v *vendorResolver) resolve(ctx context.Context, mac string) (int64, error) {
	prefix := OuiPrefix(mac)
	if idx, ok := v.cache[prefix]; ok {
		return idx, nil
	}

	row, err := table.FindOui(ctx, v.db, prefix)
	if err != nil {
		return 0, err
	}

	idx := models.SentinelOuiID
	if row != nil {
		idx = row.IdxOui
	}
	v.cache[prefix] = idx
	return idx, nil
}
