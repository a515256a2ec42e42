package table

import (
	"context"
	"testing"

	"topology-manager/feature/topology/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMacIp_Lifecycle(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	dev := mustDevice(t, db, "sw1")

	mac := &models.Mac{Mac: "aabbccddeeff", IdxOui: models.SentinelOuiID, Enabled: true}
	require.NoError(t, InsertMac(ctx, db, mac))

	missing, err := FindMacIp(ctx, db, dev.IdxDevice, mac.IdxMac, "10.0.0.1")
	require.NoError(t, err)
	assert.Nil(t, missing)

	row := &models.MacIp{IdxDevice: dev.IdxDevice, IdxMac: mac.IdxMac, IP: "10.0.0.1", IdxOui: models.SentinelOuiID, Version: 4, Enabled: true}
	require.NoError(t, InsertMacIp(ctx, db, row))

	// An external annotation survives updates.
	require.NoError(t, db.Model(&models.MacIp{}).Where("idx_macip = ?", row.IdxMacIp).Update("hostname", "printer.lab").Error)
	require.NoError(t, UpdateMacIp(ctx, db, row.IdxMacIp, &models.MacIp{
		IdxDevice: dev.IdxDevice, IdxMac: mac.IdxMac, IP: "10.0.0.1", IdxOui: models.SentinelOuiID, Version: 4, Enabled: true,
	}))

	got, err := FindMacIp(ctx, db, dev.IdxDevice, mac.IdxMac, "10.0.0.1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "printer.lab", *got.Hostname)

	byIP, err := FindIP(ctx, db, "10.0.0.1")
	require.NoError(t, err)
	assert.Len(t, byIP, 1)

	byHost, err := FindHostname(ctx, db, "printer")
	require.NoError(t, err)
	assert.Len(t, byHost, 1)

	none, err := FindHostname(ctx, db, "scanner")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestInsertMacIps_Bulk(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	dev := mustDevice(t, db, "sw1")

	mac := &models.Mac{Mac: "aabbccddeeff", IdxOui: models.SentinelOuiID, Enabled: true}
	require.NoError(t, InsertMac(ctx, db, mac))

	rows := []*models.MacIp{
		{IdxDevice: dev.IdxDevice, IdxMac: mac.IdxMac, IP: "10.0.0.1", IdxOui: models.SentinelOuiID, Version: 4, Enabled: true},
		{IdxDevice: dev.IdxDevice, IdxMac: mac.IdxMac, IP: "10.0.0.2", IdxOui: models.SentinelOuiID, Version: 4, Enabled: true},
		{IdxDevice: dev.IdxDevice, IdxMac: mac.IdxMac, IP: "fe80::1", IdxOui: models.SentinelOuiID, Version: 6, Enabled: true},
	}
	require.NoError(t, InsertMacIps(ctx, db, rows, 2))
	require.NoError(t, InsertMacIps(ctx, db, nil, 2))

	// Re-inserting an existing binding refreshes it instead of failing.
	require.NoError(t, InsertMacIps(ctx, db, []*models.MacIp{
		{IdxDevice: dev.IdxDevice, IdxMac: mac.IdxMac, IP: "10.0.0.1", IdxOui: models.SentinelOuiID, Version: 4, Enabled: true},
	}, 0))

	var count int64
	require.NoError(t, db.Model(&models.MacIp{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}
