package table

import (
	"context"
	"errors"
	"testing"

	"topology-manager/feature/topology/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevice_Lifecycle(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)

	missing, err := FindDevice(ctx, db, "sw1")
	require.NoError(t, err)
	assert.Nil(t, missing)

	row := &models.Device{Hostname: "sw1", SysName: ptr("sw1.lab"), Enabled: true}
	require.NoError(t, InsertDevice(ctx, db, row))
	assert.NotZero(t, row.IdxDevice)

	update := &models.Device{Hostname: "sw1", SysName: nil, SysUptime: ptr(int64(99)), LastPolled: ptr(int64(1700000000)), IdxEvent: ptr(int64(7)), Enabled: true}
	require.NoError(t, UpdateDevice(ctx, db, row.IdxDevice, update))

	got, err := FindDevice(ctx, db, "sw1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, row.IdxDevice, got.IdxDevice)
	assert.Nil(t, got.SysName)
	assert.Equal(t, int64(99), *got.SysUptime)
	assert.Equal(t, int64(7), *got.IdxEvent)
}

func TestUpsertDevice(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)

	first, err := UpsertDevice(ctx, db, &models.Device{Hostname: "sw1", SysName: ptr("a"), Enabled: true})
	require.NoError(t, err)

	second, err := UpsertDevice(ctx, db, &models.Device{Hostname: "sw1", SysName: ptr("b"), Enabled: true})
	require.NoError(t, err)

	assert.Equal(t, first.IdxDevice, second.IdxDevice)
	assert.Equal(t, "b", *second.SysName)

	var count int64
	require.NoError(t, db.Model(&models.Device{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpsertDevice_MySQLStatement(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `device` .* ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT \\* FROM `device` WHERE hostname = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"idx_device", "hostname", "enabled"}).AddRow(1, "sw1", true))

	got, err := UpsertDevice(context.Background(), db, &models.Device{Hostname: "sw1", Enabled: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.IdxDevice)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindDevice_StoreError(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT \\* FROM `device`").WillReturnError(errors.New("connection lost"))

	got, err := FindDevice(context.Background(), db, "sw1")
	assert.Nil(t, got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to look up device sw1")
	assert.Contains(t, err.Error(), "connection lost")
}
