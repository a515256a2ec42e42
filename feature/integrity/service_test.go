package integrity

import (
	"context"
	"testing"

	"topology-manager/core/database"
	"topology-manager/core/storage"
	"topology-manager/core/storage/mocks"
	"topology-manager/feature/topology"
	"topology-manager/feature/topology/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var storageCfg = storage.Config{
	Bucket:         "test-bucket",
	SnapshotPrefix: "snapshots",
	ArchivePrefix:  "archive",
}

// setupDB opens a migrated in-memory store.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, topology.Migrate(context.Background(), db))
	return db
}

func TestService_Structure(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, storageCfg, zap.NewNop(), nil)

	t.Run("CheckStructure", func(t *testing.T) {
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(mocks.Objects())

		missing, err := svc.CheckStructure(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []string{"snapshots", "archive", "oui"}, missing)
	})

	t.Run("FixStructure", func(t *testing.T) {
		mockClient.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)
		err := svc.FixStructure(context.Background(), []string{"archive"})
		assert.NoError(t, err)
	})
}

func TestService_Schema(t *testing.T) {
	svc := NewService(new(mocks.Client), storageCfg, zap.NewNop(), setupDB(t))

	report, err := svc.CheckSchema()
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Contains(t, report.Tables, "macip")
}

func TestService_Stats(t *testing.T) {
	db := setupDB(t)
	svc := NewService(new(mocks.Client), storageCfg, zap.NewNop(), db)
	require.NoError(t, db.Create(&models.Device{Hostname: "sw1", Enabled: true}).Error)

	stats, err := svc.CheckStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats["device"])
	assert.Equal(t, int64(1), stats["oui"])
	assert.Equal(t, int64(0), stats["macip"])
	assert.Len(t, stats, 7)
}

func TestService_NilDB(t *testing.T) {
	svc := NewService(new(mocks.Client), storageCfg, nil, nil)

	_, err := svc.CheckSchema()
	assert.Error(t, err)

	_, err = svc.CheckStats(context.Background())
	assert.Error(t, err)
}
