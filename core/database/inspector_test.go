package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE vlan (idx_vlan INTEGER PRIMARY KEY, idx_device INTEGER NOT NULL, name TEXT)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "vlan")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	byField := make(map[string]ColumnInfo)
	for _, col := range columns {
		byField[col.Field] = col
	}

	assert.Equal(t, "integer", byField["idx_vlan"].Type)
	assert.Equal(t, "PRI", byField["idx_vlan"].Key)
	assert.Equal(t, "NO", byField["idx_device"].Null)
	assert.Equal(t, "text", byField["name"].Type)
	assert.Equal(t, "YES", byField["name"].Null)

	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}
