// Package database handles database connections and schema inspection.
//
// It wraps GORM to open the topology store on either MySQL (production) or SQLite
// (embedded deployments and tests), selected by the "driver" configuration key.
//
// # Connect
//
// Connect opens the store, applies pool settings and pings it. SQLite is pinned to a
// single connection so that ":memory:" databases are shared by every caller and writers
// are serialised.
//
// # Schema Inspection
//
// GetTableColumns lists the actual columns of a table. The integrity feature compares
// them with the column tags of the topology models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "l1interface")
package database
