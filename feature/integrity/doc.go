// Package integrity provides system health checks for the topology store.
//
// Unlike the 'topology' package, which writes snapshots into the store, this package
// only validates the infrastructure the ingestion depends on.
//
// # Checks Provided
//
//   - Structure: Checks if the snapshot, archive and oui folders exist in the storage bucket.
//   - Schema: Validates that the connected database schema matches the topology models (columns, types).
//   - Stats: Counts the rows of every topology table.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/schema : Runs schema check.
//   - GET /integrity/stats : Returns row counts.
package integrity
