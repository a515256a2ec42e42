// Package table holds the per-entity store accessors for the topology tables.
//
// Every entity exposes the same shape:
//
//   - Find<Entity>: lookup by natural key; a missing row is (nil, nil), never an error
//   - Insert<Entity>: plain insert
//   - Update<Entity>: update-by-identity of the mutable columns
//   - Upsert<Entity>: atomic INSERT ... ON CONFLICT DO UPDATE keyed by the unique natural key
//
// Upserts are what make concurrent reconciliation of different devices safe: MAC addresses,
// vendor prefixes and hostnames are global, so two devices may observe the same one at once.
// Store errors are wrapped and returned.
package table
