// Package topology ingests device topology snapshots into the relational store.
//
// Snapshots arrive over HTTP, from a local directory or from the object storage
// bucket. Each one is parsed, stamped with a poll event and handed to the
// reconciler, which runs Device, L1Interface, Vlan, Mac and MacIp reconciliation
// inside a single transaction. Batches of snapshots run on a bounded worker pool
// and produce a per-snapshot report.
//
// # HTTP Endpoints
//
//   - POST /topology/events : Creates a poll event.
//   - POST /topology/snapshots : Reconciles the snapshot in the body (supports ?event=).
//   - POST /topology/ingest : Reconciles every snapshot in the bucket (supports ?event= and ?archive=true).
//   - POST /topology/oui : Imports a vendor prefix file.
//
// # Sources
//
//   - DirSource: *.json files in a directory, archived into a sibling directory.
//   - BucketSource: *.json objects under the snapshot prefix, archived under the archive prefix.
package topology
