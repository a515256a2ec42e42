// Package models defines the topology store tables and the decoded poll snapshot.
//
// Tables (gorm models, one per entity):
//
//   - event:       one row per poll cycle, stamped onto devices and MACs
//   - device:      unique by hostname
//   - l1interface: unique by (idx_device, ifindex), carries the idle marker ts_idle
//   - vlan:        unique by (idx_device, vlan)
//   - oui:         unique by 6 character vendor prefix; idx_oui=1 is the "unknown" sentinel
//   - mac:         unique by lowercase address, global across devices
//   - macip:       unique by (idx_device, idx_mac, ip_)
//
// Snapshot decoding never fails on a single attribute: wrong types become nil so the
// corresponding column is stored as NULL.
package models
