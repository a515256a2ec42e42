// Package reconcile writes decoded topology snapshots into the store.
//
// A snapshot is applied in five sequential steps, all inside one transaction:
//
//  1. Device: insert or refresh the row for the snapshot host.
//  2. L1Interfaces: insert or refresh each interface and advance its idle marker.
//  3. Vlans: distinct VLAN numbers across the stored interfaces.
//  4. Macs: distinct lowercase MACs across the stored interfaces, with vendor.
//  5. MacIPs: IPv4/IPv6 address tables, planned into updates and one bulk insert.
//
// Steps 2 to 5 look the device up by hostname and do nothing (with an info log) if it is
// not stored.
//
// # Idle marker
//
// ts_idle is the unix time at which an interface was first seen without link while
// administratively up. It is 0 while the interface is up/up or administratively down,
// and for an interface seen for the first time.
//
// # Vendors
//
// Vendor prefixes are resolved through a lookup map scoped to one call. A prefix with no
// oui row resolves to the sentinel identity models.SentinelOuiID.
package reconcile
