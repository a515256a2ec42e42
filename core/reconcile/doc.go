// Package reconcile holds the device-independent parts of snapshot reconciliation:
// per-table write counters, per-snapshot summaries and the bounded worker pool that
// reconciles many devices at once.
//
// # Concurrency
//
// Reconciling one device is strictly sequential (device, interfaces, VLANs, MACs,
// MAC-IP bindings). Different devices are independent jobs and RunAll executes them on
// a pool of Config.Workers goroutines. Devices share global rows (MAC addresses, vendor
// prefixes), so the table accessors write those with atomic insert-or-update statements
// rather than relying on the pool for isolation.
//
// # Usage
//
//	jobs := []reconcile.Job{{Name: "sw1.json", Run: func(ctx context.Context) (*reconcile.Summary, error) {
//	    return svc.ProcessSnapshot(ctx, snap, eventID)
//	}}}
//	report := reconcile.NewReport(reconcile.RunAll(ctx, cfg.Reconcile.Workers, jobs))
package reconcile
