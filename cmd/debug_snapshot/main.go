package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"

	"topology-manager/core/database"
	"topology-manager/feature/topology"
	"topology-manager/feature/topology/models"
	"topology-manager/feature/topology/reconcile"
	"topology-manager/feature/topology/table"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Parses a snapshot file and reconciles it twice into a throwaway in-memory store,
// printing what was decoded and what each pass wrote.
func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <snapshot.json>", os.Args[0])
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}

	snap, err := models.ParseSnapshot(data)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("=== TEST 1: Decoding ===")
	fmt.Printf("Host: %s\n", snap.Host)
	fmt.Printf("Interfaces: %d\n", len(snap.Interfaces))
	for _, ifindex := range snap.Ifindexes() {
		iface := snap.Interfaces[ifindex]
		fmt.Printf("  ifindex=%d vlans=%v macs=%d\n", ifindex, iface.Vlans, len(iface.Macs))
	}
	fmt.Printf("IPv4 bindings: %d, IPv6 bindings: %d\n", len(snap.IPv4), len(snap.IPv6))

	prefixes := make(map[string]struct{})
	for _, iface := range snap.Interfaces {
		for _, mac := range iface.Macs {
			prefixes[reconcile.OuiPrefix(mac)] = struct{}{}
		}
	}
	sorted := make([]string, 0, len(prefixes))
	for p := range prefixes {
		sorted = append(sorted, p)
	}
	sort.Strings(sorted)
	fmt.Printf("Vendor prefixes: %v\n", sorted)

	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	if err != nil {
		log.Fatal(err)
	}
	ctx := context.Background()
	if err := topology.Migrate(ctx, db); err != nil {
		log.Fatal(err)
	}

	ev, err := table.InsertEvent(ctx, db, "debug")
	if err != nil {
		log.Fatal(err)
	}

	logger, _ := zap.NewDevelopment()
	r := reconcile.New(logger)

	for pass := 1; pass <= 2; pass++ {
		fmt.Printf("\n=== TEST %d: Reconcile pass %d ===\n", pass+1, pass)
		summary, err := r.Reconcile(ctx, db, snap, ev.IdxEvent)
		if err != nil {
			log.Fatal(err)
		}
		out, _ := json.MarshalIndent(summary, "", "  ")
		fmt.Println(string(out))
	}
}
