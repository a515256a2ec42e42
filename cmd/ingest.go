package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"topology-manager/core/reconcile"
	"topology-manager/feature/topology"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the ingest command
	ingestDir     string
	ingestBucket  bool
	ingestEvent   int64
	ingestName    string
	ingestArchive bool
	ingestJSON    bool
	yesConfirm    bool
)

// ingestCmd reconciles a batch of snapshots.
var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Reconcile topology snapshots into the database",
	Long: `Reconciles every *.json snapshot of a local directory or of the bucket snapshot prefix.

All snapshots of one run share a poll event. Snapshots are reconciled concurrently,
each in its own transaction; a failing snapshot does not stop the others.

Examples:
  # Ingest the configured snapshot directory
  ingest

  # Ingest a directory and archive what succeeded
  ingest --dir /var/lib/switchmap/snapshots --archive --yes

  # Ingest the bucket under an existing event
  ingest --bucket --event 42`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVar(&ingestDir, "dir", "", "Snapshot directory (defaults to reconcile.snapshot_dir)")
	ingestCmd.Flags().BoolVar(&ingestBucket, "bucket", false, "Read snapshots from the storage bucket")
	ingestCmd.Flags().Int64Var(&ingestEvent, "event", 0, "Existing poll event id (a new event is created when omitted)")
	ingestCmd.Flags().StringVar(&ingestName, "name", "", "Name of the new poll event")
	ingestCmd.Flags().BoolVar(&ingestArchive, "archive", false, "Archive snapshots that were reconciled")
	ingestCmd.Flags().BoolVar(&ingestJSON, "json", false, "Save the detailed report as JSON")
	ingestCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm archiving (non-interactive)")
	ingestCmd.MarkFlagsMutuallyExclusive("dir", "bucket")

	RootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rt, err := bootstrap()
	if err != nil {
		return err
	}
	l := rt.logger
	defer l.Sync()

	if err := rt.openDB(); err != nil {
		return err
	}

	if ingestBucket {
		if err := rt.openStorage(); err != nil {
			return err
		}
	}
	svc := rt.topologyService()

	var src topology.Source
	if ingestBucket {
		src = svc.BucketSource()
	} else {
		dir := ingestDir
		if dir == "" {
			dir = rt.cfg.Reconcile.SnapshotDir
		}
		src = topology.NewDirSource(dir, "")
	}

	if ingestArchive && !confirmArchive(src) {
		l.Warn("Archiving cancelled by user. Snapshots will be left in place.")
		ingestArchive = false
	}

	idxEvent, err := svc.ResolveEvent(ctx, ingestEvent, ingestName)
	if err != nil {
		return err
	}

	report, err := svc.Ingest(ctx, src, idxEvent, ingestArchive)
	if err != nil {
		return fmt.Errorf("failed to ingest %s: %w", src.Name(), err)
	}

	printIngestReport(l, report)

	if ingestJSON {
		filename := fmt.Sprintf("ingest_report_%d.json", time.Now().Unix())
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return fmt.Errorf("failed to save JSON file: %w", err)
		}
		l.Info("Detailed JSON report saved", zap.String("file", filename))
	}

	if report.Failed > 0 {
		return fmt.Errorf("%d of %d snapshots failed", report.Failed, len(report.Outcomes))
	}
	return nil
}

// printIngestReport prints a formatted ingestion report using logger.
func printIngestReport(l *zap.Logger, report reconcile.Report) {
	l.Info("Ingestion report",
		zap.Int("snapshots", len(report.Outcomes)),
		zap.Int("succeeded", report.Succeeded),
		zap.Int("failed", report.Failed),
		zap.Int("rows_inserted", report.Rows.Inserted),
		zap.Int("rows_updated", report.Rows.Updated),
	)

	// Show sample of failures (max 5 for logger)
	maxShow := 5
	shown := 0
	for _, o := range report.Outcomes {
		if o.Err == nil {
			continue
		}
		if shown == maxShow {
			l.Info("Additional failures not shown", zap.Int("count", report.Failed-maxShow))
			break
		}
		l.Warn("Failed snapshot", zap.String("snapshot", o.Name), zap.Error(o.Err))
		shown++
	}
}

// confirmArchive prompts the user for confirmation or uses --yes flag.
func confirmArchive(src topology.Source) bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Printf("\n⚠️  Reconciled snapshots will be moved out of %s. Type 'yes' to confirm: ", src.Name())
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
