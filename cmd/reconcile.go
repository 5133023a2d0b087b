package cmd

import (
	"errors"
	"fmt"
	"io"

	"nft-reconciler/core/reconcile"
	"nft-reconciler/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	continueOnError bool
	concurrency     int
	maxPages        int
	exportReports   bool
	keepReports     int
)

// reconcileCmd reconciles API holdings against the ledger for one or more owners.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile <owner>...",
	Short: "Reconcile API holdings against the ownership ledger",
	Long: `Fetches every page of each owner's NFTs, reads the owner's ledger rows and
reports whether both sides hold the same tokens.

By default the first failing owner aborts the run. Use --continue-on-error to
report failures per owner and keep going.

Examples:
  # Single owner
  reconcile 0x04f5df957ce0405ba0264eca6130161cfaa12571

  # Several owners, four at a time, exporting each report
  reconcile 0xaaa... 0xbbb... 0xccc... --concurrency 4 --export

  # Keep only the newest three exported reports per owner
  reconcile 0xaaa... --export --keep 3`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().BoolVar(&continueOnError, "continue-on-error", false, "Keep reconciling remaining owners after a failure")
	reconcileCmd.Flags().IntVar(&concurrency, "concurrency", 1, "Owners reconciled at once")
	reconcileCmd.Flags().IntVar(&maxPages, "max-pages", 0, "API page ceiling per owner (defaults to reconcile.max_pages)")
	reconcileCmd.Flags().BoolVar(&exportReports, "export", false, "Upload each report to object storage")
	reconcileCmd.Flags().IntVar(&keepReports, "keep", 0, "With --export, prune all but the newest N reports per owner")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, l, err := bootstrap()
	if err != nil {
		return err
	}
	defer l.Sync()

	if cmd.Flags().Changed("max-pages") {
		cfg.Reconcile.MaxPages = maxPages
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Reconcile.Concurrency = concurrency
	}
	if continueOnError {
		cfg.Reconcile.ContinueOnError = true
	}

	db := connectLedger(cfg, l)
	if db == nil {
		return errors.New("ledger database connection required")
	}

	var exporter *reconcile.Exporter
	if exportReports {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
		if created, err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			return err
		} else if created {
			l.Info("Created report bucket", zap.String("bucket", cfg.Storage.Bucket))
		}
		exporter = reconcile.NewExporter(client, cfg.Storage.Bucket, cfg.Storage.ReportPrefix)
	}

	r := newReconciler(cfg, l, newAPIClient(cfg, l), db)

	l.Info("Starting reconciliation",
		zap.Int("owners", len(args)),
		zap.Int("concurrency", cfg.Reconcile.Concurrency),
		zap.Bool("continue_on_error", cfg.Reconcile.ContinueOnError))

	results, batchErr := r.ReconcileBatch(ctx, args, cfg.Reconcile.BatchOptions())

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
		if err := printResult(cmd.OutOrStdout(), res); err != nil {
			return err
		}
		if res.Report != nil && exporter != nil {
			if err := exportReport(cmd, l, exporter, res.Report); err != nil {
				return err
			}
		}
	}

	if batchErr != nil {
		return batchErr
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d owners failed", failed, len(args))
	}
	return nil
}

func printResult(w io.Writer, res reconcile.OwnerResult) error {
	if res.Err != nil {
		_, err := fmt.Fprintf(w, "%s: error: %v\n", res.Owner, res.Err)
		return err
	}
	return res.Report.WriteText(w)
}

func exportReport(cmd *cobra.Command, l *zap.Logger, exporter *reconcile.Exporter, report *reconcile.Report) error {
	ctx := cmd.Context()

	name, err := exporter.Export(ctx, report)
	if err != nil {
		return err
	}
	l.Info("Report exported", zap.String("owner", report.Owner), zap.String("object", name))

	if keepReports > 0 {
		removed, err := exporter.Prune(ctx, report.Owner, keepReports)
		if err != nil {
			return err
		}
		if removed > 0 {
			l.Info("Pruned old reports", zap.String("owner", report.Owner), zap.Int("removed", removed))
		}
	}
	return nil
}
