package cmd

import (
	"fmt"

	"nft-reconciler/core/storage"
	"nft-reconciler/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the ledger schema and the report bucket",
	Long: `Checks that the ledger table exposes owner, contract and token columns in the
positions the reader expects, and that the report bucket exists.`,
	Args: cobra.NoArgs,
	RunE: runIntegrityChecks,
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the report bucket if it is missing")
}

func runIntegrityChecks(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, logg, err := bootstrap()
	if err != nil {
		return err
	}
	defer logg.Sync()

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}

	db := connectLedger(cfg, logg)

	svc := integrity.NewService(store, cfg.Storage.Bucket, cfg.Storage.ReportPrefix, cfg.Storage.Region, logg, db, cfg.Database.LedgerTable)
	healthy := true

	if db != nil {
		logg.Info("Checking ledger schema...", zap.String("table", cfg.Database.LedgerTable))
		report, err := svc.CheckLedger()
		if err != nil {
			logg.Error("Ledger schema check failed", zap.Error(err))
			healthy = false
		} else if report.Matched {
			logg.Info("Ledger schema matches expected layout.", zap.String("table", report.Table))
		} else {
			healthy = false
			logg.Warn("Ledger schema mismatches found", zap.String("table", report.Table))
			if len(report.MissingColumns) > 0 {
				logg.Warn("Missing Columns", zap.Strings("columns", report.MissingColumns))
			}
			if len(report.PositionMismatches) > 0 {
				logg.Warn("Position Mismatches", zap.Strings("mismatches", report.PositionMismatches))
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	logg.Info("Checking report bucket...", zap.String("bucket", cfg.Storage.Bucket))
	storageReport, err := svc.CheckStorage(ctx)
	if err != nil {
		return fmt.Errorf("storage check failed: %w", err)
	}

	if storageReport.Exists {
		logg.Info("Report bucket is present.", zap.Int("reports", storageReport.Reports))
	} else if fixFlag {
		logg.Info("Creating report bucket...")
		if err := svc.FixStorage(ctx); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	} else {
		healthy = false
		logg.Warn("Report bucket missing. Run with --fix to create it.", zap.String("bucket", storageReport.Bucket))
	}

	if !healthy {
		return fmt.Errorf("integrity checks reported problems")
	}
	return nil
}
