package cmd

import (
	"fmt"

	"nft-reconciler/core/alchemy"
	"nft-reconciler/core/config"
	"nft-reconciler/core/database"
	"nft-reconciler/core/ledger"
	"nft-reconciler/core/logger"
	"nft-reconciler/core/pagination"
	"nft-reconciler/core/reconcile"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// bootstrap loads the configuration and builds the logger every command needs.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return cfg, logg, nil
}

func newAPIClient(cfg *config.Config, logg *zap.Logger) *alchemy.Client {
	return alchemy.NewClient(cfg.Alchemy, logg)
}

// connectLedger opens the ledger database. A failure is logged and yields nil
// so that commands not needing the ledger keep working.
func connectLedger(cfg *config.Config, logg *zap.Logger) *gorm.DB {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
		return nil
	}
	logg.Info("Connected to ledger database", zap.String("table", cfg.Database.LedgerTable))
	return db
}

// newReconciler wires the API and ledger sources into a reconciler.
func newReconciler(cfg *config.Config, logg *zap.Logger, api *alchemy.Client, db *gorm.DB) *reconcile.Reconciler {
	reader := ledger.NewReader(db, ledger.OptionsFromConfig(cfg.Database), logg)
	return reconcile.New(
		reconcile.NewAPISource(api, pagination.Config{MaxPages: cfg.Reconcile.MaxPages}),
		reconcile.NewLedgerSource(reader),
		logg,
	)
}
