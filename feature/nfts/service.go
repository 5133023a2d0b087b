package nfts

import (
	"context"
	"errors"

	"nft-reconciler/core/alchemy"
	"nft-reconciler/core/pagination"
	"nft-reconciler/core/reconcile"

	"go.uber.org/zap"
)

var (
	// ErrLedgerUnavailable is returned for reconciliation when no ledger is connected.
	ErrLedgerUnavailable = errors.New("ledger database is not connected")
	// ErrExportUnavailable is returned when an export is requested without storage.
	ErrExportUnavailable = errors.New("report storage is not configured")
)

// Fetcher is the subset of the NFT API client the feature uses.
type Fetcher interface {
	FetchPage(ctx context.Context, req alchemy.PageRequest) (*alchemy.AssetPage, error)
	FetchCollections(ctx context.Context, owner string, maxNFTsPerContract int) ([]alchemy.Collection, error)
}

// AllAssets is every asset of an owner, drained across pages.
type AllAssets struct {
	Owner  string          `json:"owner"`
	Assets []alchemy.Asset `json:"assets"`
	Pages  int             `json:"pages"`
}

// ReconcileResponse is a report plus, when exported, the object it was stored under.
type ReconcileResponse struct {
	*reconcile.Report
	ExportedTo string `json:"exported_to,omitempty"`
}

// Service handles NFT listing and reconciliation operations.
type Service struct {
	fetcher    Fetcher
	reconciler *reconcile.Reconciler
	exporter   *reconcile.Exporter
	config     reconcile.Config
	logger     *zap.Logger
}

// NewService creates a new NFT service. reconciler and exporter may be nil
// when the ledger or the report storage is unavailable.
func NewService(fetcher Fetcher, reconciler *reconcile.Reconciler, exporter *reconcile.Exporter, cfg reconcile.Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		fetcher:    fetcher,
		reconciler: reconciler,
		exporter:   exporter,
		config:     cfg,
		logger:     logger,
	}
}

// Page returns one page of the owner's assets.
func (s *Service) Page(ctx context.Context, owner, contract, pageKey string) (*alchemy.AssetPage, error) {
	return s.fetcher.FetchPage(ctx, alchemy.PageRequest{
		Owner:           owner,
		ContractAddress: contract,
		PageKey:         pageKey,
	})
}

// All drains every page of the owner's assets.
func (s *Service) All(ctx context.Context, owner, contract string) (*AllAssets, error) {
	pager := alchemy.NewPager(s.fetcher, alchemy.PageRequest{Owner: owner, ContractAddress: contract}, pagination.Config{MaxPages: s.config.MaxPages})

	assets, err := pagination.Drain(ctx, pager)
	if err != nil {
		return nil, err
	}
	if assets == nil {
		assets = []alchemy.Asset{}
	}

	return &AllAssets{Owner: owner, Assets: assets, Pages: pager.Pages()}, nil
}

// Collections returns the owner's NFTs grouped by contract.
func (s *Service) Collections(ctx context.Context, owner string, maxNFTsPerContract int) ([]alchemy.Collection, error) {
	return s.fetcher.FetchCollections(ctx, owner, maxNFTsPerContract)
}

// Reconcile reconciles one owner, coalescing concurrent requests for the same
// owner, and optionally exports the report.
func (s *Service) Reconcile(ctx context.Context, owner string, export bool) (*ReconcileResponse, error) {
	if s.reconciler == nil {
		return nil, ErrLedgerUnavailable
	}
	if export && s.exporter == nil {
		return nil, ErrExportUnavailable
	}

	report, err := s.reconciler.ReconcileShared(ctx, owner)
	if err != nil {
		return nil, err
	}

	resp := &ReconcileResponse{Report: report}
	if export {
		name, err := s.exporter.Export(ctx, report)
		if err != nil {
			return nil, err
		}
		s.logger.Info("Report exported", zap.String("owner", owner), zap.String("object", name))
		resp.ExportedTo = name
	}

	return resp, nil
}

// ReconcileBatch reconciles several owners using the configured concurrency.
func (s *Service) ReconcileBatch(ctx context.Context, owners []string, continueOnError bool) ([]reconcile.OwnerResult, error) {
	if s.reconciler == nil {
		return nil, ErrLedgerUnavailable
	}

	opts := s.config.BatchOptions()
	opts.ContinueOnError = opts.ContinueOnError || continueOnError

	return s.reconciler.ReconcileBatch(ctx, owners, opts)
}

// Reports lists the exported reports of an owner, oldest first.
func (s *Service) Reports(ctx context.Context, owner string) ([]string, error) {
	if s.exporter == nil {
		return nil, ErrExportUnavailable
	}
	return s.exporter.List(ctx, owner)
}

// Report loads one exported report of an owner by file name.
func (s *Service) Report(ctx context.Context, owner, name string) (*reconcile.Report, error) {
	if s.exporter == nil {
		return nil, ErrExportUnavailable
	}
	objectName, err := s.exporter.ReportName(owner, name)
	if err != nil {
		return nil, err
	}
	return s.exporter.Load(ctx, objectName)
}
