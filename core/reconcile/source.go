package reconcile

import (
	"context"

	"nft-reconciler/core/alchemy"
	"nft-reconciler/core/ledger"
	"nft-reconciler/core/pagination"
)

// Source produces the ordered token list of one side of a reconciliation.
type Source interface {
	// Name identifies the source in errors and logs (e.g., "api", "ledger").
	Name() string

	// Tokens returns every token the source holds for owner, in source order.
	Tokens(ctx context.Context, owner string) (*Listing, error)
}

// AssetFetcher fetches one page of an owner's assets.
type AssetFetcher = alchemy.PageFetcher

// APISource drains the owner's asset listing page by page.
type APISource struct {
	fetcher AssetFetcher
	config  pagination.Config
}

// NewAPISource creates an API source bounded by cfg.MaxPages.
func NewAPISource(fetcher AssetFetcher, cfg pagination.Config) *APISource {
	return &APISource{fetcher: fetcher, config: cfg}
}

// Name implements Source.
func (s *APISource) Name() string {
	return "api"
}

// Tokens follows page keys from the first page until the API stops returning one.
func (s *APISource) Tokens(ctx context.Context, owner string) (*Listing, error) {
	pager := alchemy.NewPager(s.fetcher, alchemy.PageRequest{Owner: owner}, s.config)

	assets, err := pagination.Drain(ctx, pager)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(assets))
	for _, asset := range assets {
		keys = append(keys, asset.Key())
	}

	return &Listing{Keys: keys, Pages: pager.Pages()}, nil
}

// LedgerSource reads the owner's ledger rows.
type LedgerSource struct {
	reader ledger.Reader
}

// NewLedgerSource creates a ledger source over reader.
func NewLedgerSource(reader ledger.Reader) *LedgerSource {
	return &LedgerSource{reader: reader}
}

// Name implements Source.
func (s *LedgerSource) Name() string {
	return "ledger"
}

// Tokens maps every ledger row to its token identity string.
func (s *LedgerSource) Tokens(ctx context.Context, owner string) (*Listing, error) {
	rows, err := s.reader.OwnerRows(ctx, owner)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(rows))
	for _, row := range rows {
		keys = append(keys, row.Key())
	}

	return &Listing{Keys: keys}, nil
}
