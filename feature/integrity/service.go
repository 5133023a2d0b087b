package integrity

import (
	"context"

	"nft-reconciler/core/storage"
	"nft-reconciler/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	prefix string
	region string
	logger *zap.Logger
	db     *gorm.DB
	table  string
}

// NewService creates a new integrity service. client and db may be nil when
// the matching backend is not configured.
func NewService(client storage.Client, bucket, prefix, region string, logger *zap.Logger, db *gorm.DB, table string) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		bucket: bucket,
		prefix: prefix,
		region: region,
		logger: logger,
		db:     db,
		table:  table,
	}
}

// CheckLedger validates the ledger table layout.
func (s *Service) CheckLedger() (*checks.LedgerReport, error) {
	return checks.CheckLedgerSchema(s.db, s.table)
}

// CheckStorage inspects the report bucket.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}
	return checks.CheckReportBucket(ctx, s.client, s.bucket, s.prefix)
}

// FixStorage creates the report bucket if it is missing.
func (s *Service) FixStorage(ctx context.Context) error {
	if s.client == nil {
		return ErrStorageDisabled
	}
	return checks.FixReportBucket(ctx, s.client, s.bucket, s.region, s.logger)
}
