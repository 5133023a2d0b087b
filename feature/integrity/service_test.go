package integrity

import (
	"context"
	"regexp"
	"testing"

	"nft-reconciler/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func expectLedgerColumns(m sqlmock.Sqlmock, fields ...string) {
	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	for _, f := range fields {
		rows.AddRow(f, "varchar(66)", "NO", "", nil, "")
	}
	m.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `eth_nftOwners`")).WillReturnRows(rows)
}

func TestService_Ledger(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	svc := NewService(nil, "", "", "", zap.NewNop(), db, "eth_nftOwners")

	expectLedgerColumns(sqlMock, "owner_address", "contract_address", "token_id")

	report, err := svc.CheckLedger()
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestService_Storage(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "nft-reports", "reports", "us-east-1", zap.NewNop(), nil, "")

	t.Run("CheckStorage", func(t *testing.T) {
		mockClient.On("BucketExists", mock.Anything, "nft-reports").Return(true, nil).Once()
		mockClient.On("ListObjects", mock.Anything, "nft-reports", mock.Anything).Return(nil).Once()

		report, err := svc.CheckStorage(context.Background())
		require.NoError(t, err)
		assert.True(t, report.Exists)
		assert.Zero(t, report.Reports)
	})

	t.Run("FixStorage", func(t *testing.T) {
		mockClient.On("BucketExists", mock.Anything, "nft-reports").Return(false, nil).Once()
		mockClient.On("MakeBucket", mock.Anything, "nft-reports", minio.MakeBucketOptions{Region: "us-east-1"}).Return(nil).Once()

		assert.NoError(t, svc.FixStorage(context.Background()))
		mockClient.AssertExpectations(t)
	})
}

func TestService_StorageDisabled(t *testing.T) {
	svc := NewService(nil, "nft-reports", "reports", "", nil, nil, "")

	_, err := svc.CheckStorage(context.Background())
	assert.ErrorIs(t, err, ErrStorageDisabled)
	assert.ErrorIs(t, svc.FixStorage(context.Background()), ErrStorageDisabled)
}
