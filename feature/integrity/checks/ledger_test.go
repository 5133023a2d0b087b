package checks

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func columnRows(fields ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	for _, f := range fields {
		rows.AddRow(f, "varchar(66)", "NO", "", nil, "")
	}
	return rows
}

var showColumns = regexp.QuoteMeta("SHOW COLUMNS FROM `eth_nftOwners`")

func TestExpectedColumns(t *testing.T) {
	assert.Equal(t, []string{"owner_address", "contract_address", "token_id"}, ExpectedColumns())
}

func TestCheckLedgerSchema(t *testing.T) {
	t.Run("Matched", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(showColumns).
			WillReturnRows(columnRows("owner_address", "contract_address", "token_id", "updated_at"))

		report, err := CheckLedgerSchema(db, "eth_nftOwners")
		require.NoError(t, err)
		assert.True(t, report.Matched)
		assert.Empty(t, report.MissingColumns)
		assert.Empty(t, report.PositionMismatches)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Default table", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(showColumns).
			WillReturnRows(columnRows("owner_address", "contract_address", "token_id"))

		report, err := CheckLedgerSchema(db, "")
		require.NoError(t, err)
		assert.Equal(t, "eth_nftOwners", report.Table)
		assert.True(t, report.Matched)
	})

	t.Run("Missing column", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(showColumns).
			WillReturnRows(columnRows("owner_address", "contract_address"))

		report, err := CheckLedgerSchema(db, "eth_nftOwners")
		require.NoError(t, err)
		assert.False(t, report.Matched)
		assert.Equal(t, []string{"token_id"}, report.MissingColumns)
	})

	t.Run("Columns out of order", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(showColumns).
			WillReturnRows(columnRows("id", "owner_address", "contract_address", "token_id"))

		report, err := CheckLedgerSchema(db, "eth_nftOwners")
		require.NoError(t, err)
		assert.False(t, report.Matched)
		assert.Empty(t, report.MissingColumns)
		require.Len(t, report.PositionMismatches, 3)
		assert.Equal(t, "owner_address: expected position 0, got 1", report.PositionMismatches[0])
	})

	t.Run("Missing table", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(showColumns).WillReturnRows(columnRows())

		report, err := CheckLedgerSchema(db, "eth_nftOwners")
		require.NoError(t, err)
		assert.False(t, report.Matched)
		assert.Len(t, report.Errors, 1)
	})

	t.Run("Inspection error", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(showColumns).WillReturnError(errors.New("access denied"))

		report, err := CheckLedgerSchema(db, "eth_nftOwners")
		require.NoError(t, err)
		assert.False(t, report.Matched)
		require.Len(t, report.Errors, 1)
		assert.Contains(t, report.Errors[0], "access denied")
	})

	t.Run("Nil DB", func(t *testing.T) {
		_, err := CheckLedgerSchema(nil, "eth_nftOwners")
		assert.Error(t, err)
	})
}
