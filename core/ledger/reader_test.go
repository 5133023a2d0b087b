package ledger

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const testOwner = "0x04f5df957ce0405ba0264eca6130161cfaa12571"

var ownerQuery = regexp.QuoteMeta("SELECT * FROM `eth_nftOwners` WHERE owner_address = ?")

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

func testOptions() Options {
	return Options{
		Table:        DefaultTable,
		QueryTimeout: 50 * time.Millisecond,
		Retries:      1,
		RetryDelay:   time.Millisecond,
	}
}

func ownerRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"owner_address", "contract_address", "token_id", "block_number"})
}

func TestOwnerRows_Success(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := ownerRows().
		AddRow(testOwner, "0xA", "1", 100).
		AddRow(testOwner, []byte("0xB"), []byte("2"), 101)
	mock.ExpectQuery(ownerQuery).WithArgs(testOwner).WillReturnRows(rows)

	reader := NewReader(db, testOptions(), zap.NewNop())
	result, err := reader.OwnerRows(context.Background(), testOwner)
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, "0xA|1", result[0].Key())
	assert.Equal(t, "0xB|2", result[1].Key())
	assert.Equal(t, testOwner, result[1].OwnerAddress)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOwnerRows_OwnerIsBoundParameter(t *testing.T) {
	db, mock := setupMockDB(t)
	hostile := "x' OR '1'='1"

	mock.ExpectQuery(ownerQuery).WithArgs(hostile).WillReturnRows(ownerRows())

	reader := NewReader(db, testOptions(), zap.NewNop())
	result, err := reader.OwnerRows(context.Background(), hostile)
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOwnerRows_NullColumn(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := ownerRows().AddRow(testOwner, nil, "1", 100)
	mock.ExpectQuery(ownerQuery).WithArgs(testOwner).WillReturnRows(rows)

	reader := NewReader(db, testOptions(), zap.NewNop())
	_, err := reader.OwnerRows(context.Background(), testOwner)

	var qerr *QueryError
	require.ErrorAs(t, err, &qerr)
	assert.ErrorIs(t, err, ErrMalformedRow)
	assert.Equal(t, 1, qerr.Attempts, "malformed rows are not retried")
	assert.Contains(t, err.Error(), `"contract_address" is NULL`)
}

func TestOwnerRows_TooFewColumns(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"owner_address", "token_id"}).AddRow(testOwner, "1")
	mock.ExpectQuery(ownerQuery).WithArgs(testOwner).WillReturnRows(rows)

	reader := NewReader(db, testOptions(), zap.NewNop())
	_, err := reader.OwnerRows(context.Background(), testOwner)
	assert.ErrorIs(t, err, ErrMalformedRow)
}

func TestOwnerRows_RetriesOnceAfterTimeout(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery(ownerQuery).WithArgs(testOwner).
		WillDelayFor(time.Second).
		WillReturnRows(ownerRows())
	mock.ExpectQuery(ownerQuery).WithArgs(testOwner).
		WillReturnRows(ownerRows().AddRow(testOwner, "0xA", "1", 100))

	reader := NewReader(db, testOptions(), zap.NewNop())
	result, err := reader.OwnerRows(context.Background(), testOwner)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "0xA|1", result[0].Key())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOwnerRows_RetryExhausted(t *testing.T) {
	db, mock := setupMockDB(t)

	for i := 0; i < 2; i++ {
		mock.ExpectQuery(ownerQuery).WithArgs(testOwner).
			WillDelayFor(time.Second).
			WillReturnRows(ownerRows())
	}

	reader := NewReader(db, testOptions(), zap.NewNop())
	_, err := reader.OwnerRows(context.Background(), testOwner)

	var qerr *QueryError
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, 2, qerr.Attempts)
	assert.Equal(t, testOwner, qerr.Owner)
	assert.Equal(t, DefaultTable, qerr.Table)
}

func TestOwnerRows_QueryErrorNotRetried(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery(ownerQuery).WithArgs(testOwner).WillReturnError(errors.New("table doesn't exist"))

	reader := NewReader(db, testOptions(), zap.NewNop())
	_, err := reader.OwnerRows(context.Background(), testOwner)

	var qerr *QueryError
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, 1, qerr.Attempts)
	assert.Contains(t, err.Error(), "table doesn't exist")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOwnerRows_NilDB(t *testing.T) {
	reader := NewReader(nil, Options{}, nil)
	_, err := reader.OwnerRows(context.Background(), testOwner)
	assert.ErrorIs(t, err, ErrNoDatabase)
}

func TestNewReader_Defaults(t *testing.T) {
	reader := NewReader(nil, Options{Retries: -1}, nil)
	assert.Equal(t, DefaultTable, reader.Table())
	assert.Equal(t, 10*time.Second, reader.opts.QueryTimeout)
	assert.Equal(t, 0, reader.opts.Retries)
}
