package ledger

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"nft-reconciler/core/database"
	"nft-reconciler/core/utils"

	"github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var tracer = otel.Tracer("nft-reconciler/core/ledger")

// Reader returns the ledger rows owned by an address.
type Reader interface {
	OwnerRows(ctx context.Context, owner string) ([]Row, error)
}

// Options controls how the ledger is queried.
type Options struct {
	// Table is the ledger table name.
	Table string
	// QueryTimeout bounds a single attempt.
	QueryTimeout time.Duration
	// Retries is the number of extra attempts after a no-response failure.
	Retries int
	// RetryDelay is the pause between attempts.
	RetryDelay time.Duration
}

// OptionsFromConfig derives reader options from the database configuration.
func OptionsFromConfig(cfg database.Config) Options {
	return Options{
		Table:        cfg.LedgerTable,
		QueryTimeout: time.Duration(cfg.QueryTimeoutSeconds) * time.Second,
		Retries:      cfg.QueryRetries,
		RetryDelay:   250 * time.Millisecond,
	}
}

// GormReader reads ledger rows through GORM.
type GormReader struct {
	db     *gorm.DB
	opts   Options
	logger *zap.Logger
}

// NewReader creates a ledger reader over an explicitly constructed database handle.
func NewReader(db *gorm.DB, opts Options, logger *zap.Logger) *GormReader {
	if opts.Table == "" {
		opts.Table = DefaultTable
	}
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = 10 * time.Second
	}
	if opts.Retries < 0 {
		opts.Retries = 0
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GormReader{
		db:     db,
		opts:   opts,
		logger: logger.With(zap.String("component", "ledger")),
	}
}

// Table returns the ledger table name.
func (r *GormReader) Table() string {
	return r.opts.Table
}

// OwnerRows returns every ledger row whose owner_address equals owner, in table order.
func (r *GormReader) OwnerRows(ctx context.Context, owner string) ([]Row, error) {
	if r.db == nil {
		return nil, &QueryError{Owner: owner, Table: r.opts.Table, Err: ErrNoDatabase}
	}

	ctx, span := tracer.Start(ctx, "ledger.OwnerRows")
	defer span.End()
	span.SetAttributes(
		attribute.String("nft.owner", owner),
		attribute.String("db.sql.table", r.opts.Table),
	)

	start := time.Now()
	defer func() {
		ledgerQueryDuration.Observe(time.Since(start).Seconds())
	}()

	var (
		rows     []Row
		attempts int
	)

	operation := func() error {
		attempts++
		attemptCtx, cancel := context.WithTimeout(ctx, r.opts.QueryTimeout)
		defer cancel()

		result, err := r.query(attemptCtx, owner)
		if err == nil {
			rows = result
			return nil
		}

		if ctx.Err() == nil && noResponse(attemptCtx, err) {
			ledgerQueryRetriesTotal.Inc()
			r.logger.Warn("Ledger query got no response",
				zap.String("owner", owner),
				zap.Int("attempt", attempts),
				zap.Duration("timeout", r.opts.QueryTimeout),
				zap.Error(err),
			)
			return err
		}
		return backoff.Permanent(err)
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(r.opts.RetryDelay), uint64(r.opts.Retries)),
		ctx,
	)

	if err := backoff.Retry(operation, policy); err != nil {
		ledgerQueriesTotal.WithLabelValues("error").Inc()
		qerr := &QueryError{Owner: owner, Table: r.opts.Table, Attempts: attempts, Err: err}
		span.RecordError(qerr)
		span.SetStatus(codes.Error, qerr.Error())
		return nil, qerr
	}

	ledgerQueriesTotal.WithLabelValues("ok").Inc()
	span.SetAttributes(attribute.Int("nft.ledger_rows", len(rows)))
	r.logger.Debug("Ledger rows loaded",
		zap.String("owner", owner),
		zap.Int("rows", len(rows)),
		zap.Int("attempts", attempts),
	)

	return rows, nil
}

// query runs one attempt. Columns are read positionally, so SELECT * is intended.
func (r *GormReader) query(ctx context.Context, owner string) ([]Row, error) {
	dbRows, err := r.db.WithContext(ctx).Table(r.opts.Table).Where("owner_address = ?", owner).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", r.opts.Table, err)
	}
	defer dbRows.Close()

	columns, err := dbRows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}
	if len(columns) < 3 {
		return nil, fmt.Errorf("%w: table %s has %d column(s), need at least 3", ErrMalformedRow, r.opts.Table, len(columns))
	}

	var rows []Row
	for index := 0; dbRows.Next(); index++ {
		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := dbRows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row %d: %w", index, err)
		}

		row, err := rowFromValues(index, columns, values)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	if err := dbRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return rows, nil
}

// rowFromValues maps positional values onto a Row.
func rowFromValues(index int, columns []string, values []any) (Row, error) {
	for _, pos := range []int{1, 2} {
		if values[pos] == nil {
			return Row{}, fmt.Errorf("%w: row %d column %q is NULL", ErrMalformedRow, index, columns[pos])
		}
	}

	return Row{
		OwnerAddress:    utils.ToString(values[0]),
		ContractAddress: utils.ToString(values[1]),
		TokenID:         utils.ToString(values[2]),
	}, nil
}

// noResponse reports whether an attempt failed without hearing back from the database.
func noResponse(attemptCtx context.Context, err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	return errors.Is(attemptCtx.Err(), context.DeadlineExceeded)
}
