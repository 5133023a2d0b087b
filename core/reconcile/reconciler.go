package reconcile

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

var tracer trace.Tracer = otel.Tracer("nft-reconciler/core/reconcile")

// Reconciler compares an API source with a ledger source per owner.
type Reconciler struct {
	api    Source
	ledger Source
	logger *zap.Logger
	group  singleflight.Group
	now    func() time.Time
}

// New creates a reconciler. Sources are shared by every owner and must be
// safe for concurrent use when batches run in parallel.
func New(api, ledger Source, logger *zap.Logger) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{
		api:    api,
		ledger: ledger,
		logger: logger.With(zap.String("component", "reconcile")),
		now:    time.Now,
	}
}

// Reconcile drains the API source, then reads the ledger source, then diffs
// the two lists. Any source failure aborts this owner with a *SourceError.
func (r *Reconciler) Reconcile(ctx context.Context, owner string) (*Report, error) {
	ctx, span := tracer.Start(ctx, "reconcile.Reconcile")
	defer span.End()
	span.SetAttributes(attribute.String("nft.owner", owner))

	start := time.Now()
	defer func() {
		reconcileDuration.Observe(time.Since(start).Seconds())
	}()

	fail := func(source string, err error) (*Report, error) {
		serr := &SourceError{Owner: owner, Source: source, Err: err}
		reconciliationsTotal.WithLabelValues("error").Inc()
		span.RecordError(serr)
		span.SetStatus(codes.Error, serr.Error())
		return nil, serr
	}

	apiListing, err := r.api.Tokens(ctx, owner)
	if err != nil {
		return fail(r.api.Name(), err)
	}

	ledgerListing, err := r.ledger.Tokens(ctx, owner)
	if err != nil {
		return fail(r.ledger.Name(), err)
	}

	report := Compare(owner, apiListing.Keys, ledgerListing.Keys)
	report.Pages = apiListing.Pages
	report.GeneratedAt = r.now().UTC()

	reconciliationsTotal.WithLabelValues(strings.ToLower(string(report.Status))).Inc()
	span.SetAttributes(
		attribute.String("nft.status", string(report.Status)),
		attribute.Int("nft.api_count", report.APICount),
		attribute.Int("nft.ledger_count", report.LedgerCount),
	)

	r.logger.Info("Reconciliation complete",
		zap.String("owner", owner),
		zap.String("status", string(report.Status)),
		zap.Int("api_count", report.APICount),
		zap.Int("ledger_count", report.LedgerCount),
		zap.Int("intersection", report.IntersectionCount),
		zap.Int("only_in_api", len(report.OnlyInAPI)),
		zap.Int("only_in_ledger", len(report.OnlyInLedger)),
		zap.Int("pages", report.Pages),
	)

	if report.HasDuplicates() {
		level := r.logger.Info
		if report.Same() {
			// Membership-based comparison can call duplicated input Same.
			level = r.logger.Warn
		}
		level("Duplicate tokens detected",
			zap.String("owner", owner),
			zap.String("status", string(report.Status)),
			zap.Strings("duplicate_api", report.DuplicateAPI),
			zap.Strings("duplicate_ledger", report.DuplicateLedger),
		)
	}

	return report, nil
}

// ReconcileShared coalesces concurrent reconciliations of the same owner
// into one. Callers must treat the returned report as read-only.
func (r *Reconciler) ReconcileShared(ctx context.Context, owner string) (*Report, error) {
	result, err, shared := r.group.Do(owner, func() (interface{}, error) {
		return r.Reconcile(ctx, owner)
	})
	if shared {
		r.logger.Debug("Reconciliation shared", zap.String("owner", owner))
	}
	if err != nil {
		return nil, err
	}
	return result.(*Report), nil
}

// ReconcileBatch reconciles owners with bounded parallelism. Results keep
// input order.
//
// By default the first failure aborts the batch: the error is returned
// together with the owners that completed successfully. With
// ContinueOnError every owner gets a result and failures are recorded in
// OwnerResult.Err.
func (r *Reconciler) ReconcileBatch(ctx context.Context, owners []string, opts BatchOptions) ([]OwnerResult, error) {
	limit := opts.Concurrency
	if limit < 1 {
		limit = 1
	}

	results := make([]OwnerResult, len(owners))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, owner := range owners {
		i, owner := i, owner
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}

			report, err := r.Reconcile(gctx, owner)
			if err != nil {
				if !opts.ContinueOnError {
					return err
				}
				r.logger.Warn("Owner reconciliation failed, continuing",
					zap.String("owner", owner),
					zap.Error(err),
				)
				results[i] = OwnerResult{Owner: owner, Err: err, Error: err.Error()}
				return nil
			}

			results[i] = OwnerResult{Owner: owner, Report: report}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return completed(results), err
	}
	if err := ctx.Err(); err != nil {
		return completed(results), err
	}

	return results, nil
}

// completed drops owners that were skipped or failed after an abort.
func completed(results []OwnerResult) []OwnerResult {
	out := make([]OwnerResult, 0, len(results))
	for _, res := range results {
		if res.Report != nil || res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}
