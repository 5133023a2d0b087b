// Package reconcile cross-checks the tokens an NFT indexing API reports for
// an owner against the rows a relational ledger holds for the same owner.
//
// # Architecture
//
// The package consists of three main components:
//
// 1. Sources: an APISource drains every page of the owner's asset listing and
// a LedgerSource reads the owner's ledger rows. Both reduce their input to
// token identity strings built by core/token.
//
// 2. Engine: Compare builds membership sets over both lists and reports the
// intersection count plus the entries found only on one side. The verdict is
// Same when the intersection, the API list and the ledger list all have the
// same length.
//
// 3. Reconciler: runs the sources for one owner, for a batch of owners with
// bounded parallelism, or coalesced across concurrent callers. An Exporter
// can upload the resulting reports to object storage.
//
// # Usage Example
//
//	api := reconcile.NewAPISource(alchemyClient, pagination.Config{MaxPages: 1000})
//	ldg := reconcile.NewLedgerSource(ledgerReader)
//	r := reconcile.New(api, ldg, logger)
//
//	report, err := r.Reconcile(ctx, owner)
//
//	results, err := r.ReconcileBatch(ctx, owners, reconcile.BatchOptions{
//	    ContinueOnError: true,
//	    Concurrency:     4,
//	})
//
// Duplicate keys are compared by plain membership. They are listed in the
// report so a Same verdict over duplicated input can be spotted.
package reconcile
