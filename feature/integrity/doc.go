// Package integrity provides health checks for the reconciler's backends.
//
// # Checks Provided
//
//   - Ledger: Validates that the ledger table holds owner_address, contract_address
//     and token_id at positions 0 to 2, since rows are read positionally.
//   - Storage: Checks that the report bucket exists and counts exported reports.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/ledger : Runs the ledger schema check.
//   - GET /integrity/storage : Runs the storage check (supports ?fix=true).
package integrity
