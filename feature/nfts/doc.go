// Package nfts exposes the NFT API listings and the ledger reconciliation over HTTP.
//
// # Routes
//
//   - GET  /nfts/:owner              one page (contract, pageKey query params)
//   - GET  /nfts/:owner/all          every page, bounded by reconcile.max_pages
//   - GET  /nfts/:owner/collections  grouped by contract (max query param)
//   - GET  /reconcile/:owner         reconcile one owner (export=true uploads the report)
//   - POST /reconcile                reconcile a batch of owners
//   - GET  /reconcile/:owner/reports exported reports of an owner
//
// Upstream 4xx responses surface as 502 with the upstream status in the body.
// Reconciliation routes answer 503 when no ledger database is connected.
package nfts
