// Package alchemy is a thin client for the Alchemy NFT API.
//
// It covers the two owner-scoped endpoints used for reconciliation:
//
//   - getNFTs: paginated listing of the NFTs held by an owner, optionally
//     restricted to one contract. Every page but the last carries a pageKey.
//   - getNFTsByCollection: the owner's NFTs grouped by contract. This endpoint
//     is not paginated.
//
// # Transport
//
// Requests go through a shared *http.Client with a fixed timeout (10 seconds by
// default) and a keep-alive transport, so consecutive page fetches reuse the
// same connection. The API key is part of the request path.
//
// # Errors
//
// Failures are returned as *NetworkError (transport failures and timeouts) or
// *APIError (non-2xx status or a body that is not valid JSON). Nothing is
// retried here; callers decide what a failure means.
//
// # Usage
//
//	client := alchemy.NewClient(cfg.Alchemy, logger)
//	page, err := client.FetchPage(ctx, alchemy.PageRequest{Owner: owner})
//
//	pager := alchemy.NewPager(client, alchemy.PageRequest{Owner: owner}, pagination.Config{MaxPages: 100})
//	assets, err := pagination.Drain(ctx, pager)
package alchemy
