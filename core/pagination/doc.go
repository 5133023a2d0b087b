// Package pagination follows opaque continuation cursors until an upstream
// stops returning them.
//
// Cursor based APIs (such as the Alchemy getNFTs endpoint) hand back a pageKey
// with every page except the last. A Pager wraps a single-page fetch function
// and exposes the pages as a lazy, finite, non-restartable sequence:
//
//	p := pagination.New(fetch, pagination.Config{MaxPages: 1000})
//	for !p.Done() {
//	    items, err := p.Next(ctx)
//	    ...
//	}
//
// Drain collects every page in cursor order. A page ceiling guards against an
// upstream that never omits the cursor; exceeding it yields an *OverrunError.
package pagination
