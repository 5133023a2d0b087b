// Package ledger reads previously indexed NFT ownership rows from the relational ledger.
//
// The ledger is the ground truth the NFT API listing is compared against. Each
// row is positional: field 0 is the owner address, field 1 the contract address
// and field 2 the token id. Fields 1 and 2 must be non-NULL; they form the token
// identity via token.Key.
//
// # Queries
//
// The owner address is always a bound parameter:
//
//	SELECT * FROM `eth_nftOwners` WHERE owner_address = ?
//
// Every attempt runs under its own timeout. An attempt that gets no response
// (deadline exceeded or a bad connection) is retried QueryRetries times, once
// by default. Any other failure is returned immediately as a *QueryError.
//
// # Usage
//
//	reader := ledger.NewReader(db, ledger.OptionsFromConfig(cfg.Database), logger)
//	rows, err := reader.OwnerRows(ctx, owner)
package ledger
