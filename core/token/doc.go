// Package token defines the derived identity used to compare NFTs across sources.
//
// An NFT is identified by its (contract address, token id) pair. Both the API
// listing and the ledger rows are reduced to the same string form through Key,
// so reconciliation never compares keys built in two different ways.
//
// # Usage
//
//	k := token.Key("0x60e4d786628fea6478f785a6d7e704777c86a7c6", "0x29c6")
package token
