package ledger

import "nft-reconciler/core/token"

// DefaultTable is the ledger table name used when none is configured.
const DefaultTable = "eth_nftOwners"

// OwnerRecord describes the expected ledger layout. Field order matters:
// the reader addresses columns by position.
type OwnerRecord struct {
	OwnerAddress    string `gorm:"column:owner_address"`
	ContractAddress string `gorm:"column:contract_address"`
	TokenID         string `gorm:"column:token_id"`
}

// TableName implements gorm's Tabler.
func (OwnerRecord) TableName() string {
	return DefaultTable
}

// Row is one ownership row read positionally from the ledger.
type Row struct {
	OwnerAddress    string
	ContractAddress string
	TokenID         string
}

// Key returns the token identity string of the row.
func (r Row) Key() string {
	return token.Key(r.ContractAddress, r.TokenID)
}
