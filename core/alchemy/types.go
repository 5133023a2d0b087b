package alchemy

import (
	"time"

	"nft-reconciler/core/token"
)

// Contract identifies the NFT contract.
type Contract struct {
	Address string `json:"address"`
}

// TokenID wraps the token id as returned by the API (usually 0x-prefixed hex).
type TokenID struct {
	TokenID string `json:"tokenId"`
}

// URI is a media or metadata location, raw and through a gateway.
type URI struct {
	Raw     string `json:"raw"`
	Gateway string `json:"gateway"`
}

// Metadata holds the subset of token metadata we surface.
type Metadata struct {
	Image string `json:"image"`
}

// Asset is a single NFT.
type Asset struct {
	Contract              Contract `json:"contract"`
	ID                    TokenID  `json:"id"`
	Title                 string   `json:"title"`
	Description           string   `json:"description"`
	TokenURI              URI      `json:"tokenUri"`
	Media                 []URI    `json:"media"`
	Metadata              Metadata `json:"metadata"`
	ExternalDomainViewURL string   `json:"externalDomainViewUrl,omitempty"`
	TimeLastUpdated       string   `json:"timeLastUpdated"`
}

// Key returns the token identity string of the asset.
func (a Asset) Key() string {
	return token.Key(a.Contract.Address, a.ID.TokenID)
}

// LastUpdated parses TimeLastUpdated.
func (a Asset) LastUpdated() (time.Time, error) {
	return time.Parse(time.RFC3339Nano, a.TimeLastUpdated)
}

// AssetPage is one page of the getNFTs listing.
// An empty PageKey marks the last page.
type AssetPage struct {
	OwnedNFTs  []Asset `json:"ownedNfts"`
	TotalCount int     `json:"totalCount"`
	PageKey    string  `json:"pageKey,omitempty"`
}

// HasMore reports whether another page follows.
func (p *AssetPage) HasMore() bool {
	return p.PageKey != ""
}

// Collection groups an owner's NFTs by contract.
type Collection struct {
	Contract Contract `json:"contract"`
	// Verified is true when the contract is verified on OpenSea.
	Verified bool    `json:"verified"`
	Name     string  `json:"name,omitempty"`
	NFTs     []Asset `json:"nfts"`
}

// CollectionResponse is the getNFTsByCollection body.
type CollectionResponse struct {
	Collections []Collection `json:"collections"`
}

// PageRequest selects one page of an owner's NFTs.
type PageRequest struct {
	// Owner is the account address. Required.
	Owner string
	// ContractAddress restricts the listing to one contract when set.
	ContractAddress string
	// PageKey continues a previous listing; empty for the first page.
	PageKey string
}
