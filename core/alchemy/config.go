package alchemy

// Config holds configuration for the NFT API client.
type Config struct {
	// APIKey is embedded in the request path.
	APIKey string `mapstructure:"api_key" default:"demo"`
	// BaseURL is the network specific API host.
	BaseURL string `mapstructure:"base_url" default:"https://eth-mainnet.g.alchemy.com"`
	// TimeoutSeconds bounds every request, including reading the body.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// MaxNFTsPerContract is the default cap for collection listings.
	MaxNFTsPerContract int `mapstructure:"max_nfts_per_contract" default:"10"`
}
