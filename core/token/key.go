package token

// Separator joins the contract address and the token id in a derived key.
const Separator = "|"

// Key returns the token identity string for a contract address and token id.
// Inputs are used verbatim: no case folding or hex normalisation is applied.
func Key(contractAddress, tokenID string) string {
	return contractAddress + Separator + tokenID
}

