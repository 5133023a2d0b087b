package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"nft-reconciler/core/alchemy"

	"github.com/spf13/cobra"
)

const (
	demoOwner    = "0x04f5df957ce0405ba0264eca6130161cfaa12571"
	demoContract = "0x60e4d786628fea6478f785a6d7e704777c86a7c6"
)

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, logg, err := bootstrap()
	if err != nil {
		return err
	}
	defer logg.Sync()

	ctx := cmd.Context()
	api := newAPIClient(cfg, logg)
	out := cmd.OutOrStdout()

	firstPage, err := api.FetchPage(ctx, alchemy.PageRequest{Owner: demoOwner})
	if err != nil {
		return err
	}
	if err := printFirst(out, "First NFT for first page of getNFTsForOwner", firstPage.OwnedNFTs); err != nil {
		return err
	}

	secondPage, err := api.FetchPage(ctx, alchemy.PageRequest{Owner: demoOwner, PageKey: firstPage.PageKey})
	if err != nil {
		return err
	}
	if err := printFirst(out, "First NFT for second page of getNFTsForOwner", secondPage.OwnedNFTs); err != nil {
		return err
	}

	filtered, err := api.FetchPage(ctx, alchemy.PageRequest{Owner: demoOwner, ContractAddress: demoContract})
	if err != nil {
		return err
	}
	if err := printFirst(out, "First NFT for getNFTsForOwner filtered by collection", filtered.OwnedNFTs); err != nil {
		return err
	}

	collections, err := api.FetchCollections(ctx, demoOwner, cfg.Alchemy.MaxNFTsPerContract)
	if err != nil {
		return err
	}
	return printFirst(out, "First collection for getNFTsForOwnerByCollection", collections)
}

// printFirst writes a heading and the first element of items as JSON, or null
// when items is empty.
func printFirst[T any](w io.Writer, heading string, items []T) error {
	var first *T
	if len(items) > 0 {
		first = &items[0]
	}

	data, err := json.Marshal(first)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", heading, err)
	}
	_, err = fmt.Fprintf(w, "\n%s\n%s\n", heading, data)
	return err
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
