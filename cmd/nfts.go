package cmd

import (
	"nft-reconciler/feature/nfts"

	"github.com/spf13/cobra"
)

var (
	nftsContract string
	nftsPageKey  string
	nftsAll      bool
	nftsMaxPages int
)

// nftsCmd lists the NFTs of an owner.
var nftsCmd = &cobra.Command{
	Use:   "nfts <owner>",
	Short: "List the NFTs owned by an address",
	Long: `Fetches one page of the owner's NFTs, or every page with --all.

Examples:
  nfts 0x04f5df957ce0405ba0264eca6130161cfaa12571
  nfts 0x04f5... --contract 0x60e4d786628fea6478f785a6d7e704777c86a7c6
  nfts 0x04f5... --all --max-pages 20`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		if cmd.Flags().Changed("max-pages") {
			cfg.Reconcile.MaxPages = nftsMaxPages
		}

		svc := nfts.NewService(newAPIClient(cfg, logg), nil, nil, cfg.Reconcile, logg)
		if nftsAll {
			all, err := svc.All(cmd.Context(), args[0], nftsContract)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), all)
		}

		page, err := svc.Page(cmd.Context(), args[0], nftsContract, nftsPageKey)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), page)
	},
}

// collectionsCmd lists the NFTs of an owner grouped by contract.
var collectionsCmd = &cobra.Command{
	Use:   "collections <owner>",
	Short: "List the owner's NFTs grouped by collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		maxPerContract, _ := cmd.Flags().GetInt("max")
		if !cmd.Flags().Changed("max") {
			maxPerContract = cfg.Alchemy.MaxNFTsPerContract
		}

		svc := nfts.NewService(newAPIClient(cfg, logg), nil, nil, cfg.Reconcile, logg)
		collections, err := svc.Collections(cmd.Context(), args[0], maxPerContract)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), collections)
	},
}

func init() {
	RootCmd.AddCommand(nftsCmd, collectionsCmd)

	nftsCmd.Flags().StringVar(&nftsContract, "contract", "", "Only list NFTs of this contract")
	nftsCmd.Flags().StringVar(&nftsPageKey, "page-key", "", "Continue from a previous page")
	nftsCmd.Flags().BoolVar(&nftsAll, "all", false, "Follow page keys until the listing is exhausted")
	nftsCmd.Flags().IntVar(&nftsMaxPages, "max-pages", 0, "Page ceiling for --all (defaults to reconcile.max_pages)")

	collectionsCmd.Flags().Int("max", 10, "Maximum NFTs returned per contract")
}
