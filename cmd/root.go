package cmd

import (
	"fmt"
	"os"

	"nft-reconciler/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command. Without a subcommand it runs the demo.
var RootCmd = &cobra.Command{
	Use:   "nft-reconciler",
	Short: "NFT ownership reconciler",
	Long: `nft-reconciler lists the NFTs an account owns through the Alchemy NFT API
and reconciles them against the ownership ledger database.

Running it without a subcommand prints a short demonstration against a fixed owner.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDemo,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the debug preset gives ISO8601 timestamps for CLI users
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
