package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the active configuration snapshot",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active snapshot version and table summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := store.Current()

		fmt.Printf("Snapshot version: %s\n", snap.Version)
		fmt.Printf("Loaded at:        %s\n", snap.LoadedAt.Format("2006-01-02 15:04:05 MST"))
		fmt.Printf("Closing fees:     %d\n", len(snap.ClosingFees))
		fmt.Printf("PMI tiers:        %d\n", snap.Conventional.PMIAnnualRate.Len())
		fmt.Printf("Title tiers:      %d owner / %d lender\n",
			snap.Title.OwnerRate.Len(), snap.Title.LenderSimultaneousRate.Len())
		fmt.Printf("FHA upfront MIP:  %.2f%%\n", snap.FHA.UpfrontPercent)
		fmt.Printf("USDA fees:        %.2f%% upfront / %.2f%% annual\n",
			snap.USDA.UpfrontPercent, snap.USDA.AnnualPercent)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
