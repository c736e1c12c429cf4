package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/homelend/mortgage-engine/internal/engine"
	"github.com/homelend/mortgage-engine/pkg/constants"
	"github.com/homelend/mortgage-engine/pkg/output"
	"github.com/homelend/mortgage-engine/pkg/scenario"
)

var purchaseCmd = &cobra.Command{
	Use:   "purchase <scenario.yaml>",
	Short: "Calculate the full breakdown for a purchase scenario",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validOutputFormat(); err != nil {
			return err
		}

		sc, err := scenario.LoadPurchaseScenario(args[0])
		if err != nil {
			return err
		}

		calc := engine.NewCalculator(logger)
		result, err := calc.Purchase(store.Current(), sc)
		if err != nil {
			logger.Error("purchase calculation failed",
				zap.String("op", "cmd.purchase"),
				zap.Error(err),
			)
			return err
		}

		if outputFormat == constants.OutputFormatJSON {
			return output.JSON(os.Stdout, result)
		}
		output.PrettyPurchase(os.Stdout, result)
		return nil
	},
}
