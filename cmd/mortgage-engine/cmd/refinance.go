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

var refinanceCmd = &cobra.Command{
	Use:   "refinance <scenario.yaml>",
	Short: "Calculate the full breakdown and analysis for a refinance scenario",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validOutputFormat(); err != nil {
			return err
		}

		sc, err := scenario.LoadRefinanceScenario(args[0])
		if err != nil {
			return err
		}

		calc := engine.NewCalculator(logger)
		result, err := calc.Refinance(store.Current(), sc)
		if err != nil {
			logger.Error("refinance calculation failed",
				zap.String("op", "cmd.refinance"),
				zap.Error(err),
			)
			return err
		}

		if outputFormat == constants.OutputFormatJSON {
			return output.JSON(os.Stdout, result)
		}
		output.PrettyRefinance(os.Stdout, result)
		return nil
	},
}
