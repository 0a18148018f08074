package labelscan

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wimf/labelscan/internal/service"
)

var scoreJSON bool

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a product's healthfulness from label text",
	RunE: func(cmd *cobra.Command, args []string) error {
		extracted, err := readExtraction(cmd)
		if err != nil {
			return err
		}

		parsed := service.ParseExtraction(extracted.IngredientsText, extracted.NutritionText, extracted.FrontText)
		result := service.ScoreFromParsed(parsed.Ingredients, parsed.Nutrition)

		if scoreJSON {
			return printJSON(cmd.OutOrStdout(), result)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Score: %d (%s, model %s)\n", result.Value, result.Category, result.ModelVersion)
		for _, item := range result.Explanations {
			sign := "+"
			if item.Direction == "down" {
				sign = ""
			}
			fmt.Fprintf(out, "  %s%d %s: %s\n", sign, item.Points, item.Label, item.Reason)
		}
		return nil
	},
}

func init() {
	addLabelTextFlags(scoreCmd)
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Output machine-readable JSON")
	rootCmd.AddCommand(scoreCmd)
}
