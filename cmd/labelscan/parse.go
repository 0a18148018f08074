package labelscan

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wimf/labelscan/internal/service"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Extract structured data from label text without scoring",
	RunE: func(cmd *cobra.Command, args []string) error {
		extracted, err := readExtraction(cmd)
		if err != nil {
			return err
		}

		parsed := service.ParseExtraction(extracted.IngredientsText, extracted.NutritionText, extracted.FrontText)

		if parseJSON {
			return printJSON(cmd.OutOrStdout(), parsed)
		}

		out := cmd.OutOrStdout()
		name := "(not detected)"
		if parsed.ProductName != nil {
			name = *parsed.ProductName
		}
		fmt.Fprintf(out, "Product: %s (confidence %.2f)\n", name, parsed.Confidences.NameConfidence)
		fmt.Fprintf(out, "Ingredients (%d, confidence %.2f): %s\n",
			len(parsed.Ingredients), parsed.Confidences.IngredientsConfidence,
			strings.Join(parsed.Ingredients, "; "))
		if parsed.Nutrition == nil {
			fmt.Fprintf(out, "Nutrition: not detected\n")
			return nil
		}
		fmt.Fprintf(out, "Nutrition (%d fields, confidence %.2f):\n",
			parsed.Nutrition.DetectedFields(), parsed.Confidences.NutritionConfidence)
		printNutritionLine(cmd, "Calories", parsed.Nutrition.Calories, "")
		printNutritionLine(cmd, "Serving size", parsed.Nutrition.ServingSizeG, "g")
		printNutritionLine(cmd, "Calories per 100g", parsed.Nutrition.CaloriesPer100G, "")
		printNutritionLine(cmd, "Protein", parsed.Nutrition.ProteinG, "g")
		printNutritionLine(cmd, "Carbs", parsed.Nutrition.CarbsG, "g")
		printNutritionLine(cmd, "Sugar", parsed.Nutrition.SugarG, "g")
		printNutritionLine(cmd, "Added sugar", parsed.Nutrition.AddedSugarG, "g")
		printNutritionLine(cmd, "Sodium", parsed.Nutrition.SodiumMg, "mg")
		printNutritionLine(cmd, "Fiber", parsed.Nutrition.FiberG, "g")
		printNutritionLine(cmd, "Approx calories per 50g", service.CaloriesPer50g(parsed.Nutrition), "")
		return nil
	},
}

func printNutritionLine(cmd *cobra.Command, label string, value *float64, unit string) {
	if value == nil {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  %s: %g%s\n", label, *value, unit)
}

func init() {
	addLabelTextFlags(parseCmd)
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Output machine-readable JSON")
	rootCmd.AddCommand(parseCmd)
}
