package labelscan

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/wimf/labelscan/internal/model"
	"github.com/wimf/labelscan/internal/service"
)

var (
	ingredientsFile string
	nutritionFile   string
	frontFile       string
	ingredientsText string
	nutritionText   string
	frontText       string
	analyzeJSON     bool
)

// scanRecord wraps the analysis with the identifier the embedding layer
// would persist it under. The analysis itself stays deterministic.
type scanRecord struct {
	ScanID string `json:"scanId"`
	service.Analysis
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Parse, score, and flag a product from label text",
	RunE: func(cmd *cobra.Command, args []string) error {
		extracted, err := readExtraction(cmd)
		if err != nil {
			return err
		}
		prefs, err := loadPrefs()
		if err != nil {
			return err
		}

		parsed := service.ParseExtraction(extracted.IngredientsText, extracted.NutritionText, extracted.FrontText)
		analysis := service.Analyze(parsed, prefs, extracted)
		record := scanRecord{ScanID: uuid.NewString(), Analysis: analysis}

		if analyzeJSON {
			return printJSON(cmd.OutOrStdout(), record)
		}
		printAnalysis(cmd, record)
		return nil
	},
}

func readExtraction(cmd *cobra.Command) (model.OCRExtraction, error) {
	stdin := cmd.InOrStdin()
	ingredients, err := resolveLabelText(ingredientsText, ingredientsFile, stdin)
	if err != nil {
		return model.OCRExtraction{}, err
	}
	nutrition, err := resolveLabelText(nutritionText, nutritionFile, stdin)
	if err != nil {
		return model.OCRExtraction{}, err
	}
	front, err := resolveLabelText(frontText, frontFile, stdin)
	if err != nil {
		return model.OCRExtraction{}, err
	}
	return model.OCRExtraction{
		IngredientsText: ingredients,
		NutritionText:   nutrition,
		FrontText:       front,
	}, nil
}

func printAnalysis(cmd *cobra.Command, record scanRecord) {
	out := cmd.OutOrStdout()

	name := "Unknown product"
	if record.ProductName != nil {
		name = *record.ProductName
	}
	fmt.Fprintf(out, "Product: %s\n", name)
	fmt.Fprintf(out, "Score: %d (%s, model %s)\n", record.Score.Value, record.Score.Category, record.Score.ModelVersion)
	fmt.Fprintf(out, "Halal: %s (confidence %.2f) - %s\n", record.Halal.Status, record.Halal.Confidence, record.Halal.Explanation)
	fmt.Fprintf(out, "Suitability: %s\n", record.Suitability.Verdict)
	for _, reason := range record.Suitability.Reasons {
		fmt.Fprintf(out, "  - %s\n", reason)
	}

	if len(record.PersonalizedFlags) > 0 {
		fmt.Fprintln(out, "Flags:")
		for _, flag := range record.PersonalizedFlags {
			fmt.Fprintf(out, "  [%s] %s: %s\n", flag.Status, flag.Flag, flag.Explanation)
		}
	}

	if len(record.Score.Explanations) > 0 {
		fmt.Fprintln(out, "Why this score:")
		for _, item := range record.Score.Explanations {
			sign := "+"
			if item.Direction == "down" {
				sign = ""
			}
			fmt.Fprintf(out, "  %s%d %s: %s\n", sign, item.Points, item.Label, item.Reason)
		}
	}

	fmt.Fprintln(out, record.Disclaimer)
}

// addLabelTextFlags binds the shared label-text inputs to a command.
func addLabelTextFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ingredientsFile, "ingredients-file", "", "File with OCR text of the ingredients label (- for stdin)")
	cmd.Flags().StringVar(&nutritionFile, "nutrition-file", "", "File with OCR text of the nutrition panel")
	cmd.Flags().StringVar(&frontFile, "front-file", "", "File with OCR text of the front label")
	cmd.Flags().StringVar(&ingredientsText, "ingredients-text", "", "Inline ingredients label text")
	cmd.Flags().StringVar(&nutritionText, "nutrition-text", "", "Inline nutrition panel text")
	cmd.Flags().StringVar(&frontText, "front-text", "", "Inline front label text")
}

func init() {
	addLabelTextFlags(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output machine-readable JSON")
	rootCmd.AddCommand(analyzeCmd)
}
