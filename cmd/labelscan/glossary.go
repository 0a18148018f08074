package labelscan

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wimf/labelscan/internal/service"
)

var glossaryJSON bool

var glossaryCmd = &cobra.Command{
	Use:   "glossary <ingredient>",
	Short: "Look up an ingredient in the built-in glossary",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ingredient := strings.Join(args, " ")
		entry := service.FindGlossaryMatch(ingredient)
		if entry == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "No glossary match for %q\n", ingredient)
			return nil
		}
		if glossaryJSON {
			return printJSON(cmd.OutOrStdout(), entry)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Matched: %s\n", entry.Name)
		fmt.Fprintf(out, "What it is: %s\n", entry.PlainEnglish)
		fmt.Fprintf(out, "Why used: %s\n", entry.Purpose)
		fmt.Fprintf(out, "Who might care: %s\n", entry.WhoMightCare)
		fmt.Fprintf(out, "Halal risk: %s\n", entry.HalalRisk)
		if len(entry.Tags) > 0 {
			fmt.Fprintf(out, "Tags: %s\n", strings.Join(entry.Tags, ", "))
		}
		return nil
	},
}

func init() {
	glossaryCmd.Flags().BoolVar(&glossaryJSON, "json", false, "Output machine-readable JSON")
	rootCmd.AddCommand(glossaryCmd)
}
