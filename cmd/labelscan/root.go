package labelscan

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var prefsPath string

var rootCmd = &cobra.Command{
	Use:   "labelscan",
	Short: "labelscan analyzes nutrition-label text from your terminal",
	Long:  "labelscan parses OCR or vision text from food labels into structured nutrition facts, scores healthfulness, classifies halal status, and evaluates personalized dietary flags.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&prefsPath, "prefs", "", "Path to user preferences JSON")
}
