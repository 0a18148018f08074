package labelscan

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wimf/labelscan/internal/service"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestAnalyzeJSONRoundTrip(t *testing.T) {
	ingredientsPath := writeTempFile(t, "ingredients.txt",
		"Ingredients: Oats, Sugar, Natural Flavors.")
	nutritionPath := writeTempFile(t, "nutrition.txt",
		"Serving Size 40g Calories 180 Protein 6g Total Carbohydrate 24g Sugars 12g Added Sugars 8g Sodium 220mg")
	prefsFile := writeTempFile(t, "prefs.json",
		`{"userId":"u1","halalCheckEnabled":true,"lowSodiumMgLimit":100}`)

	out := runCLI(t, "analyze",
		"--ingredients-file", ingredientsPath,
		"--nutrition-file", nutritionPath,
		"--front-text", "Organic Granola\nNet Wt 12oz",
		"--prefs", prefsFile,
		"--json")

	var record struct {
		ScanID string `json:"scanId"`
		service.Analysis
	}
	if err := json.Unmarshal([]byte(out), &record); err != nil {
		t.Fatalf("decode analyze output: %v\n%s", err, out)
	}
	if record.ScanID == "" {
		t.Fatalf("expected a scan id")
	}
	if record.ProductName == nil || *record.ProductName != "Organic Granola" {
		t.Fatalf("expected product name, got %v", record.ProductName)
	}
	if record.Score.Value <= 0 || record.Score.Value > 100 {
		t.Fatalf("score out of range: %d", record.Score.Value)
	}
	if record.Halal.Status != service.HalalStatusUnclear {
		t.Fatalf("expected unclear halal status, got %s", record.Halal.Status)
	}

	var sodium, halal *service.FlagResult
	for i := range record.PersonalizedFlags {
		switch record.PersonalizedFlags[i].Flag {
		case "Low sodium":
			sodium = &record.PersonalizedFlags[i]
		case "Halal check":
			halal = &record.PersonalizedFlags[i]
		}
	}
	if sodium == nil || sodium.Status != service.FlagStatusFail {
		t.Fatalf("sodium 220 vs limit 100 should fail: %+v", record.PersonalizedFlags)
	}
	if halal == nil {
		t.Fatalf("halal check enabled in prefs must produce a flag: %+v", record.PersonalizedFlags)
	}
	if record.Suitability.Verdict != "not_recommended" {
		t.Fatalf("failed flag should sink the verdict: %+v", record.Suitability)
	}
}

func TestAnalyzeHumanOutput(t *testing.T) {
	prefsFile := writeTempFile(t, "prefs.json", `{"userId":"u1"}`)
	out := runCLI(t, "analyze",
		"--ingredients-text", "Ingredients: Oats, Almonds, Sea Salt",
		"--nutrition-text", "Calories 80 Protein 15g Sodium 50mg Fiber 5g Sugars 2g",
		"--prefs", prefsFile)

	for _, want := range []string{"Product:", "Score: 75", "Halal:", "Suitability:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func runCLIExpectingError(t *testing.T, args ...string) {
	t.Helper()
	ingredientsFile, nutritionFile, frontFile = "", "", ""
	ingredientsText, nutritionText, frontText = "", "", ""
	prefsPath = ""
	analyzeJSON, parseJSON, scoreJSON, glossaryJSON = false, false, false, false

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected error for %v, got output:\n%s", args, buf.String())
	}
}

func TestAnalyzeMissingIngredientsFileFails(t *testing.T) {
	runCLIExpectingError(t, "analyze",
		"--ingredients-file", filepath.Join(t.TempDir(), "missing.txt"))
}

func TestAnalyzeExplicitMissingPrefsFails(t *testing.T) {
	runCLIExpectingError(t, "analyze",
		"--ingredients-text", "Ingredients: Oats",
		"--prefs", filepath.Join(t.TempDir(), "missing.json"))
}

func TestParseReadsIngredientsFromStdin(t *testing.T) {
	ingredientsFile, nutritionFile, frontFile = "", "", ""
	ingredientsText, nutritionText, frontText = "", "", ""
	prefsPath = ""
	analyzeJSON, parseJSON, scoreJSON, glossaryJSON = false, false, false, false

	buf := &bytes.Buffer{}
	rootCmd.SetIn(strings.NewReader("Ingredients: Water, Sugar"))
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"parse", "--ingredients-file", "-"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("parse from stdin: %v", err)
	}
	if !strings.Contains(buf.String(), "Water; Sugar") {
		t.Fatalf("expected stdin ingredients in output:\n%s", buf.String())
	}
}

func TestParseJSONCommand(t *testing.T) {
	out := runCLI(t, "parse",
		"--ingredients-text", "Ingredients: Water, Sugar, Salt",
		"--nutrition-text", "Calories 100 Sodium 0.5g",
		"--json")

	var parsed struct {
		Ingredients []string `json:"ingredients"`
		Nutrition   *struct {
			Calories *float64 `json:"calories"`
			SodiumMg *float64 `json:"sodium_mg"`
		} `json:"nutrition"`
	}
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("decode parse output: %v\n%s", err, out)
	}
	if len(parsed.Ingredients) != 3 {
		t.Fatalf("expected 3 ingredients, got %v", parsed.Ingredients)
	}
	if parsed.Nutrition == nil || parsed.Nutrition.SodiumMg == nil || *parsed.Nutrition.SodiumMg != 500 {
		t.Fatalf("expected sodium 500mg, got %+v", parsed.Nutrition)
	}
}

func TestScoreJSONCommand(t *testing.T) {
	out := runCLI(t, "score",
		"--ingredients-text", "Ingredients: Apple",
		"--nutrition-text", "Calories 52 Protein 0.3g Sugars 10.4g Sodium 1mg Fiber 2.4g",
		"--json")

	var result service.ScoreResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode score output: %v\n%s", err, out)
	}
	if result.Value != 100 {
		t.Fatalf("expected whole-fruit score 100, got %d", result.Value)
	}
	if result.Category != service.ScoreCategoryGood {
		t.Fatalf("expected Good, got %s", result.Category)
	}
}
