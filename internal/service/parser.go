package service

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/wimf/labelscan/internal/model"
)

var (
	ingredientsLabelPattern = regexp.MustCompile(`(?i)ingredients?\s*[:\-]\s*`)
	ingredientsLinePattern  = regexp.MustCompile(`(?i)ingredients?.*`)
	whitespacePattern       = regexp.MustCompile(`\s+`)
	ingredientSplitPattern  = regexp.MustCompile(`[,;]+`)
	trailingPeriodPattern   = regexp.MustCompile(`[.]+$`)

	caloriesPattern       = regexp.MustCompile(`(?i)calories?\s*[:\-]?\s*(\d{1,4})`)
	servingSizePattern    = regexp.MustCompile(`(?i)serving\s*size\s*[:\-]?\s*(\d+(?:\.\d+)?)\s*g`)
	caloriesPer100Pattern = regexp.MustCompile(`(?i)calories\s*per\s*100\s*g\s*[:\-]?\s*(\d{1,4})`)
	proteinPattern        = regexp.MustCompile(`(?i)protein\s*[:\-]?\s*(\d+(?:\.\d+)?)\s*g`)
	carbsPattern          = regexp.MustCompile(`(?i)(total\s*)?carb(?:ohydrate)?s?\s*[:\-]?\s*(\d+(?:\.\d+)?)\s*g`)
	sugarPattern          = regexp.MustCompile(`(?i)sugars?\s*[:\-]?\s*(\d+(?:\.\d+)?)\s*g`)
	addedSugarPattern     = regexp.MustCompile(`(?i)added\s*sugars?\s*[:\-]?\s*(\d+(?:\.\d+)?)\s*g`)
	sodiumMgPattern       = regexp.MustCompile(`(?i)sodium\s*[:\-]?\s*(\d+(?:\.\d+)?)\s*mg`)
	sodiumGPattern        = regexp.MustCompile(`(?i)sodium\s*[:\-]?\s*(\d+(?:\.\d+)?)\s*g`)
	fiberPattern          = regexp.MustCompile(`(?i)fiber\s*[:\-]?\s*(\d+(?:\.\d+)?)\s*g`)
)

// Tokens that mark the end of an ingredient list on most US labels.
var ingredientStopTokens = []string{"nutrition facts", "contains", "allergens"}

// ParseIngredients pulls an ordered ingredient list out of free-form
// label text. Garbage in gives an empty list out, never an error.
func ParseIngredients(text string) []string {
	out := []string{}
	if text == "" {
		return out
	}

	section := text
	if loc := ingredientsLabelPattern.FindStringIndex(text); loc != nil {
		section = text[loc[1]:]
	} else if line := ingredientsLinePattern.FindString(text); line != "" {
		section = line
	}

	for _, token := range ingredientStopTokens {
		if idx := strings.Index(strings.ToLower(section), token); idx != -1 {
			section = section[:idx]
		}
	}

	// Parenthesized sub-ingredients are promoted to list items.
	cleaned := normalizeSpace(strings.NewReplacer("(", ",", ")", ",").Replace(section))
	if cleaned == "" {
		return out
	}

	for _, part := range ingredientSplitPattern.Split(cleaned, -1) {
		item := trailingPeriodPattern.ReplaceAllString(strings.TrimSpace(part), "")
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// ParseNutrition matches each panel field independently and returns nil
// only when no field at all was detected. Sodium printed in grams is
// converted to milligrams.
func ParseNutrition(text string) *model.NutritionParsed {
	if text == "" {
		return nil
	}

	nutrition := &model.NutritionParsed{
		Calories:        matchAmount(caloriesPattern, text, 1),
		ServingSizeG:    matchAmount(servingSizePattern, text, 1),
		CaloriesPer100G: matchAmount(caloriesPer100Pattern, text, 1),
		ProteinG:        matchAmount(proteinPattern, text, 1),
		CarbsG:          matchAmount(carbsPattern, text, 2),
		SugarG:          matchAmount(sugarPattern, text, 1),
		AddedSugarG:     matchAmount(addedSugarPattern, text, 1),
		SodiumMg:        matchSodiumMg(text),
		FiberG:          matchAmount(fiberPattern, text, 1),
	}

	if nutrition.DetectedFields() == 0 {
		return nil
	}
	return nutrition
}

// ParseProductName picks the most plausible product name from front-label
// text: the first non-empty line that is not panel boilerplate.
func ParseProductName(frontText string) *string {
	if frontText == "" {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(frontText, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil
	}
	for _, line := range lines {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "nutrition") && !strings.Contains(lower, "ingredients") {
			return &line
		}
	}
	return &lines[0]
}

// ParseExtraction runs all three extractors over the raw OCR/vision
// blobs and attaches per-extraction confidences.
func ParseExtraction(ingredientsText, nutritionText, frontText string) model.ParsedData {
	ingredients := ParseIngredients(ingredientsText)
	nutrition := ParseNutrition(nutritionText)
	productName := ParseProductName(frontText)

	ingredientsConfidence := 0.2
	if len(ingredients) > 0 {
		if strings.Contains(strings.ToLower(ingredientsText), "ingredient") {
			ingredientsConfidence = 0.85
		} else {
			ingredientsConfidence = 0.6
		}
	}

	nutritionConfidence := math.Min(1, float64(nutrition.DetectedFields())/7)

	nameConfidence := 0.1
	if productName != nil {
		if strings.Contains(frontText, "\n") {
			nameConfidence = 0.6
		} else {
			nameConfidence = 0.4
		}
	}

	return model.ParsedData{
		ProductName: productName,
		Ingredients: ingredients,
		Nutrition:   nutrition,
		Confidences: model.Confidences{
			IngredientsConfidence: ingredientsConfidence,
			NutritionConfidence:   nutritionConfidence,
			NameConfidence:        nameConfidence,
		},
	}
}

// CaloriesPer50g estimates calories for a fixed 50g portion, preferring
// an explicit per-100g figure over a serving-size derivation. Rounded
// to one decimal; nil when neither basis was detected.
func CaloriesPer50g(nutrition *model.NutritionParsed) *float64 {
	if nutrition == nil {
		return nil
	}
	if nutrition.CaloriesPer100G != nil {
		v := roundTo1(*nutrition.CaloriesPer100G * 0.5)
		return &v
	}
	if nutrition.Calories != nil && nutrition.ServingSizeG != nil && *nutrition.ServingSizeG > 0 {
		v := roundTo1(*nutrition.Calories * 50 / *nutrition.ServingSizeG)
		return &v
	}
	return nil
}

// IsParsedEmpty is the collaborator's fallback predicate: when true, an
// embedding server may retry with vision inference instead of OCR text.
func IsParsedEmpty(parsed model.ParsedData) bool {
	return len(parsed.Ingredients) == 0 && parsed.Nutrition == nil && parsed.ProductName == nil
}

func matchAmount(pattern *regexp.Regexp, text string, group int) *float64 {
	m := pattern.FindStringSubmatch(text)
	if m == nil || m[group] == "" {
		return nil
	}
	v, err := strconv.ParseFloat(m[group], 64)
	if err != nil {
		return nil
	}
	return &v
}

func matchSodiumMg(text string) *float64 {
	if v := matchAmount(sodiumMgPattern, text, 1); v != nil {
		return v
	}
	if v := matchAmount(sodiumGPattern, text, 1); v != nil {
		mg := *v * 1000
		return &mg
	}
	return nil
}

func normalizeSpace(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
