package service

import (
	"strings"

	"github.com/wimf/labelscan/internal/model"
)

// IngredientInsight is one glossary-backed entry in the "ingredients
// explained" breakdown.
type IngredientInsight struct {
	Name            string `json:"name"`
	Status          string `json:"status"` // good, caution, or neutral
	PlainEnglish    string `json:"plainEnglish"`
	WhyUsed         string `json:"whyUsed"`
	WhoMightCare    string `json:"whoMightCare"`
	UncertaintyNote string `json:"uncertaintyNote,omitempty"`
}

// NutritionHighlights echoes the parsed panel plus the derived 50g
// calorie estimate for display.
type NutritionHighlights struct {
	model.NutritionParsed
	CaloriesPer50G *float64 `json:"caloriesPer50g"`
}

// Suitability is the one-line overall verdict shown above the flags.
type Suitability struct {
	Verdict string   `json:"verdict"` // good, mixed, or not_recommended
	Reasons []string `json:"reasons"`
}

// Analysis is the combined result the embedding layer serializes and
// returns for one scan.
type Analysis struct {
	ProductName         *string              `json:"productName"`
	Ingredients         []string             `json:"ingredients"`
	Score               ScoreResult          `json:"score"`
	Halal               HalalResult          `json:"halal"`
	PersonalizedFlags   []FlagResult         `json:"personalizedFlags"`
	IngredientBreakdown []IngredientInsight  `json:"ingredientBreakdown"`
	NutritionHighlights *NutritionHighlights `json:"nutritionHighlights"`
	Suitability         Suitability          `json:"suitability"`
	Disclaimer          string               `json:"disclaimer"`
	Parsing             ParsingSummary       `json:"parsing"`
}

// ParsingSummary echoes the raw extraction and its confidences so the
// caller can show what the analysis was based on.
type ParsingSummary struct {
	ExtractedText model.OCRExtraction `json:"extractedText"`
	Confidences   model.Confidences   `json:"confidences"`
}

const analysisDisclaimer = "Estimates are heuristic and based only on label text. Not medical or dietary advice."

// cautionTags mark an ingredient as a processing or additive concern in
// the breakdown view.
var cautionTags = []string{
	TagAddedSugar, TagUltraProcessed, TagDye, TagTransFat,
	"preservative", "artificial_sweetener",
}

// Analyze runs the scorer, halal classifier, and flag evaluator over
// one parsed scan and assembles the full response. The scorer and
// classifier are independent; the flag evaluator consumes the halal
// verdict. Pure: identical inputs give identical output.
func Analyze(parsed model.ParsedData, prefs *model.UserPrefs, extracted model.OCRExtraction) Analysis {
	combined := strings.Join([]string{
		extracted.IngredientsText,
		extracted.NutritionText,
		extracted.FrontText,
	}, "\n")

	score := ScoreFromParsed(parsed.Ingredients, parsed.Nutrition)
	halal := ClassifyHalal(parsed.Ingredients, combined)
	flags := EvaluateFlags(parsed.Ingredients, parsed.Nutrition, prefs, &halal)

	return Analysis{
		ProductName:         parsed.ProductName,
		Ingredients:         parsed.Ingredients,
		Score:               score,
		Halal:               halal,
		PersonalizedFlags:   flags,
		IngredientBreakdown: ingredientBreakdown(parsed.Ingredients),
		NutritionHighlights: nutritionHighlights(parsed.Nutrition),
		Suitability:         suitabilityVerdict(score, flags),
		Disclaimer:          analysisDisclaimer,
		Parsing: ParsingSummary{
			ExtractedText: extracted,
			Confidences:   parsed.Confidences,
		},
	}
}

func ingredientBreakdown(ingredients []string) []IngredientInsight {
	insights := make([]IngredientInsight, 0, len(ingredients))
	for _, ingredient := range ingredients {
		entry := FindGlossaryMatch(ingredient)
		if entry == nil {
			insights = append(insights, IngredientInsight{
				Name:         ingredient,
				Status:       "neutral",
				PlainEnglish: "No glossary details available for this ingredient.",
				WhyUsed:      "Not documented.",
				WhoMightCare: "People seeking full ingredient transparency.",
			})
			continue
		}

		status := "good"
		for _, tag := range cautionTags {
			if entry.HasTag(tag) {
				status = "caution"
				break
			}
		}

		insight := IngredientInsight{
			Name:         ingredient,
			Status:       status,
			PlainEnglish: entry.PlainEnglish,
			WhyUsed:      entry.Purpose,
			WhoMightCare: entry.WhoMightCare,
		}
		if entry.HalalRisk == HalalRiskUnknown || entry.HasTag(TagUncertainSource) {
			insight.UncertaintyNote = "Sourcing can vary by manufacturer."
		}
		insights = append(insights, insight)
	}
	return insights
}

func nutritionHighlights(nutrition *model.NutritionParsed) *NutritionHighlights {
	if nutrition == nil {
		return nil
	}
	return &NutritionHighlights{
		NutritionParsed: *nutrition,
		CaloriesPer50G:  CaloriesPer50g(nutrition),
	}
}

func suitabilityVerdict(score ScoreResult, flags []FlagResult) Suitability {
	verdict := "good"
	var reasons []string

	for _, flag := range flags {
		switch flag.Status {
		case FlagStatusFail:
			verdict = "not_recommended"
			reasons = append(reasons, flag.Explanation)
		case FlagStatusWarn:
			if verdict == "good" {
				verdict = "mixed"
			}
			reasons = append(reasons, flag.Explanation)
		}
	}

	switch score.Category {
	case ScoreCategoryLower:
		verdict = "not_recommended"
		reasons = append(reasons, "Overall score is in the lowest band.")
	case ScoreCategoryModerate:
		if verdict == "good" {
			verdict = "mixed"
		}
	}

	return Suitability{Verdict: verdict, Reasons: reasons}
}
