package service

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/wimf/labelscan/internal/model"
)

// ScoreCategory buckets the 0-100 score into three display tiers.
type ScoreCategory string

const (
	ScoreCategoryGood     ScoreCategory = "Good"
	ScoreCategoryModerate ScoreCategory = "Moderate"
	ScoreCategoryLower    ScoreCategory = "Lower"
)

// ScoreExplanation is one signed model contribution, in display points.
type ScoreExplanation struct {
	Label     string `json:"label"`
	Direction string `json:"direction"`
	Points    int    `json:"points"`
	Reason    string `json:"reason"`
}

// ScoreResult is the healthfulness verdict for one product.
type ScoreResult struct {
	Value        int                `json:"value"`
	Category     ScoreCategory      `json:"category"`
	ModelVersion string             `json:"modelVersion"`
	Explanations []ScoreExplanation `json:"explanations"`
}

// ScoreModel is the trained linear-weights artifact. It is versioned
// data produced outside this module; the scorer only applies it.
type ScoreModel struct {
	Version string             `json:"version"`
	Bias    float64            `json:"bias"`
	Weights map[string]float64 `json:"weights"`
}

//go:embed models/ai_v1.json
var defaultModelData []byte

var defaultScoreModel = mustLoadScoreModel(defaultModelData)

// LoadScoreModel decodes and validates a weights artifact, so retrained
// models can be swapped in without code changes.
func LoadScoreModel(data []byte) (ScoreModel, error) {
	var m ScoreModel
	if err := json.Unmarshal(data, &m); err != nil {
		return ScoreModel{}, fmt.Errorf("decode score model: %w", err)
	}
	if m.Version == "" {
		return ScoreModel{}, fmt.Errorf("score model has no version")
	}
	if len(m.Weights) == 0 {
		return ScoreModel{}, fmt.Errorf("score model %q has no weights", m.Version)
	}
	return m, nil
}

func mustLoadScoreModel(data []byte) ScoreModel {
	m, err := LoadScoreModel(data)
	if err != nil {
		panic(err)
	}
	return m
}

// Guardrail inputs. Vision nutrition estimates for single whole fruits
// read as "high sugar" even though the food is minimally processed, so
// a profile that strongly matches whole fruit gets a bounded uplift.
// The uplift must never reach juices, jams, or syrups.
var fruitTokens = []string{
	"apple", "banana", "orange", "pear", "grape", "mango", "papaya",
	"pineapple", "kiwi", "peach", "plum", "apricot", "berry",
	"strawberry", "blueberry", "blackberry", "raspberry",
}

var processedFruitTerms = []string{"juice", "jam", "jelly", "syrup", "honey", "nectar", "preserve"}

const (
	wholeFruitUplift = 0.45
	wholeFruitPoints = 45
)

// ScoreFromParsed applies the default trained model to one product.
func ScoreFromParsed(ingredients []string, nutrition *model.NutritionParsed) ScoreResult {
	return ScoreWithModel(defaultScoreModel, ingredients, nutrition)
}

// ScoreWithModel runs the linear model plus the whole-fruit guardrail
// and returns the clamped, bucketed score with its top explanations.
func ScoreWithModel(m ScoreModel, ingredients []string, nutrition *model.NutritionParsed) ScoreResult {
	features := ExtractFeatures(ingredients, nutrition)

	raw := m.Bias
	var contributions []ScoreExplanation
	for _, feature := range featureOrder {
		weight, ok := m.Weights[feature]
		if !ok {
			continue
		}
		value := features[feature]
		if value == 0 {
			continue
		}
		points := weight * value
		raw += points

		direction := "up"
		if points < 0 {
			direction = "down"
		}
		label := featureLabels[feature]
		if label == "" {
			label = feature
		}
		reason := featureReasons[feature]
		if reason == "" {
			reason = "Model contribution."
		}
		contributions = append(contributions, ScoreExplanation{
			Label:     label,
			Direction: direction,
			Points:    int(math.Round(points * 100)),
			Reason:    reason,
		})
	}

	if looksLikeWholeFruit(ingredients, features) {
		raw += wholeFruitUplift
		contributions = append(contributions, ScoreExplanation{
			Label:     "Whole fruit profile",
			Direction: "up",
			Points:    wholeFruitPoints,
			Reason:    "Single-ingredient fruit with no processing additives.",
		})
	}

	value := int(math.Round(clamp01(raw) * 100))
	category := ScoreCategoryLower
	switch {
	case value >= 70:
		category = ScoreCategoryGood
	case value >= 40:
		category = ScoreCategoryModerate
	}

	return ScoreResult{
		Value:        value,
		Category:     category,
		ModelVersion: m.Version,
		Explanations: topExplanations(contributions),
	}
}

func looksLikeWholeFruit(ingredients []string, features FeatureVector) bool {
	mentionsFruit := false
	mentionsProcessedFruit := false
	for _, ingredient := range ingredients {
		lower := strings.ToLower(ingredient)
		for _, token := range fruitTokens {
			if strings.Contains(lower, token) {
				mentionsFruit = true
				break
			}
		}
		for _, term := range processedFruitTerms {
			if strings.Contains(lower, term) {
				mentionsProcessedFruit = true
				break
			}
		}
	}

	return mentionsFruit &&
		!mentionsProcessedFruit &&
		features[featIngredientCount] <= 3 &&
		features[featUltraProcessedCount] == 0 &&
		features[featArtificialDye] == 0 &&
		features[featHydrogenatedOil] == 0 &&
		features[featUncertain] == 0 &&
		features[featAddedSugarG] <= 0.5 &&
		features[featSodiumMg] <= 60
}

// topExplanations keeps the five strongest positive contributions
// (largest first) followed by the five strongest negative ones
// (most negative first).
func topExplanations(contributions []ScoreExplanation) []ScoreExplanation {
	var positives, negatives []ScoreExplanation
	for _, c := range contributions {
		switch {
		case c.Points > 0:
			positives = append(positives, c)
		case c.Points < 0:
			negatives = append(negatives, c)
		}
	}
	sort.SliceStable(positives, func(i, j int) bool { return positives[i].Points > positives[j].Points })
	sort.SliceStable(negatives, func(i, j int) bool { return negatives[i].Points < negatives[j].Points })
	if len(positives) > 5 {
		positives = positives[:5]
	}
	if len(negatives) > 5 {
		negatives = negatives[:5]
	}
	out := make([]ScoreExplanation, 0, len(positives)+len(negatives))
	out = append(out, positives...)
	return append(out, negatives...)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
