package service

import (
	"fmt"
	"strconv"

	"github.com/wimf/labelscan/internal/model"
)

// FlagStatus is the verdict for one personalized dietary dimension.
type FlagStatus string

const (
	FlagStatusPass    FlagStatus = "pass"
	FlagStatusWarn    FlagStatus = "warn"
	FlagStatusFail    FlagStatus = "fail"
	FlagStatusUnknown FlagStatus = "unknown"
)

// FlagResult is one evaluated dimension with a templated explanation
// embedding the detected value and the user's configured threshold.
type FlagResult struct {
	Flag        string     `json:"flag"`
	Status      FlagStatus `json:"status"`
	Confidence  float64    `json:"confidence"`
	Explanation string     `json:"explanation"`
}

// Values within 25% above a "low X" limit warn instead of failing;
// protein warns down to 75% of the target.
const (
	lowLimitWarnFactor     = 1.25
	proteinTargetWarnFloor = 0.75
)

// EvaluateFlags combines parsed nutrition, user thresholds, and the
// halal verdict into named pass/warn/fail/unknown flags. The five
// numeric flags are always present; missing prefs or undetected values
// resolve to unknown rather than an error. Halal, vegetarian/vegan, and
// sensitive-stomach flags appear only when the matching pref is set.
func EvaluateFlags(ingredients []string, nutrition *model.NutritionParsed, prefs *model.UserPrefs, halal *HalalResult) []FlagResult {
	var flags []FlagResult

	if prefs != nil && prefs.HalalCheckEnabled {
		flags = append(flags, halalFlag(halal))
	}

	var sodium, sugar, carbs, calories, protein *float64
	if nutrition != nil {
		sodium = nutrition.SodiumMg
		sugar = nutrition.SugarG
		carbs = nutrition.CarbsG
		calories = nutrition.Calories
		protein = nutrition.ProteinG
	}

	var sodiumLimit, sugarLimit, carbLimit, calorieLimit, proteinTarget *float64
	if prefs != nil {
		sodiumLimit = prefs.LowSodiumMgLimit
		sugarLimit = prefs.LowSugarGLimit
		carbLimit = prefs.LowCarbGLimit
		calorieLimit = prefs.LowCalorieLimit
		proteinTarget = prefs.HighProteinGTarget
	}

	flags = append(flags, FlagResult{
		Flag:       "Low sodium",
		Status:     lowLimitStatus(sodium, sodiumLimit),
		Confidence: detectionConfidence(sodium),
		Explanation: limitExplanation(sodium, sodiumLimit,
			"No sodium limit set.",
			"Sodium value was not detected.",
			func(v, l string) string { return fmt.Sprintf("Sodium is %smg vs your %smg limit.", v, l) }),
	})

	flags = append(flags, FlagResult{
		Flag:       "Low sugar",
		Status:     lowLimitStatus(sugar, sugarLimit),
		Confidence: detectionConfidence(sugar),
		Explanation: limitExplanation(sugar, sugarLimit,
			"No sugar limit set.",
			"Sugar value was not detected.",
			func(v, l string) string { return fmt.Sprintf("Sugar is %sg vs your %sg limit.", v, l) }),
	})

	flags = append(flags, FlagResult{
		Flag:       "Low carb",
		Status:     lowLimitStatus(carbs, carbLimit),
		Confidence: detectionConfidence(carbs),
		Explanation: limitExplanation(carbs, carbLimit,
			"No carb limit set.",
			"Carb value was not detected.",
			func(v, l string) string { return fmt.Sprintf("Carbs are %sg vs your %sg limit.", v, l) }),
	})

	flags = append(flags, FlagResult{
		Flag:       "Low calorie",
		Status:     lowLimitStatus(calories, calorieLimit),
		Confidence: detectionConfidence(calories),
		Explanation: limitExplanation(calories, calorieLimit,
			"No calorie limit set.",
			"Calories were not detected.",
			func(v, l string) string { return fmt.Sprintf("Calories are %s vs your %s limit.", v, l) }),
	})

	flags = append(flags, FlagResult{
		Flag:       "High protein",
		Status:     highTargetStatus(protein, proteinTarget),
		Confidence: detectionConfidence(protein),
		Explanation: limitExplanation(protein, proteinTarget,
			"No protein target set.",
			"Protein value was not detected.",
			func(v, l string) string { return fmt.Sprintf("Protein is %sg vs your %sg target.", v, l) }),
	})

	if prefs != nil && (prefs.Vegetarian || prefs.Vegan) {
		flags = append(flags, vegetarianFlag(ingredients, prefs.Vegan))
	}

	if prefs != nil && prefs.SensitiveStomach {
		flags = append(flags, sensitiveStomachFlag(ingredients))
	}

	return flags
}

func halalFlag(halal *HalalResult) FlagResult {
	status := FlagStatusUnknown
	confidence := 0.4
	explanation := "No halal indicators detected."
	if halal != nil {
		switch halal.Status {
		case HalalStatusHalal:
			status = FlagStatusPass
		case HalalStatusHaram:
			status = FlagStatusFail
		case HalalStatusUnclear:
			status = FlagStatusWarn
		}
		confidence = halal.Confidence
		if halal.Explanation != "" {
			explanation = halal.Explanation
		}
	}
	return FlagResult{Flag: "Halal check", Status: status, Confidence: confidence, Explanation: explanation}
}

func vegetarianFlag(ingredients []string, vegan bool) FlagResult {
	animalIssue := anyIngredientTagged(ingredients, TagAnimalDerived)
	dairyIssue := anyIngredientTagged(ingredients, TagDairy)

	name := "Vegetarian"
	if vegan {
		name = "Vegan"
	}

	status := FlagStatusPass
	explanation := "No animal-derived ingredients detected."
	switch {
	case animalIssue:
		status = FlagStatusFail
		explanation = "Contains animal-derived ingredients."
	case vegan && dairyIssue:
		status = FlagStatusFail
		explanation = "Contains dairy ingredients."
	}

	return FlagResult{Flag: name, Status: status, Confidence: 0.7, Explanation: explanation}
}

func sensitiveStomachFlag(ingredients []string) FlagResult {
	if anyIngredientTagged(ingredients, TagSensitiveStomach) {
		return FlagResult{
			Flag:        "Sensitive stomach",
			Status:      FlagStatusWarn,
			Confidence:  0.6,
			Explanation: "Contains acids or additives that can bother sensitive stomachs.",
		}
	}
	return FlagResult{
		Flag:        "Sensitive stomach",
		Status:      FlagStatusPass,
		Confidence:  0.6,
		Explanation: "No common sensitive-stomach triggers detected.",
	}
}

func anyIngredientTagged(ingredients []string, tag string) bool {
	for _, ingredient := range ingredients {
		if entry := FindGlossaryMatch(ingredient); entry != nil && entry.HasTag(tag) {
			return true
		}
	}
	return false
}

func lowLimitStatus(value, limit *float64) FlagStatus {
	if limit == nil || value == nil {
		return FlagStatusUnknown
	}
	switch {
	case *value <= *limit:
		return FlagStatusPass
	case *value <= *limit*lowLimitWarnFactor:
		return FlagStatusWarn
	default:
		return FlagStatusFail
	}
}

func highTargetStatus(value, target *float64) FlagStatus {
	if target == nil || value == nil {
		return FlagStatusUnknown
	}
	switch {
	case *value >= *target:
		return FlagStatusPass
	case *value >= *target*proteinTargetWarnFloor:
		return FlagStatusWarn
	default:
		return FlagStatusFail
	}
}

func detectionConfidence(value *float64) float64 {
	if value == nil {
		return 0.3
	}
	return 0.8
}

func limitExplanation(value, limit *float64, noLimit, notDetected string, detected func(value, limit string) string) string {
	if limit == nil {
		return noLimit
	}
	if value == nil {
		return notDetected
	}
	return detected(formatAmount(*value), formatAmount(*limit))
}

// formatAmount renders thresholds the way the UI shows them: no
// trailing zeros, no fixed precision.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
