package service

import "github.com/wimf/labelscan/internal/model"

// Feature names shared by the extractor and the trained weights table.
const (
	featIngredientCount     = "ingredient_count"
	featUltraProcessedCount = "ultra_processed_additive_count"
	featArtificialDye       = "has_artificial_dye"
	featHydrogenatedOil     = "has_hydrogenated_oil"
	featSugarG              = "sugar_g"
	featAddedSugarG         = "addedSugar_g"
	featSodiumMg            = "sodium_mg"
	featFiberG              = "fiber_g"
	featProteinG            = "protein_g"
	featCalories            = "calories"
	featUncertain           = "has_uncertain_ingredients"
	featAnimalDerived       = "has_animal_derived"
)

// featureOrder fixes weight application order so scoring output is
// deterministic across runs.
var featureOrder = []string{
	featIngredientCount,
	featUltraProcessedCount,
	featArtificialDye,
	featHydrogenatedOil,
	featSugarG,
	featAddedSugarG,
	featSodiumMg,
	featFiberG,
	featProteinG,
	featCalories,
	featUncertain,
	featAnimalDerived,
}

var featureLabels = map[string]string{
	featIngredientCount:     "Ingredient count",
	featUltraProcessedCount: "Ultra-processed additives",
	featArtificialDye:       "Artificial dyes",
	featHydrogenatedOil:     "Hydrogenated oils",
	featSugarG:              "Sugar",
	featAddedSugarG:         "Added sugar",
	featSodiumMg:            "Sodium",
	featFiberG:              "Fiber",
	featProteinG:            "Protein",
	featCalories:            "Calories",
	featUncertain:           "Uncertain ingredients",
	featAnimalDerived:       "Animal-derived ingredients",
}

var featureReasons = map[string]string{
	featIngredientCount:     "More ingredients can indicate heavier processing.",
	featUltraProcessedCount: "Processed additives add uncertainty.",
	featArtificialDye:       "Includes synthetic colors.",
	featHydrogenatedOil:     "Hydrogenated oils are more processed.",
	featSugarG:              "Higher sugar per serving.",
	featAddedSugarG:         "Higher added sugar per serving.",
	featSodiumMg:            "Higher sodium per serving.",
	featFiberG:              "Fiber supports a balanced profile.",
	featProteinG:            "Protein supports satiety.",
	featCalories:            "Higher calories per serving.",
	featUncertain:           "Unclear sourcing reduces confidence.",
	featAnimalDerived:       "Animal-derived ingredients impact some diets.",
}

// FeatureVector is the fixed-shape numeric summary the linear model
// consumes. Binary features hold 0/1; missing nutrition values hold 0.
type FeatureVector map[string]float64

// ExtractFeatures derives the feature vector from the ingredient list
// (via glossary tags) and the parsed nutrition panel.
func ExtractFeatures(ingredients []string, nutrition *model.NutritionParsed) FeatureVector {
	var ultraProcessed, dye, hydrogenated, uncertain, animal float64
	for _, ingredient := range ingredients {
		entry := FindGlossaryMatch(ingredient)
		if entry == nil {
			continue
		}
		if entry.HasTag(TagUltraProcessed) {
			ultraProcessed++
		}
		if entry.HasTag(TagDye) {
			dye = 1
		}
		if entry.HasTag(TagTransFat) {
			hydrogenated = 1
		}
		if entry.HasTag(TagUncertainSource) {
			uncertain = 1
		}
		if entry.HasTag(TagAnimalDerived) {
			animal = 1
		}
	}

	var sugar, addedSugar, sodium, fiber, protein, calories float64
	if nutrition != nil {
		sugar = valueOrZero(nutrition.SugarG)
		addedSugar = valueOrZero(nutrition.AddedSugarG)
		sodium = valueOrZero(nutrition.SodiumMg)
		fiber = valueOrZero(nutrition.FiberG)
		protein = valueOrZero(nutrition.ProteinG)
		calories = valueOrZero(nutrition.Calories)
	}

	return FeatureVector{
		featIngredientCount:     float64(len(ingredients)),
		featUltraProcessedCount: ultraProcessed,
		featArtificialDye:       dye,
		featHydrogenatedOil:     hydrogenated,
		featSugarG:              sugar,
		featAddedSugarG:         addedSugar,
		featSodiumMg:            sodium,
		featFiberG:              fiber,
		featProteinG:            protein,
		featCalories:            calories,
		featUncertain:           uncertain,
		featAnimalDerived:       animal,
	}
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
