package service_test

import (
	"testing"

	"github.com/wimf/labelscan/internal/model"
	"github.com/wimf/labelscan/internal/service"
)

func TestExtractFeaturesCountsAndBinaries(t *testing.T) {
	t.Parallel()
	n := &model.NutritionParsed{
		SugarG: f64(12), AddedSugarG: f64(8), SodiumMg: f64(220),
		FiberG: f64(3), ProteinG: f64(6), Calories: f64(180),
	}
	features := service.ExtractFeatures(
		[]string{"Hydrogenated Oil", "Red 40", "Natural Flavors", "Gelatin", "Oats"}, n)

	checks := map[string]float64{
		"ingredient_count":               5,
		"ultra_processed_additive_count": 2,
		"has_artificial_dye":             1,
		"has_hydrogenated_oil":           1,
		"has_uncertain_ingredients":      1,
		"has_animal_derived":             1,
		"sugar_g":                        12,
		"addedSugar_g":                   8,
		"sodium_mg":                      220,
		"fiber_g":                        3,
		"protein_g":                      6,
		"calories":                       180,
	}
	for name, want := range checks {
		if got := features[name]; got != want {
			t.Fatalf("%s: expected %v, got %v", name, want, got)
		}
	}
}

func TestExtractFeaturesNilNutritionIsAllZeros(t *testing.T) {
	t.Parallel()
	features := service.ExtractFeatures([]string{"Oats"}, nil)
	if features["ingredient_count"] != 1 {
		t.Fatalf("expected count 1, got %v", features["ingredient_count"])
	}
	for _, name := range []string{"sugar_g", "addedSugar_g", "sodium_mg", "fiber_g", "protein_g", "calories"} {
		if features[name] != 0 {
			t.Fatalf("%s: expected 0 for nil nutrition, got %v", name, features[name])
		}
	}
}
