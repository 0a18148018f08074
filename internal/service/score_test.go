package service_test

import (
	"reflect"
	"testing"

	"github.com/wimf/labelscan/internal/model"
	"github.com/wimf/labelscan/internal/service"
)

func TestScoreSimpleWholeFoodIsGood(t *testing.T) {
	t.Parallel()
	n := &model.NutritionParsed{
		Calories: f64(80), ProteinG: f64(15), CarbsG: f64(10),
		SugarG: f64(2), AddedSugarG: f64(0), SodiumMg: f64(50), FiberG: f64(5),
	}
	result := service.ScoreFromParsed([]string{"Oats", "Almonds", "Sea Salt"}, n)
	if result.Value != 75 {
		t.Fatalf("expected score 75, got %d", result.Value)
	}
	if result.Category != service.ScoreCategoryGood {
		t.Fatalf("expected Good, got %s", result.Category)
	}
	if result.ModelVersion != "ai_v1" {
		t.Fatalf("expected model version ai_v1, got %q", result.ModelVersion)
	}
}

func TestScoreDropsWithSodiumAndSugar(t *testing.T) {
	t.Parallel()
	base := &model.NutritionParsed{
		Calories: f64(80), ProteinG: f64(15), CarbsG: f64(10),
		SugarG: f64(2), AddedSugarG: f64(0), SodiumMg: f64(50), FiberG: f64(5),
	}
	worse := &model.NutritionParsed{
		Calories: f64(80), ProteinG: f64(15), CarbsG: f64(10),
		SugarG: f64(20), AddedSugarG: f64(15), SodiumMg: f64(800), FiberG: f64(5),
	}
	ingredients := []string{"Oats", "Almonds", "Sea Salt"}
	good := service.ScoreFromParsed(ingredients, base)
	bad := service.ScoreFromParsed(ingredients, worse)
	if bad.Value != 55 {
		t.Fatalf("expected score 55, got %d", bad.Value)
	}
	if bad.Value >= good.Value {
		t.Fatalf("expected worse panel to score lower: %d vs %d", bad.Value, good.Value)
	}
	if bad.Category != service.ScoreCategoryModerate {
		t.Fatalf("expected Moderate, got %s", bad.Category)
	}
}

func TestScoreWholeFruitGuardrail(t *testing.T) {
	t.Parallel()
	n := &model.NutritionParsed{
		Calories: f64(52), ProteinG: f64(0.3), CarbsG: f64(14),
		SugarG: f64(10.4), AddedSugarG: f64(0), SodiumMg: f64(1), FiberG: f64(2.4),
	}
	result := service.ScoreFromParsed([]string{"Apple"}, n)
	if result.Value != 100 {
		t.Fatalf("expected clamped score 100, got %d", result.Value)
	}
	if result.Category != service.ScoreCategoryGood {
		t.Fatalf("expected Good, got %s", result.Category)
	}
	found := false
	for _, e := range result.Explanations {
		if e.Label == "Whole fruit profile" {
			found = true
			if e.Direction != "up" || e.Points != 45 {
				t.Fatalf("unexpected guardrail explanation: %+v", e)
			}
		}
	}
	if !found {
		t.Fatalf("expected whole fruit explanation, got %+v", result.Explanations)
	}
}

func TestScoreGuardrailSkipsProcessedFruit(t *testing.T) {
	t.Parallel()
	n := &model.NutritionParsed{
		Calories: f64(120), ProteinG: f64(1), CarbsG: f64(28),
		SugarG: f64(24), AddedSugarG: f64(18), SodiumMg: f64(25), FiberG: f64(0.2),
	}
	result := service.ScoreFromParsed([]string{"Orange Juice", "Sugar"}, n)
	if result.Value != 60 {
		t.Fatalf("expected score 60, got %d", result.Value)
	}
	for _, e := range result.Explanations {
		if e.Label == "Whole fruit profile" {
			t.Fatalf("guardrail must not fire for juice: %+v", result.Explanations)
		}
	}
}

func TestScoreWorstCaseStaysAboveFloor(t *testing.T) {
	t.Parallel()
	n := &model.NutritionParsed{
		Calories: f64(650), ProteinG: f64(1), CarbsG: f64(80),
		SugarG: f64(60), AddedSugarG: f64(50), SodiumMg: f64(1200), FiberG: f64(0),
	}
	result := service.ScoreFromParsed([]string{"Hydrogenated Oil", "Sugar", "Red 40"}, n)
	if result.Value != 12 {
		t.Fatalf("expected score 12, got %d", result.Value)
	}
	if result.Category != service.ScoreCategoryLower {
		t.Fatalf("expected Lower, got %s", result.Category)
	}
}

func TestScoreDessertLandsInLowToModerateBand(t *testing.T) {
	t.Parallel()
	n := &model.NutritionParsed{
		Calories: f64(450), ProteinG: f64(5), CarbsG: f64(55),
		SugarG: f64(30), AddedSugarG: f64(25), SodiumMg: f64(320), FiberG: f64(1),
	}
	result := service.ScoreFromParsed([]string{"Assorted donuts", "Sugar", "Wheat flour"}, n)
	if result.Value != 49 {
		t.Fatalf("expected score 49, got %d", result.Value)
	}
	if result.Value < 10 || result.Value >= 50 {
		t.Fatalf("expected score in [10,50), got %d", result.Value)
	}
	if result.Category != service.ScoreCategoryModerate {
		t.Fatalf("expected Moderate, got %s", result.Category)
	}
}

func TestScoreExplanationsOrderedAndSigned(t *testing.T) {
	t.Parallel()
	n := &model.NutritionParsed{
		Calories: f64(80), ProteinG: f64(15), CarbsG: f64(10),
		SugarG: f64(2), AddedSugarG: f64(0), SodiumMg: f64(50), FiberG: f64(5),
	}
	result := service.ScoreFromParsed([]string{"Oats", "Almonds", "Sea Salt"}, n)
	if len(result.Explanations) == 0 {
		t.Fatalf("expected explanations")
	}
	if result.Explanations[0].Label != "Protein" || result.Explanations[0].Points != 6 {
		t.Fatalf("expected Protein +6 first, got %+v", result.Explanations[0])
	}
	seenNegative := false
	for _, e := range result.Explanations {
		if e.Points == 0 {
			t.Fatalf("zero-point contributions must be dropped: %+v", e)
		}
		if e.Points < 0 {
			seenNegative = true
			if e.Direction != "down" {
				t.Fatalf("negative points need direction down: %+v", e)
			}
		} else if seenNegative {
			t.Fatalf("positives must precede negatives: %+v", result.Explanations)
		}
	}
}

func TestScoreEmptyInputUsesBiasOnly(t *testing.T) {
	t.Parallel()
	result := service.ScoreFromParsed(nil, nil)
	if result.Value != 70 {
		t.Fatalf("expected bias-only score 70, got %d", result.Value)
	}
	if len(result.Explanations) != 0 {
		t.Fatalf("expected no explanations, got %+v", result.Explanations)
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	t.Parallel()
	n := &model.NutritionParsed{
		Calories: f64(450), ProteinG: f64(5), CarbsG: f64(55),
		SugarG: f64(30), AddedSugarG: f64(25), SodiumMg: f64(320), FiberG: f64(1),
	}
	ingredients := []string{"Assorted donuts", "Sugar", "Wheat flour"}
	first := service.ScoreFromParsed(ingredients, n)
	for i := 0; i < 20; i++ {
		if next := service.ScoreFromParsed(ingredients, n); !reflect.DeepEqual(first, next) {
			t.Fatalf("score not deterministic: %+v vs %+v", first, next)
		}
	}
}

func TestLoadScoreModelValidation(t *testing.T) {
	t.Parallel()
	if _, err := service.LoadScoreModel([]byte(`{"bias":0.5,"weights":{"sugar_g":-0.1}}`)); err == nil {
		t.Fatalf("expected missing version error")
	}
	if _, err := service.LoadScoreModel([]byte(`{"version":"x","bias":0.5}`)); err == nil {
		t.Fatalf("expected missing weights error")
	}
	if _, err := service.LoadScoreModel([]byte(`not json`)); err == nil {
		t.Fatalf("expected decode error")
	}
	m, err := service.LoadScoreModel([]byte(`{"version":"x","bias":0.5,"weights":{"sugar_g":-0.1}}`))
	if err != nil {
		t.Fatalf("load model: %v", err)
	}
	if m.Version != "x" || m.Bias != 0.5 {
		t.Fatalf("unexpected model: %+v", m)
	}
}

func TestScoreWithModelAppliesCustomWeights(t *testing.T) {
	t.Parallel()
	m := service.ScoreModel{
		Version: "test",
		Bias:    0.5,
		Weights: map[string]float64{"sugar_g": -0.01},
	}
	result := service.ScoreWithModel(m, nil, &model.NutritionParsed{SugarG: f64(10)})
	if result.Value != 40 {
		t.Fatalf("expected 40, got %d", result.Value)
	}
	if result.ModelVersion != "test" {
		t.Fatalf("expected version test, got %q", result.ModelVersion)
	}
}
