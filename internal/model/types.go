package model

// NutritionParsed holds per-serving values extracted from a nutrition
// panel. A nil field means the value was not detected on the label,
// never that it is zero.
type NutritionParsed struct {
	Calories        *float64 `json:"calories"`
	ServingSizeG    *float64 `json:"servingSizeG"`
	CaloriesPer100G *float64 `json:"caloriesPer100g"`
	ProteinG        *float64 `json:"protein_g"`
	CarbsG          *float64 `json:"carbs_g"`
	SugarG          *float64 `json:"sugar_g"`
	AddedSugarG     *float64 `json:"addedSugar_g"`
	SodiumMg        *float64 `json:"sodium_mg"`
	FiberG          *float64 `json:"fiber_g"`
}

// DetectedFields reports how many of the nine panel fields were found.
func (n *NutritionParsed) DetectedFields() int {
	if n == nil {
		return 0
	}
	count := 0
	for _, v := range []*float64{
		n.Calories, n.ServingSizeG, n.CaloriesPer100G,
		n.ProteinG, n.CarbsG, n.SugarG,
		n.AddedSugarG, n.SodiumMg, n.FiberG,
	} {
		if v != nil {
			count++
		}
	}
	return count
}

// Confidences are heuristic [0,1] trust estimates for each extraction,
// not statistical probabilities.
type Confidences struct {
	IngredientsConfidence float64 `json:"ingredientsConfidence"`
	NutritionConfidence   float64 `json:"nutritionConfidence"`
	NameConfidence        float64 `json:"nameConfidence"`
}

// ParsedData is the structured result of one label-text extraction.
// It is built fresh per scan and never mutated afterwards.
type ParsedData struct {
	ProductName *string          `json:"productName"`
	Ingredients []string         `json:"ingredients"`
	Nutrition   *NutritionParsed `json:"nutrition"`
	Confidences Confidences      `json:"confidences"`
}

// OCRExtraction is the raw text handed over by the upstream OCR or
// vision collaborator, one blob per photographed label side.
type OCRExtraction struct {
	IngredientsText string `json:"ingredientsText"`
	NutritionText   string `json:"nutritionText"`
	FrontText       string `json:"frontText,omitempty"`
}

// UserPrefs holds per-user dietary thresholds. The record is owned and
// persisted by the external API layer; this module only reads it. Nil
// limits mean the user set no threshold for that dimension.
type UserPrefs struct {
	UserID             string   `json:"userId"`
	HalalCheckEnabled  bool     `json:"halalCheckEnabled"`
	LowSodiumMgLimit   *float64 `json:"lowSodiumMgLimit"`
	LowSugarGLimit     *float64 `json:"lowSugarGlimit"`
	LowCarbGLimit      *float64 `json:"lowCarbGlimit"`
	LowCalorieLimit    *float64 `json:"lowCalorieLimit"`
	HighProteinGTarget *float64 `json:"highProteinGtarget"`
	Vegetarian         bool     `json:"vegetarian"`
	Vegan              bool     `json:"vegan"`
	SensitiveStomach   bool     `json:"sensitiveStomach"`
}
