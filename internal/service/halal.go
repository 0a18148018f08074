package service

import "strings"

// HalalStatus is the rule-chain verdict for one product.
type HalalStatus string

const (
	HalalStatusHalal   HalalStatus = "halal"
	HalalStatusHaram   HalalStatus = "haram"
	HalalStatusUnclear HalalStatus = "unclear"
	HalalStatusUnknown HalalStatus = "unknown"
)

// HalalResult pairs the verdict with a heuristic confidence and a
// user-facing explanation.
type HalalResult struct {
	Status      HalalStatus `json:"status"`
	Confidence  float64     `json:"confidence"`
	Explanation string      `json:"explanation"`
}

var explicitHaramTerms = []string{"pork", "bacon", "lard", "ham", "alcohol"}

var ambiguousHalalTerms = []string{"gelatin", "carmine", "rennet", "natural flavors", "enzymes", "spices"}

// ClassifyHalal evaluates an ordered rule chain; the first matching
// rule decides. Order is precedence and must not be rearranged: an
// explicit haram term outranks ambiguity, which outranks glossary risk.
func ClassifyHalal(ingredients []string, extractedText string) HalalResult {
	normalized := make([]string, len(ingredients))
	for i, ingredient := range ingredients {
		normalized[i] = strings.ToLower(ingredient)
	}

	if strings.Contains(strings.ToLower(extractedText), "halal") {
		return HalalResult{
			Status:      HalalStatusHalal,
			Confidence:  0.65,
			Explanation: "Halal text detected, but certification is not verified.",
		}
	}

	if anyContainsTerm(normalized, explicitHaramTerms) {
		return HalalResult{
			Status:      HalalStatusHaram,
			Confidence:  0.85,
			Explanation: "Contains ingredients commonly derived from non-halal sources.",
		}
	}

	if anyContainsTerm(normalized, ambiguousHalalTerms) {
		return HalalResult{
			Status:      HalalStatusUnclear,
			Confidence:  0.6,
			Explanation: "Contains ingredients with unclear halal sourcing.",
		}
	}

	var matches []*GlossaryEntry
	for _, ingredient := range normalized {
		if entry := FindGlossaryMatch(ingredient); entry != nil {
			matches = append(matches, entry)
		}
	}

	if anyHalalRisk(matches, HalalRiskHaramKnown) {
		return HalalResult{
			Status:      HalalStatusHaram,
			Confidence:  0.85,
			Explanation: "Contains ingredients known to be non-halal.",
		}
	}

	if anyHalalRisk(matches, HalalRiskAnimal) {
		return HalalResult{
			Status:      HalalStatusUnclear,
			Confidence:  0.55,
			Explanation: "Contains animal-derived ingredients without certification.",
		}
	}

	if anyHalalRisk(matches, HalalRiskUnknown) {
		return HalalResult{
			Status:      HalalStatusUnclear,
			Confidence:  0.45,
			Explanation: "Some ingredients have unclear sourcing.",
		}
	}

	return HalalResult{
		Status:      HalalStatusUnknown,
		Confidence:  0.3,
		Explanation: "No clear halal indicators detected.",
	}
}

func anyContainsTerm(items, terms []string) bool {
	for _, item := range items {
		for _, term := range terms {
			if strings.Contains(item, term) {
				return true
			}
		}
	}
	return false
}

func anyHalalRisk(entries []*GlossaryEntry, risk HalalRisk) bool {
	for _, entry := range entries {
		if entry.HalalRisk == risk {
			return true
		}
	}
	return false
}
