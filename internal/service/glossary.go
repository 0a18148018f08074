package service

import "strings"

// HalalRisk classifies how an ingredient's sourcing affects halal status.
type HalalRisk string

const (
	HalalRiskPlant      HalalRisk = "plant"
	HalalRiskAnimal     HalalRisk = "animal"
	HalalRiskUnknown    HalalRisk = "unknown"
	HalalRiskHaramKnown HalalRisk = "haram_known"
)

// Tags consumed by the scorer and flag evaluator. The glossary table
// also carries descriptive tags (preservative, stabilizer, ...) that
// only surface in the ingredient breakdown.
const (
	TagAddedSugar       = "added_sugar"
	TagUltraProcessed   = "ultra_processed"
	TagDye              = "dye"
	TagTransFat         = "trans_fat"
	TagUncertainSource  = "uncertain_source"
	TagAnimalDerived    = "animal_derived"
	TagDairy            = "dairy"
	TagSensitiveStomach = "sensitive_stomach_trigger"
)

// GlossaryEntry describes one known ingredient (or family of variants).
type GlossaryEntry struct {
	Name         string    `json:"name"`
	Variants     []string  `json:"variants,omitempty"`
	PlainEnglish string    `json:"plainEnglish"`
	Purpose      string    `json:"purpose"`
	WhoMightCare string    `json:"whoMightCare"`
	HalalRisk    HalalRisk `json:"halalRisk"`
	Tags         []string  `json:"tags"`
}

// HasTag reports whether the entry carries the given semantic tag.
func (e *GlossaryEntry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// FindGlossaryMatch returns the first glossary entry whose name or any
// variant is a substring of the given ingredient, case-insensitively.
// Table order is matching precedence. Unknown ingredients return nil;
// false negatives are expected and acceptable.
func FindGlossaryMatch(ingredient string) *GlossaryEntry {
	normalized := strings.ToLower(ingredient)
	for i := range ingredientGlossary {
		entry := &ingredientGlossary[i]
		if strings.Contains(normalized, entry.Name) {
			return entry
		}
		for _, variant := range entry.Variants {
			if strings.Contains(normalized, variant) {
				return entry
			}
		}
	}
	return nil
}

var ingredientGlossary = []GlossaryEntry{
	{
		Name:         "high fructose corn syrup",
		Variants:     []string{"hfcs"},
		PlainEnglish: "A sweetener made from corn.",
		Purpose:      "Adds sweetness and texture.",
		WhoMightCare: "People limiting added sugar.",
		HalalRisk:    HalalRiskPlant,
		Tags:         []string{TagAddedSugar, TagUltraProcessed},
	},
	{
		Name:         "corn syrup",
		PlainEnglish: "A syrupy sweetener from corn.",
		Purpose:      "Adds sweetness and moisture.",
		WhoMightCare: "People limiting added sugar.",
		HalalRisk:    HalalRiskPlant,
		Tags:         []string{TagAddedSugar},
	},
	{
		Name:         "sugar",
		Variants:     []string{"cane sugar", "brown sugar"},
		PlainEnglish: "Common sweetener.",
		Purpose:      "Adds sweetness.",
		WhoMightCare: "People limiting added sugar.",
		HalalRisk:    HalalRiskPlant,
		Tags:         []string{TagAddedSugar},
	},
	{
		Name:         "dextrose",
		PlainEnglish: "A simple sugar from corn.",
		Purpose:      "Sweetener and binder.",
		WhoMightCare: "People limiting added sugar.",
		HalalRisk:    HalalRiskPlant,
		Tags:         []string{TagAddedSugar},
	},
	{
		Name:         "aspartame",
		PlainEnglish: "Zero-calorie sweetener.",
		Purpose:      "Adds sweetness without sugar.",
		WhoMightCare: "People sensitive to artificial sweeteners.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{TagUltraProcessed, "artificial_sweetener", TagSensitiveStomach},
	},
	{
		Name:         "sucralose",
		PlainEnglish: "Zero-calorie sweetener.",
		Purpose:      "Adds sweetness without sugar.",
		WhoMightCare: "People sensitive to artificial sweeteners.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{TagUltraProcessed, "artificial_sweetener", TagSensitiveStomach},
	},
	{
		Name:         "acesulfame potassium",
		Variants:     []string{"acesulfame k"},
		PlainEnglish: "Zero-calorie sweetener.",
		Purpose:      "Adds sweetness without sugar.",
		WhoMightCare: "People sensitive to artificial sweeteners.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{TagUltraProcessed, "artificial_sweetener"},
	},
	{
		Name:         "red 40",
		Variants:     []string{"fd&c red 40", "red dye 40"},
		PlainEnglish: "A synthetic food dye.",
		Purpose:      "Adds color.",
		WhoMightCare: "People avoiding artificial dyes.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{TagDye, TagUltraProcessed},
	},
	{
		Name:         "yellow 5",
		Variants:     []string{"fd&c yellow 5"},
		PlainEnglish: "A synthetic food dye.",
		Purpose:      "Adds color.",
		WhoMightCare: "People avoiding artificial dyes.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{TagDye, TagUltraProcessed},
	},
	{
		Name:         "blue 1",
		Variants:     []string{"fd&c blue 1"},
		PlainEnglish: "A synthetic food dye.",
		Purpose:      "Adds color.",
		WhoMightCare: "People avoiding artificial dyes.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{TagDye, TagUltraProcessed},
	},
	{
		Name:         "caramel color",
		PlainEnglish: "A coloring made by heating sugar.",
		Purpose:      "Adds color.",
		WhoMightCare: "People avoiding added colorants.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{"color"},
	},
	{
		Name:         "natural flavors",
		Variants:     []string{"natural flavour", "natural flavor"},
		PlainEnglish: "Flavoring derived from natural sources.",
		Purpose:      "Adds flavor.",
		WhoMightCare: "People seeking transparency in ingredients.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{TagUncertainSource},
	},
	{
		Name:         "sodium benzoate",
		PlainEnglish: "A preservative to prevent spoilage.",
		Purpose:      "Extends shelf life.",
		WhoMightCare: "People sensitive to preservatives.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{"preservative", TagUltraProcessed, TagSensitiveStomach},
	},
	{
		Name:         "potassium sorbate",
		PlainEnglish: "A preservative to prevent mold.",
		Purpose:      "Extends shelf life.",
		WhoMightCare: "People sensitive to preservatives.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{"preservative", TagUltraProcessed},
	},
	{
		Name:         "citric acid",
		PlainEnglish: "A natural acid found in citrus.",
		Purpose:      "Adds tang and preserves.",
		WhoMightCare: "People with sensitive stomach.",
		HalalRisk:    HalalRiskPlant,
		Tags:         []string{"acid", TagSensitiveStomach},
	},
	{
		Name:         "phosphoric acid",
		PlainEnglish: "Acid used in sodas.",
		Purpose:      "Adds tartness.",
		WhoMightCare: "People with sensitive stomach.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{"acid", TagSensitiveStomach},
	},
	{
		Name:         "carrageenan",
		PlainEnglish: "A thickener from seaweed.",
		Purpose:      "Improves texture.",
		WhoMightCare: "People with sensitive stomach.",
		HalalRisk:    HalalRiskPlant,
		Tags:         []string{"stabilizer", TagSensitiveStomach, TagUltraProcessed},
	},
	{
		Name:         "xanthan gum",
		PlainEnglish: "A thickener from fermentation.",
		Purpose:      "Improves texture.",
		WhoMightCare: "People with sensitive stomach.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{"stabilizer"},
	},
	{
		Name:         "guar gum",
		PlainEnglish: "A thickener from guar beans.",
		Purpose:      "Improves texture.",
		WhoMightCare: "People with sensitive stomach.",
		HalalRisk:    HalalRiskPlant,
		Tags:         []string{"stabilizer"},
	},
	{
		Name:         "cellulose gum",
		Variants:     []string{"carboxymethylcellulose"},
		PlainEnglish: "Plant fiber used as a thickener.",
		Purpose:      "Stabilizes texture.",
		WhoMightCare: "People avoiding heavy processing.",
		HalalRisk:    HalalRiskPlant,
		Tags:         []string{"stabilizer", TagUltraProcessed},
	},
	{
		Name:         "soy lecithin",
		PlainEnglish: "An emulsifier from soy.",
		Purpose:      "Keeps ingredients mixed.",
		WhoMightCare: "People avoiding soy.",
		HalalRisk:    HalalRiskPlant,
		Tags:         []string{"emulsifier"},
	},
	{
		Name:         "mono- and diglycerides",
		Variants:     []string{"monoglycerides", "diglycerides"},
		PlainEnglish: "Emulsifiers that can be plant or animal derived.",
		Purpose:      "Improves texture.",
		WhoMightCare: "People seeking halal or vegan clarity.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{"emulsifier", TagUltraProcessed},
	},
	{
		Name:         "hydrogenated oil",
		Variants:     []string{"partially hydrogenated"},
		PlainEnglish: "Oil processed for stability.",
		Purpose:      "Improves shelf life.",
		WhoMightCare: "People avoiding trans fats.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{TagTransFat, TagUltraProcessed},
	},
	{
		Name:         "maltodextrin",
		PlainEnglish: "A processed starch.",
		Purpose:      "Adds texture or sweetness.",
		WhoMightCare: "People limiting ultra-processed additives.",
		HalalRisk:    HalalRiskPlant,
		Tags:         []string{TagUltraProcessed},
	},
	{
		Name:         "modified food starch",
		PlainEnglish: "Starch altered for stability.",
		Purpose:      "Improves texture.",
		WhoMightCare: "People limiting ultra-processed additives.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{"stabilizer", TagUltraProcessed},
	},
	{
		Name:         "gelatin",
		PlainEnglish: "Protein derived from animal collagen.",
		Purpose:      "Provides texture and binding.",
		WhoMightCare: "People who avoid animal-derived ingredients.",
		HalalRisk:    HalalRiskAnimal,
		Tags:         []string{TagAnimalDerived},
	},
	{
		Name:         "carmine",
		Variants:     []string{"cochineal"},
		PlainEnglish: "Red pigment derived from insects.",
		Purpose:      "Adds red color.",
		WhoMightCare: "People avoiding animal-derived colorants.",
		HalalRisk:    HalalRiskAnimal,
		Tags:         []string{TagDye, TagAnimalDerived},
	},
	{
		Name:         "rennet",
		PlainEnglish: "Enzyme used in cheese making.",
		Purpose:      "Helps milk coagulate.",
		WhoMightCare: "People avoiding animal-derived enzymes.",
		HalalRisk:    HalalRiskAnimal,
		Tags:         []string{TagAnimalDerived},
	},
	{
		Name:         "lard",
		PlainEnglish: "Rendered pork fat.",
		Purpose:      "Adds flavor and texture.",
		WhoMightCare: "People avoiding pork-derived ingredients.",
		HalalRisk:    HalalRiskAnimal,
		Tags:         []string{TagAnimalDerived},
	},
	{
		Name:         "pork",
		PlainEnglish: "Meat from pigs.",
		Purpose:      "Adds flavor and protein.",
		WhoMightCare: "People avoiding pork-derived ingredients.",
		HalalRisk:    HalalRiskAnimal,
		Tags:         []string{TagAnimalDerived},
	},
	{
		Name:         "whey",
		Variants:     []string{"whey protein"},
		PlainEnglish: "Protein from milk.",
		Purpose:      "Adds protein.",
		WhoMightCare: "People avoiding dairy.",
		HalalRisk:    HalalRiskAnimal,
		Tags:         []string{TagDairy, TagAnimalDerived},
	},
	{
		Name:         "casein",
		PlainEnglish: "Protein from milk.",
		Purpose:      "Adds protein and texture.",
		WhoMightCare: "People avoiding dairy.",
		HalalRisk:    HalalRiskAnimal,
		Tags:         []string{TagDairy, TagAnimalDerived},
	},
	{
		Name:         "milk",
		Variants:     []string{"whole milk", "skim milk"},
		PlainEnglish: "Dairy ingredient.",
		Purpose:      "Adds creaminess.",
		WhoMightCare: "People avoiding dairy.",
		HalalRisk:    HalalRiskAnimal,
		Tags:         []string{TagDairy, TagAnimalDerived},
	},
	{
		Name:         "egg",
		Variants:     []string{"egg whites", "egg yolk"},
		PlainEnglish: "Animal-derived ingredient.",
		Purpose:      "Adds structure and protein.",
		WhoMightCare: "People avoiding animal products.",
		HalalRisk:    HalalRiskAnimal,
		Tags:         []string{TagAnimalDerived},
	},
	{
		Name:         "sodium nitrite",
		PlainEnglish: "Preservative in processed meats.",
		Purpose:      "Prevents spoilage and color loss.",
		WhoMightCare: "People limiting processed meats.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{"preservative", TagUltraProcessed},
	},
	{
		Name:         "bht",
		Variants:     []string{"bha"},
		PlainEnglish: "Antioxidant preservative.",
		Purpose:      "Prevents fats from going rancid.",
		WhoMightCare: "People limiting synthetic additives.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{"preservative", TagUltraProcessed},
	},
	{
		Name:         "monosodium glutamate",
		Variants:     []string{"msg"},
		PlainEnglish: "Flavor enhancer.",
		Purpose:      "Boosts savory flavor.",
		WhoMightCare: "People sensitive to flavor enhancers.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{"flavor_enhancer", TagUltraProcessed},
	},
	{
		Name:         "yeast extract",
		PlainEnglish: "Concentrated yeast flavoring.",
		Purpose:      "Adds savory flavor.",
		WhoMightCare: "People sensitive to flavor enhancers.",
		HalalRisk:    HalalRiskPlant,
		Tags:         []string{"flavor_enhancer"},
	},
	{
		Name:         "spices",
		PlainEnglish: "Blend of seasonings.",
		Purpose:      "Adds flavor.",
		WhoMightCare: "People avoiding unspecified ingredients.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{TagUncertainSource},
	},
	{
		Name:         "enzymes",
		PlainEnglish: "Proteins that help processing.",
		Purpose:      "Aid in food production.",
		WhoMightCare: "People seeking ingredient sourcing clarity.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{TagUncertainSource},
	},
	{
		Name:         "corn starch",
		PlainEnglish: "Starch from corn.",
		Purpose:      "Thickens and stabilizes.",
		WhoMightCare: "People avoiding refined starches.",
		HalalRisk:    HalalRiskPlant,
		Tags:         []string{"stabilizer"},
	},
	{
		Name:         "tapioca starch",
		PlainEnglish: "Starch from cassava.",
		Purpose:      "Thickens and binds.",
		WhoMightCare: "People avoiding refined starches.",
		HalalRisk:    HalalRiskPlant,
		Tags:         []string{"stabilizer"},
	},
	{
		Name:         "wheat flour",
		PlainEnglish: "Ground wheat.",
		Purpose:      "Provides structure.",
		WhoMightCare: "People avoiding gluten.",
		HalalRisk:    HalalRiskPlant,
		Tags:         []string{"gluten"},
	},
	{
		Name:         "soy protein isolate",
		PlainEnglish: "Highly concentrated soy protein.",
		Purpose:      "Adds protein and texture.",
		WhoMightCare: "People avoiding soy.",
		HalalRisk:    HalalRiskPlant,
		Tags:         []string{"soy"},
	},
	{
		Name:         "palm oil",
		PlainEnglish: "Oil from palm fruit.",
		Purpose:      "Adds fat and texture.",
		WhoMightCare: "People limiting saturated fat.",
		HalalRisk:    HalalRiskPlant,
		Tags:         []string{"fat"},
	},
	{
		Name:         "canola oil",
		PlainEnglish: "Oil from canola seeds.",
		Purpose:      "Adds fat and moisture.",
		WhoMightCare: "People limiting processed oils.",
		HalalRisk:    HalalRiskPlant,
		Tags:         []string{"fat"},
	},
	{
		Name:         "sunflower oil",
		PlainEnglish: "Oil from sunflower seeds.",
		Purpose:      "Adds fat and moisture.",
		WhoMightCare: "People limiting processed oils.",
		HalalRisk:    HalalRiskPlant,
		Tags:         []string{"fat"},
	},
	{
		Name:         "coconut oil",
		PlainEnglish: "Oil from coconuts.",
		Purpose:      "Adds fat and flavor.",
		WhoMightCare: "People limiting saturated fat.",
		HalalRisk:    HalalRiskPlant,
		Tags:         []string{"fat"},
	},
	{
		Name:         "fructose",
		PlainEnglish: "A simple sugar.",
		Purpose:      "Adds sweetness.",
		WhoMightCare: "People limiting added sugar.",
		HalalRisk:    HalalRiskPlant,
		Tags:         []string{TagAddedSugar},
	},
	{
		Name:         "glucose",
		PlainEnglish: "A simple sugar.",
		Purpose:      "Adds sweetness.",
		WhoMightCare: "People limiting added sugar.",
		HalalRisk:    HalalRiskPlant,
		Tags:         []string{TagAddedSugar},
	},
	{
		Name:         "invert sugar",
		PlainEnglish: "Liquid sweetener made from sugar.",
		Purpose:      "Adds sweetness and moisture.",
		WhoMightCare: "People limiting added sugar.",
		HalalRisk:    HalalRiskPlant,
		Tags:         []string{TagAddedSugar},
	},
	{
		Name:         "brown rice syrup",
		PlainEnglish: "Sweetener from brown rice.",
		Purpose:      "Adds sweetness and texture.",
		WhoMightCare: "People limiting added sugar.",
		HalalRisk:    HalalRiskPlant,
		Tags:         []string{TagAddedSugar},
	},
	{
		Name:         "molasses",
		PlainEnglish: "Thick syrup from sugar processing.",
		Purpose:      "Adds sweetness and flavor.",
		WhoMightCare: "People limiting added sugar.",
		HalalRisk:    HalalRiskPlant,
		Tags:         []string{TagAddedSugar},
	},
	{
		Name:         "barley malt",
		PlainEnglish: "Sweetener from barley.",
		Purpose:      "Adds sweetness and flavor.",
		WhoMightCare: "People limiting added sugar.",
		HalalRisk:    HalalRiskPlant,
		Tags:         []string{TagAddedSugar, "gluten"},
	},
	{
		Name:         "cocoa",
		PlainEnglish: "Ground cacao beans.",
		Purpose:      "Adds chocolate flavor.",
		WhoMightCare: "People sensitive to caffeine-like compounds.",
		HalalRisk:    HalalRiskPlant,
		Tags:         []string{},
	},
	{
		Name:         "cocoa butter",
		PlainEnglish: "Fat from cacao beans.",
		Purpose:      "Adds texture and flavor.",
		WhoMightCare: "People limiting saturated fat.",
		HalalRisk:    HalalRiskPlant,
		Tags:         []string{"fat"},
	},
	{
		Name:         "lecithin",
		Variants:     []string{"sunflower lecithin", "soy lecithin"},
		PlainEnglish: "Emulsifier from plants.",
		Purpose:      "Keeps ingredients mixed.",
		WhoMightCare: "People avoiding soy.",
		HalalRisk:    HalalRiskPlant,
		Tags:         []string{"emulsifier"},
	},
	{
		Name:         "salt",
		Variants:     []string{"sea salt", "sodium chloride"},
		PlainEnglish: "Common seasoning.",
		Purpose:      "Adds flavor.",
		WhoMightCare: "People limiting sodium.",
		HalalRisk:    HalalRiskPlant,
		Tags:         []string{"high_sodium"},
	},
	{
		Name:         "potassium chloride",
		PlainEnglish: "Salt substitute.",
		Purpose:      "Adds salty flavor.",
		WhoMightCare: "People monitoring potassium.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{},
	},
	{
		Name:         "sodium bicarbonate",
		Variants:     []string{"baking soda"},
		PlainEnglish: "Leavening agent.",
		Purpose:      "Helps baked goods rise.",
		WhoMightCare: "People limiting sodium.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{"high_sodium"},
	},
	{
		Name:         "sodium citrate",
		PlainEnglish: "Salt of citric acid.",
		Purpose:      "Adds tang and stability.",
		WhoMightCare: "People limiting sodium.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{"high_sodium", "stabilizer"},
	},
	{
		Name:         "sorbic acid",
		PlainEnglish: "Preservative to prevent mold.",
		Purpose:      "Extends shelf life.",
		WhoMightCare: "People sensitive to preservatives.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{"preservative"},
	},
	{
		Name:         "propylene glycol",
		PlainEnglish: "Moisture-retaining agent.",
		Purpose:      "Keeps foods moist.",
		WhoMightCare: "People limiting additives.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{TagUltraProcessed},
	},
	{
		Name:         "glycerin",
		Variants:     []string{"glycerol"},
		PlainEnglish: "Sweet, moisture-retaining compound.",
		Purpose:      "Keeps foods moist.",
		WhoMightCare: "People limiting additives.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{TagUltraProcessed},
	},
	{
		Name:         "polysorbate 80",
		PlainEnglish: "Emulsifier.",
		Purpose:      "Keeps ingredients mixed.",
		WhoMightCare: "People limiting additives.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{"emulsifier", TagUltraProcessed},
	},
	{
		Name:         "sodium phosphate",
		Variants:     []string{"disodium phosphate"},
		PlainEnglish: "Salt used for stability.",
		Purpose:      "Improves texture and shelf life.",
		WhoMightCare: "People limiting additives.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{"stabilizer"},
	},
	{
		Name:         "calcium carbonate",
		PlainEnglish: "Mineral additive.",
		Purpose:      "Adds calcium or acts as anti-caking agent.",
		WhoMightCare: "People tracking mineral intake.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{"additive"},
	},
	{
		Name:         "iron",
		Variants:     []string{"reduced iron"},
		PlainEnglish: "Mineral additive.",
		Purpose:      "Adds iron.",
		WhoMightCare: "People tracking mineral intake.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{"additive"},
	},
	{
		Name:         "niacin",
		Variants:     []string{"niacinamide"},
		PlainEnglish: "Vitamin B3 additive.",
		Purpose:      "Fortification.",
		WhoMightCare: "People tracking vitamin intake.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{"additive"},
	},
	{
		Name:         "riboflavin",
		PlainEnglish: "Vitamin B2 additive.",
		Purpose:      "Fortification.",
		WhoMightCare: "People tracking vitamin intake.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{"additive"},
	},
	{
		Name:         "thiamin",
		Variants:     []string{"thiamine mononitrate"},
		PlainEnglish: "Vitamin B1 additive.",
		Purpose:      "Fortification.",
		WhoMightCare: "People tracking vitamin intake.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{"additive"},
	},
	{
		Name:         "folic acid",
		PlainEnglish: "Vitamin B9 additive.",
		Purpose:      "Fortification.",
		WhoMightCare: "People tracking vitamin intake.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{"additive"},
	},
	{
		Name:         "hydrogenated soybean oil",
		Variants:     []string{"partially hydrogenated soybean oil"},
		PlainEnglish: "Processed soybean oil.",
		Purpose:      "Improves shelf life.",
		WhoMightCare: "People avoiding trans fats.",
		HalalRisk:    HalalRiskUnknown,
		Tags:         []string{TagTransFat, TagUltraProcessed},
	},
	{
		Name:         "alcohol",
		PlainEnglish: "Ethanol-based ingredient.",
		Purpose:      "Flavor or preservation.",
		WhoMightCare: "People avoiding alcohol.",
		HalalRisk:    HalalRiskHaramKnown,
		Tags:         []string{"haram_known"},
	},
}
