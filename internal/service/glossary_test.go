package service_test

import (
	"testing"

	"github.com/wimf/labelscan/internal/service"
)

func TestFindGlossaryMatchIsCaseInsensitiveSubstring(t *testing.T) {
	t.Parallel()
	entry := service.FindGlossaryMatch("Organic Cane Sugar")
	if entry == nil {
		t.Fatalf("expected a match for cane sugar")
	}
	if entry.Name != "sugar" {
		t.Fatalf("expected sugar entry, got %q", entry.Name)
	}
	if !entry.HasTag(service.TagAddedSugar) {
		t.Fatalf("expected added_sugar tag on %+v", entry)
	}
}

func TestFindGlossaryMatchVariants(t *testing.T) {
	t.Parallel()
	entry := service.FindGlossaryMatch("HFCS")
	if entry == nil || entry.Name != "high fructose corn syrup" {
		t.Fatalf("expected hfcs variant to match, got %+v", entry)
	}
}

func TestFindGlossaryMatchTableOrderIsPrecedence(t *testing.T) {
	t.Parallel()
	// "high fructose corn syrup" contains both the hfcs entry and the
	// plain corn syrup entry; the earlier entry must win.
	entry := service.FindGlossaryMatch("High Fructose Corn Syrup")
	if entry == nil || entry.Name != "high fructose corn syrup" {
		t.Fatalf("expected first-listed entry to win, got %+v", entry)
	}
}

func TestFindGlossaryMatchUnknownIngredient(t *testing.T) {
	t.Parallel()
	if entry := service.FindGlossaryMatch("Quinoa"); entry != nil {
		t.Fatalf("expected no match, got %+v", entry)
	}
}

func TestGlossaryHalalRiskAssignments(t *testing.T) {
	t.Parallel()
	cases := []struct {
		ingredient string
		risk       service.HalalRisk
	}{
		{"Gelatin", service.HalalRiskAnimal},
		{"Pork", service.HalalRiskAnimal},
		{"Natural Flavors", service.HalalRiskUnknown},
		{"Citric Acid", service.HalalRiskPlant},
		{"Alcohol", service.HalalRiskHaramKnown},
	}
	for _, c := range cases {
		entry := service.FindGlossaryMatch(c.ingredient)
		if entry == nil {
			t.Fatalf("expected match for %q", c.ingredient)
		}
		if entry.HalalRisk != c.risk {
			t.Fatalf("%q: expected risk %q, got %q", c.ingredient, c.risk, entry.HalalRisk)
		}
	}
}
