package contentfilter

import (
	"sort"
	"strings"
	"testing"
)

const nutritionRich = "Sodium daily value 2300 mg limit consume dietary guideline recommendation"

func TestNutritionKeywordCount(t *testing.T) {
	if n := NutritionKeywordCount(nutritionRich); n < 3 {
		t.Errorf("count = %d, want >= 3", n)
	}
	if n := NutritionKeywordCount("nothing relevant here"); n != 0 {
		t.Errorf("count = %d, want 0", n)
	}
}

func TestIsLowValuePage_Empty(t *testing.T) {
	p := DefaultPolicy()
	if !p.IsLowValuePage("", 42, 100, 0) {
		t.Error("empty page should be low value")
	}
	if !p.IsLowValuePage("   \n\t  ", 42, 100, 0) {
		t.Error("whitespace-only page should be low value")
	}
}

func TestIsLowValuePage_EarlyAdminPage(t *testing.T) {
	// WHAT: A single admin-pattern hit rejects pages 1-15.
	// WHY: USDA documents front-load boilerplate in the first ~15 pages.
	p := DefaultPolicy()
	text := "Table of Contents ... Introduction ... page iv " + nutritionRich
	if !p.IsLowValuePage(text, 3, 100, NutritionKeywordCount(text)) {
		t.Error("admin pattern on page 3 should be low value")
	}
	// The same admin pattern past the limit is only caught by the TOC rule,
	// which needs both "page" and a low word count.
	long := "appendix " + strings.Repeat(nutritionRich+" ", 80)
	if p.IsLowValuePage(long, 40, 100, NutritionKeywordCount(long)) {
		t.Error("admin pattern alone should not reject a late content page")
	}
}

func TestIsLowValuePage_EarlyLowSignal(t *testing.T) {
	p := DefaultPolicy()
	text := "General introduction to healthy eating habits for everyone."
	n := NutritionKeywordCount(text)
	if n >= 3 {
		t.Fatalf("fixture has %d keywords, want < 3", n)
	}
	if !p.IsLowValuePage(text, 18, 100, n) {
		t.Error("low-signal page 18 should be low value")
	}
	if p.IsLowValuePage(text, 21, 100, n) {
		t.Error("low-signal page 21 should be admitted")
	}
}

func TestIsLowValuePage_TOCAnywhere(t *testing.T) {
	p := DefaultPolicy()
	text := "Table of contents: sodium page 3, sugar page 9, vitamin d page 12"
	if !p.IsLowValuePage(text, 50, 100, NutritionKeywordCount(text)) {
		t.Error("short contents page should be low value at any page number")
	}
}

func TestIsLowValuePage_Copyright(t *testing.T) {
	p := DefaultPolicy()
	for _, text := range []string{
		"Copyright 2020 USDA. All rights reserved. Sodium sugar vitamin mineral dietary.",
		"© 2020 World Health Organization. All rights reserved. Sodium sugar vitamin mineral dietary.",
	} {
		if !p.IsLowValuePage(text, 60, 100, NutritionKeywordCount(text)) {
			t.Errorf("short copyright page should be low value: %q", text)
		}
	}
}

func TestIsLowValuePage_LateContentAdmitted(t *testing.T) {
	// WHAT: Pages past the early-page limits with real nutrition signal pass.
	// WHY: The admission gate must not eat actual guideline content.
	p := DefaultPolicy()
	text := strings.Repeat(nutritionRich+" ", 10)
	n := NutritionKeywordCount(text)
	if n < 3 {
		t.Fatalf("fixture has %d keywords, want >= 3", n)
	}
	if p.IsLowValuePage(text, 21, 100, n) {
		t.Error("nutrition-rich page 21 should be admitted")
	}
	if p.IsLowValuePage(text, 99, 100, n) {
		t.Error("nutrition-rich page 99 should be admitted")
	}
}

func TestDetectLifeStages(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"pregnancy", "Folate intake during pregnancy is critical", []string{StagePregnant}},
		{"breastfeeding", "During lactation calcium needs rise", []string{StageBreastfeeding}},
		{"infants", "Newborn feeding patterns differ", []string{StageInfants}},
		{"children", "Toddler portion sizes should be smaller", []string{StageChildrenTeens}},
		{"adults", "Adults should limit sodium intake", []string{StageAdults}},
		{"older adults", "Older adults need more vitamin D", []string{StageOlderAdults}},
		{"athletes", "Endurance athletes need extra carbohydrates", []string{StageAthletes}},
		{"none", "Sodium content of processed foods", []string{StageGeneral}},
		{
			"multiple",
			"Pregnant women and their infants benefit from adequate iodine",
			[]string{StagePregnant, StageInfants},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectLifeStages(tt.text)
			sort.Strings(got)
			want := append([]string(nil), tt.want...)
			sort.Strings(want)
			if len(got) != len(want) {
				t.Fatalf("DetectLifeStages() = %v, want %v", got, want)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("DetectLifeStages() = %v, want %v", got, want)
				}
			}
		})
	}
}

func TestDetectLifeStages_AdultPairExclusive(t *testing.T) {
	// WHAT: adults and older_adults never co-occur.
	// WHY: An aging term flips the whole pair to older_adults.
	got := DetectLifeStages("Adults over 65+ and other seniors")
	hasAdults, hasOlder := false, false
	for _, s := range got {
		if s == StageAdults {
			hasAdults = true
		}
		if s == StageOlderAdults {
			hasOlder = true
		}
	}
	if hasAdults || !hasOlder {
		t.Errorf("got %v, want older_adults only within the adult pair", got)
	}
}

func TestDetectLifeStages_NeverEmpty(t *testing.T) {
	if got := DetectLifeStages(""); len(got) != 1 || got[0] != StageGeneral {
		t.Errorf("empty text = %v, want [general]", got)
	}
}
