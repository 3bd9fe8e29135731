package contentfilter

import (
	"strings"
	"testing"
)

func TestDetectNutrientTables(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			"real nutrient table",
			"Calcium 1000 mg daily value, potassium 4700 mg daily value",
			true,
		},
		{
			"single indicator",
			"Calcium is found in milk and cheese",
			false,
		},
		{
			"no indicators",
			"General advice about balanced meals",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectNutrientTables(tt.text); got != tt.want {
				t.Errorf("DetectNutrientTables(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectNutrientTables_DisqualifierWins(t *testing.T) {
	// WHAT: A single disqualifier rejects even indicator-rich text.
	// WHY: Contents pages list nutrient terms without being nutrient tables.
	text := "Appendix 3: calcium, potassium, fiber, vitamin d, daily value"
	if DetectNutrientTables(text) {
		t.Error("disqualifier must win over nutrient indicators")
	}
}

func TestExtractTableContent(t *testing.T) {
	table := "Calcium 1000 mg daily value, fiber 28 g daily value"
	wrapped := ExtractTableContent(table)
	if !strings.HasPrefix(wrapped, TableStartMarker+"\n") {
		t.Errorf("missing start marker: %q", wrapped)
	}
	if !strings.HasSuffix(wrapped, "\n"+TableEndMarker) {
		t.Errorf("missing end marker: %q", wrapped)
	}
	if !strings.Contains(wrapped, table) {
		t.Error("original text must be preserved unmodified between markers")
	}

	plain := "No table here"
	if got := ExtractTableContent(plain); got != plain {
		t.Errorf("non-table text changed: %q", got)
	}
}
