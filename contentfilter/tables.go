package contentfilter

import "strings"

// Markers wrapped around nutrient-table text so downstream splitters can keep
// a table inside a single chunk.
const (
	TableStartMarker = "[NUTRIENT_TABLE_START]"
	TableEndMarker   = "[NUTRIENT_TABLE_END]"
)

// DetectNutrientTables reports whether text looks like a genuine
// nutrient-recommendation table: at least two nutrient indicators and no
// administrative disqualifier. A disqualifier always wins, whatever the
// indicator count.
func DetectNutrientTables(text string) bool {
	lower := strings.ToLower(text)
	if containsAny(lower, NutrientTableDisqualifiers) {
		return false
	}
	return countMatches(lower, NutrientTableIndicators) >= 2
}

// ExtractTableContent wraps text with table markers when it contains a
// nutrient table, and returns it unchanged otherwise. The text between the
// markers is not modified.
func ExtractTableContent(text string) string {
	if !DetectNutrientTables(text) {
		return text
	}
	return TableStartMarker + "\n" + text + "\n" + TableEndMarker
}
