// Package contentfilter decides which pages of a nutrition-guideline PDF are
// worth keeping and tags the survivors with demographic and safety metadata.
//
// All decisions are pure functions over page text plus a few counters, so the
// package has no I/O and no logger. Matching is case-insensitive substring
// search throughout; upgrading to fuzzy matching would change admission
// behaviour and must be treated as a policy change.
package contentfilter

import "strings"

// Policy holds the empirically tuned admission cutoffs. Official guideline
// PDFs front-load non-substantive material in their first 15-20 pages; the
// numbers are policy, not exact science.
type Policy struct {
	// AdminPageLimit is the page number up to which a single admin-pattern
	// hit rejects the page.
	AdminPageLimit int
	// KeywordPageLimit is the page number up to which pages need at least
	// MinNutritionKeywords to survive.
	KeywordPageLimit int
	// MinNutritionKeywords is the nutrition-keyword count below which an
	// early page is considered low-signal.
	MinNutritionKeywords int
	// TOCWordLimit is the word count under which a contents-like page is
	// rejected anywhere in the document.
	TOCWordLimit int
	// CopyrightWordLimit is the word count under which a copyright-like
	// page is rejected anywhere in the document.
	CopyrightWordLimit int
}

// DefaultPolicy returns the cutoffs tuned against USDA/WHO publications.
func DefaultPolicy() Policy {
	return Policy{
		AdminPageLimit:       15,
		KeywordPageLimit:     20,
		MinNutritionKeywords: 3,
		TOCWordLimit:         500,
		CopyrightWordLimit:   300,
	}
}

// NutritionKeywordCount returns how many nutrition vocabulary terms occur in
// text. Each term counts once regardless of how often it repeats.
func NutritionKeywordCount(text string) int {
	return countMatches(strings.ToLower(text), NutritionVocabulary)
}

// IsLowValuePage reports whether a page should be dropped before
// classification. Rules are evaluated in order, first match wins:
// empty page, admin pattern on an early page, insufficient nutrition signal
// on an early page, table-of-contents shape, copyright-notice shape.
func (p Policy) IsLowValuePage(text string, pageNum, totalPages, nutritionCount int) bool {
	if strings.TrimSpace(text) == "" {
		return true
	}

	lower := strings.ToLower(strings.TrimSpace(text))
	wordCount := len(strings.Fields(lower))

	if pageNum <= p.AdminPageLimit && countMatches(lower, AdminPatterns) >= 1 {
		return true
	}

	if pageNum <= p.KeywordPageLimit && nutritionCount < p.MinNutritionKeywords {
		return true
	}

	if strings.Contains(lower, "table of contents") && strings.Contains(lower, "page") && wordCount < p.TOCWordLimit {
		return true
	}

	if (strings.Contains(lower, "copyright") || strings.Contains(lower, "©")) &&
		strings.Contains(lower, "reserved") && wordCount < p.CopyrightWordLimit {
		return true
	}

	return false
}

// Life-stage tags attached to chunks. Multiple tags may apply to one page;
// adults and older_adults are mutually exclusive.
const (
	StagePregnant      = "pregnant"
	StageBreastfeeding = "breastfeeding"
	StageInfants       = "infants"
	StageChildrenTeens = "children_teens"
	StageAdults        = "adults"
	StageOlderAdults   = "older_adults"
	StageAthletes      = "athletes"
	StageGeneral       = "general"
)

// DetectLifeStages returns the life-stage tags mentioned in text, or
// ["general"] when nothing matches. Callers should only invoke this on pages
// with enough nutrition signal; low-signal pages produce false tags.
func DetectLifeStages(text string) []string {
	lower := strings.ToLower(text)
	var stages []string

	if containsAny(lower, pregnancyTerms) {
		stages = append(stages, StagePregnant)
	}
	if containsAny(lower, breastfeedingTerms) {
		stages = append(stages, StageBreastfeeding)
	}
	if containsAny(lower, infantTerms) {
		stages = append(stages, StageInfants)
	}
	if containsAny(lower, childTerms) {
		stages = append(stages, StageChildrenTeens)
	}
	if containsAny(lower, adultTerms) {
		if containsAny(lower, agingTerms) {
			stages = append(stages, StageOlderAdults)
		} else {
			stages = append(stages, StageAdults)
		}
	}
	if containsAny(lower, athleteTerms) {
		stages = append(stages, StageAthletes)
	}

	if len(stages) == 0 {
		return []string{StageGeneral}
	}
	return stages
}

func countMatches(lower string, terms []string) int {
	n := 0
	for _, t := range terms {
		if strings.Contains(lower, t) {
			n++
		}
	}
	return n
}

func containsAny(lower string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}
