package contentfilter

import "strings"

// DocumentType classifies a whole document from its manifest id.
type DocumentType string

const (
	DocTypeCoreGuideline    DocumentType = "core_guideline"
	DocTypeNutrientSpecific DocumentType = "nutrient_specific"
	DocTypeSummary          DocumentType = "summary"
)

var nutrientDocTerms = []string{"nutrient", "sodium", "sugar", "fat", "vitamin"}

// ClassifyDocumentType derives the document type from a manifest id.
// Nutrient-specific terms take precedence over summary terms.
func ClassifyDocumentType(id string) DocumentType {
	lower := strings.ToLower(id)
	if containsAny(lower, nutrientDocTerms) {
		return DocTypeNutrientSpecific
	}
	if strings.Contains(lower, "summary") || strings.Contains(lower, "executive") {
		return DocTypeSummary
	}
	return DocTypeCoreGuideline
}

// SafetyLevel gates how downstream systems may present a chunk.
type SafetyLevel string

const (
	SafetyAdministrative      SafetyLevel = "administrative"
	SafetyGeneral             SafetyLevel = "general"
	SafetyMedicalCaution      SafetyLevel = "medical_caution"
	SafetyProfessionalUseOnly SafetyLevel = "professional_use_only"
)

// ClassifySafety assigns the safety level for one admitted page.
// minNutrition is the same nutrition-keyword cutoff the admission policy
// uses, so the two gates cannot disagree on what counts as low signal.
// Precedence, first applicable wins: low nutrition signal is administrative;
// otherwise start at general, escalate to medical_caution on a medical
// trigger, and escalate again to professional_use_only on a professional
// trigger. A professional trigger always wins over a medical one.
func ClassifySafety(text string, nutritionCount, minNutrition int) SafetyLevel {
	if nutritionCount < minNutrition {
		return SafetyAdministrative
	}

	lower := strings.ToLower(text)
	level := SafetyGeneral
	if containsAny(lower, MedicalTriggers) {
		level = SafetyMedicalCaution
	}
	if containsAny(lower, ProfessionalTriggers) {
		level = SafetyProfessionalUseOnly
	}
	return level
}
