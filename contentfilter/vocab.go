package contentfilter

// Keyword tables are plain data so thresholds and terms can be tuned and
// tested independently of control flow. All matching against these tables is
// case-insensitive substring search; no tokenization or stemming.

// NutritionVocabulary are terms indicating actual nutrition content. The
// per-page count of these terms drives admission, life-stage scanning and
// safety classification.
var NutritionVocabulary = []string{
	"guideline", "recommendation", "serving", "daily value", "mg", "gram",
	"sodium", "sugar", "fat", "vitamin", "mineral", "calorie", "dietary",
	"food group", "vegetable", "fruit", "dairy", "protein", "grain",
	"pregnant", "infant", "child", "adult", "elderly", "limit", "consume",
	"adequate intake", "tolerable upper", "reference value", "dietary allowance",
}

// AdminPatterns mark administrative front matter in USDA/WHO publications.
// A single hit on an early page is enough to reject it.
var AdminPatterns = []string{
	"table of contents", "message from the secretaries", "acknowledgments",
	"appendix", "bibliography", "references", "about this edition",
	"how to use this document", "part", "chapter", "section", "figure",
	"suggested citation", "dietaryguidelines.gov", "isbn",
	"printed in the united states", "government printing office",
	"library of congress", "executive summary", "key recommendations",
	"page x", "page xi", "page xii",
}

// NutrientTableIndicators identify genuine nutrient-recommendation tables.
var NutrientTableIndicators = []string{
	"daily value", "dv%", "recommended intake", "adequate intake",
	"tolerable upper intake level", "ul", "ai", "rda",
	"food sources of", "milligrams per day", "grams per day",
	"sodium recommendation", "sugar recommendation", "fat recommendation",
	"vitamin d", "calcium", "potassium", "fiber", "nutrient",
}

// NutrientTableDisqualifiers mark administrative tables (contents, figure
// lists). Any hit disqualifies the page as a nutrient table.
var NutrientTableDisqualifiers = []string{
	"table of contents", "figure", "appendix", "bibliography",
	"references", "acknowledgments", "contributors", "reviewers",
	"chapter", "section", "part", "page number",
}

// MedicalTriggers escalate a chunk to the medical_caution safety level.
var MedicalTriggers = []string{
	"pregnant", "breastfeed", "infant", "medical condition",
	"disease", "disorder", "illness",
}

// ProfessionalTriggers escalate a chunk to professional_use_only. They take
// precedence over MedicalTriggers.
var ProfessionalTriggers = []string{
	"professional use only", "healthcare provider", "clinician",
	"prescribe", "diagnose", "treat",
}

// Life-stage term sets, each evaluated independently.
var (
	pregnancyTerms     = []string{"pregnant", "pregnancy", "maternal", "antenatal"}
	breastfeedingTerms = []string{"breastfeed", "lactation", "breast milk"}
	infantTerms        = []string{"infant", "baby", "birth", "newborn", "0-12 months"}
	childTerms         = []string{"child", "children", "adolescent", "teen", "toddler", "preschool"}
	adultTerms         = []string{"adult", "adults", "middle aged"}
	agingTerms         = []string{"older", "elderly", "senior", "65+", "aging"}
	athleteTerms       = []string{"athlete", "sports"}
)

// ValidatorAdminVocabulary is the second-pass admin vocabulary used by the
// corpus validator. Deliberately distinct from AdminPatterns: it targets
// publication/citation boilerplate that survives page-level filtering.
var ValidatorAdminVocabulary = []string{
	"citation", "downloaded", "publication", "printed", "isbn",
	"government printing", "congress", "copyright", "reserved",
	"acknowledgments", "funding", "contract", "prepared by",
	"submitted to", "drafted by", "suggested citation", "dietaryguidelines.gov",
}
