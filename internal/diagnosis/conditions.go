// Package diagnosis implements the local questionnaire-based dental
// diagnosis pipeline: scoring, ranking, condition descriptions,
// recommendations and urgency triage. Everything in this package is pure
// and deterministic; the remote AI provider and its fallback policy live
// in the application layer.
package diagnosis

// Condition is one of the fixed dental condition categories the scorer
// can suggest.
type Condition string

const (
	ConditionDentalCaries     Condition = "dental_caries"
	ConditionGingivitis       Condition = "gingivitis"
	ConditionToothSensitivity Condition = "tooth_sensitivity"
	ConditionRootCanal        Condition = "root_canal"
	ConditionExtraction       Condition = "extraction"
	ConditionOrthodontic      Condition = "orthodontic"
	ConditionCosmetic         Condition = "cosmetic"
	ConditionImplant          Condition = "implant"
	ConditionPediatric        Condition = "pediatric"
	ConditionPeriodontitis    Condition = "periodontitis"
	ConditionDentures         Condition = "dentures"
	ConditionCrowns           Condition = "crowns"
)

// AllConditions lists every condition in declaration order. The ranker
// relies on this order as the tie-break, so it must stay stable.
var AllConditions = []Condition{
	ConditionDentalCaries,
	ConditionGingivitis,
	ConditionToothSensitivity,
	ConditionRootCanal,
	ConditionExtraction,
	ConditionOrthodontic,
	ConditionCosmetic,
	ConditionImplant,
	ConditionPediatric,
	ConditionPeriodontitis,
	ConditionDentures,
	ConditionCrowns,
}

// Language selects which string set bilingual lookups return.
type Language string

const (
	LanguageArabic  Language = "ar"
	LanguageEnglish Language = "en"
)

// NormalizeLanguage maps a request language tag to a supported language.
// Arabic is the portal default.
func NormalizeLanguage(tag string) Language {
	if tag == string(LanguageEnglish) {
		return LanguageEnglish
	}
	return LanguageArabic
}

// Details holds the bilingual display name and description of a condition.
type Details struct {
	NameAr string
	NameEn string
	DescAr string
	DescEn string
}

// Name returns the display name for the given language.
func (d Details) Name(lang Language) string {
	if lang == LanguageEnglish {
		return d.NameEn
	}
	return d.NameAr
}

// Description returns the description for the given language.
func (d Details) Description(lang Language) string {
	if lang == LanguageEnglish {
		return d.DescEn
	}
	return d.DescAr
}

var conditionDetails = map[Condition]Details{
	ConditionDentalCaries:     {NameAr: "تسوس الأسنان", NameEn: "Dental Caries", DescAr: "تسوس يحتاج إلى حشو أو علاج تحفظي", DescEn: "Cavity requiring filling or conservative treatment"},
	ConditionGingivitis:       {NameAr: "التهاب اللثة", NameEn: "Gingivitis", DescAr: "التهاب في اللثة يمكن علاجه بالتنظيف", DescEn: "Gum inflammation treatable with cleaning"},
	ConditionToothSensitivity: {NameAr: "حساسية الأسنان", NameEn: "Tooth Sensitivity", DescAr: "حساسية للبرودة والحرارة", DescEn: "Sensitivity to cold and heat"},
	ConditionRootCanal:        {NameAr: "علاج العصب", NameEn: "Root Canal", DescAr: "يحتاج إلى علاج عصب السن", DescEn: "Requires root canal treatment"},
	ConditionExtraction:       {NameAr: "خلع الأسنان", NameEn: "Tooth Extraction", DescAr: "قد يحتاج السن إلى الخلع", DescEn: "Tooth may need extraction"},
	ConditionOrthodontic:      {NameAr: "تقويم الأسنان", NameEn: "Orthodontics", DescAr: "يحتاج إلى تقويم لترتيب الأسنان", DescEn: "Needs braces for teeth alignment"},
	ConditionCosmetic:         {NameAr: "تجميل الأسنان", NameEn: "Cosmetic Dentistry", DescAr: "إجراءات تجميلية لتحسين المظهر", DescEn: "Cosmetic procedures to improve appearance"},
	ConditionImplant:          {NameAr: "زراعة الأسنان", NameEn: "Dental Implant", DescAr: "زراعة لتعويض الأسنان المفقودة", DescEn: "Implant to replace missing teeth"},
	ConditionPediatric:        {NameAr: "أسنان الأطفال", NameEn: "Pediatric Dentistry", DescAr: "رعاية أسنان خاصة بالأطفال", DescEn: "Special dental care for children"},
	ConditionPeriodontitis:    {NameAr: "أمراض اللثة المتقدمة", NameEn: "Periodontitis", DescAr: "التهاب متقدم في اللثة يحتاج علاج متخصص", DescEn: "Advanced gum disease requiring specialized treatment"},
	ConditionDentures:         {NameAr: "أطقم الأسنان", NameEn: "Dentures", DescAr: "تركيبات متحركة لتعويض الأسنان", DescEn: "Removable prosthetics to replace teeth"},
	ConditionCrowns:           {NameAr: "التيجان", NameEn: "Crowns", DescAr: "تيجان ثابتة لحماية الأسنان", DescEn: "Fixed crowns to protect teeth"},
}

// Describe returns the bilingual details for a condition. Unknown keys
// fall back to the dental caries entry rather than erroring, matching the
// portal's lenient handling of provider output.
func Describe(c Condition) Details {
	if d, ok := conditionDetails[c]; ok {
		return d
	}
	return conditionDetails[ConditionDentalCaries]
}

// ClinicSuggestion is the specialty clinic a condition maps to.
type ClinicSuggestion struct {
	ID     string
	NameAr string
	NameEn string
}

// Name returns the clinic name for the given language.
func (c ClinicSuggestion) Name(lang Language) string {
	if lang == LanguageEnglish {
		return c.NameEn
	}
	return c.NameAr
}

var clinicByCondition = map[Condition]ClinicSuggestion{
	ConditionDentalCaries:     {ID: "conservative", NameAr: "العلاج التحفظي", NameEn: "Conservative Treatment"},
	ConditionGingivitis:       {ID: "gums", NameAr: "علاج اللثة", NameEn: "Gum Treatment"},
	ConditionToothSensitivity: {ID: "conservative", NameAr: "العلاج التحفظي", NameEn: "Conservative Treatment"},
	ConditionRootCanal:        {ID: "conservative", NameAr: "العلاج التحفظي", NameEn: "Conservative Treatment"},
	ConditionExtraction:       {ID: "surgery", NameAr: "جراحة الفم", NameEn: "Oral Surgery"},
	ConditionOrthodontic:      {ID: "orthodontics", NameAr: "تقويم الأسنان", NameEn: "Orthodontics"},
	ConditionCosmetic:         {ID: "cosmetic", NameAr: "تجميل الأسنان", NameEn: "Cosmetic Dentistry"},
	ConditionImplant:          {ID: "implants", NameAr: "زراعة الأسنان", NameEn: "Dental Implants"},
	ConditionPediatric:        {ID: "pediatric", NameAr: "أسنان الأطفال", NameEn: "Pediatric Dentistry"},
	ConditionPeriodontitis:    {ID: "gums", NameAr: "علاج اللثة", NameEn: "Gum Treatment"},
	ConditionDentures:         {ID: "removable", NameAr: "التركيبات المتحركة", NameEn: "Removable Prosthetics"},
	ConditionCrowns:           {ID: "fixed", NameAr: "التركيبات الثابتة", NameEn: "Fixed Prosthetics"},
}

// SuggestClinic maps a condition to the clinic that treats it. Unknown
// keys fall back to the conservative treatment clinic.
func SuggestClinic(c Condition) ClinicSuggestion {
	if s, ok := clinicByCondition[c]; ok {
		return s
	}
	return clinicByCondition[ConditionDentalCaries]
}

// EstimatedTreatmentTime returns the placeholder treatment time estimate
// shown with every result.
func EstimatedTreatmentTime(lang Language) string {
	if lang == LanguageEnglish {
		return "30-45 minutes"
	}
	return "30-45 دقيقة"
}
