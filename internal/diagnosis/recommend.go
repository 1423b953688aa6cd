package diagnosis

type recommendation struct {
	ar string
	en string
}

func (r recommendation) text(lang Language) string {
	if lang == LanguageEnglish {
		return r.en
	}
	return r.ar
}

var (
	recVisitDentist       = recommendation{ar: "زيارة طبيب الأسنان في أقرب وقت ممكن", en: "Visit a dentist as soon as possible"}
	recBrushTwiceDaily    = recommendation{ar: "تنظيف الأسنان مرتين يومياً على الأقل", en: "Brush your teeth at least twice daily"}
	recAntisepticWash     = recommendation{ar: "استخدام غسول الفم المطهر", en: "Use antiseptic mouthwash"}
	recSaltWaterRinse     = recommendation{ar: "المضمضة بالماء المالح", en: "Rinse with salt water"}
	recSensitivityPaste   = recommendation{ar: "استخدام معجون أسنان للحساسية", en: "Use sensitivity toothpaste"}
	recAvoidExtremeFoods  = recommendation{ar: "تجنب الأطعمة شديدة البرودة أو الحرارة", en: "Avoid very cold or hot foods"}
	recQuitSmoking        = recommendation{ar: "الإقلاع عن التدخين لتحسين صحة الفم", en: "Quit smoking to improve oral health"}
)

// Recommend derives care advice from the primary condition and the
// risk-factor answers. The "visit a dentist" entry is always first; the
// conditional entries keep a fixed append order so the output is stable.
func Recommend(primary Condition, answers Answers, lang Language) []string {
	recs := []string{recVisitDentist.text(lang)}

	if hygiene := answers["oral_hygiene"]; hygiene == "rarely" || hygiene == "once" {
		recs = append(recs, recBrushTwiceDaily.text(lang))
	}

	if primary == ConditionGingivitis || primary == ConditionPeriodontitis {
		recs = append(recs, recAntisepticWash.text(lang), recSaltWaterRinse.text(lang))
	}

	if primary == ConditionToothSensitivity {
		recs = append(recs, recSensitivityPaste.text(lang), recAvoidExtremeFoods.text(lang))
	}

	if smoking := answers["smoking"]; smoking != "" && smoking != "no" {
		recs = append(recs, recQuitSmoking.text(lang))
	}

	return recs
}
