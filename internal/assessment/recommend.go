package assessment

// dietGlucoseTriggers are the glucose codes that add the glucose-specific
// diet lines.
var dietGlucoseTriggers = map[GlucoseCode]bool{
	GlucoseImpairedFasting: true,
	GlucoseDiabetesFasting: true,
	GlucosePostMealHigh:    true,
}

// dietLipidTriggers are the lipid flag codes that add the lipid-specific
// diet lines. An isolated low-HDL flag does not trigger them.
var dietLipidTriggers = map[FlagCode]bool{
	FlagTotalCholHigh: true,
	FlagLDLHigh:       true,
	FlagLDLBorderline: true,
	FlagTrigHigh:      true,
}

// exerciseGlucoseTriggers are the glucose codes that add the post-meal
// walk line.
var exerciseGlucoseTriggers = map[GlucoseCode]bool{
	GlucoseImpairedFasting: true,
	GlucoseDiabetesFasting: true,
}

// RecommendDiet produces ordered, actionable diet guidance: one calorie
// strategy block by BMI category, optional glucose and lipid blocks, then
// the fixed general tips. Order is significant; the report renders items
// as given. Age and sex are informational only.
func RecommendDiet(age int, sex string, cat BMICategory, glucose GlucoseInterpretation, lipidFlags []Flag) []string {
	var recs []string
	switch cat {
	case BMIUnderweight:
		recs = append(recs,
			"Increase daily calories by ~300-500 kcal with nutrient-dense foods; consider 3 meals + 2 snacks.",
			"Focus on protein (1.2–1.6 g/kg body weight) to support lean mass gain.")
	case BMINormal:
		recs = append(recs,
			"Maintain weight: balanced plate (~45–55% carbs, 20–25% protein, 25–35% fat).",
			"Emphasize whole grains, legumes, lean proteins, and varied vegetables.")
	case BMIOverweight:
		recs = append(recs,
			"Aim for modest calorie deficit (≈300–500 kcal/day) with high-protein meals (≥1.0 g/kg).",
			"Prefer low-GI carbs, increase fiber to 25–35 g/day, avoid sugar-sweetened beverages.")
	default: // Obesity
		recs = append(recs,
			"Structured weight-loss plan: 500–750 kcal/day deficit; aim for ~0.5–1 kg/week weight loss.",
			"Consider referral to dietitian for individualized plan; assess for pharmacotherapy/surgery if appropriate.")
	}

	if dietGlucoseTriggers[glucose.Code] {
		recs = append(recs,
			"Low-GI meals, portion control, spread carbs evenly; check HbA1c and fasting glucose.",
			"Consider carbohydrate counting; prioritize non-starchy vegetables and lean protein with each meal.")
	}

	if anyLipidDietTrigger(lipidFlags) {
		recs = append(recs,
			"Reduce saturated fats (<7% total kcal if high LDL), avoid trans fats, increase soluble fiber (oats, legumes).",
			"Include omega-3 sources (fatty fish 2x/week) or consider omega-3 prescription if triglycerides very high.")
	}

	recs = append(recs,
		"Aim for balanced plate: 1/2 vegetables, 1/4 lean protein, 1/4 whole grains; snack on nuts, yogurt, fruits.",
		"Starter 7-day micro-plan: alternate lean protein + veg + whole grain; include 2 fish meals; 2-3 plant-based meals; limit processed foods.")
	return recs
}

func anyLipidDietTrigger(flags []Flag) bool {
	for _, f := range flags {
		if dietLipidTriggers[f.Code] {
			return true
		}
	}
	return false
}

// RecommendExercise produces ordered exercise guidance. A hypertensive
// crisis short-circuits to a single urgent-referral line. For overweight
// and obese categories the low-impact starter line is inserted at the
// front of the list, ahead of the aerobic and strength baselines.
func RecommendExercise(age int, cat BMICategory, bp BPClassification, glucose GlucoseInterpretation) []string {
	if bp == BPCrisis {
		return []string{"Emergency BP: get urgent medical review before starting/exercising."}
	}

	recs := []string{
		"Aerobic target: work up to 150–300 min/week moderate-intensity or 75–150 min vigorous-intensity (per WHO).",
		"Strength training: 2–3 sessions/week, full-body compound exercises (progressive overload).",
	}
	if cat == BMIOverweight || cat == BMIObesity {
		recs = append([]string{"Start with low-impact cardio (walking, cycling, swimming) 3×/week, 20–30 min; increase duration before intensity."}, recs...)
	}
	if exerciseGlucoseTriggers[glucose.Code] {
		recs = append(recs, "Post-meal walks (10–15 min) can help blunt glucose spikes; monitor pre/post exercise glucose if on medications.")
	}
	recs = append(recs,
		"4-week starter: Week1 walk 20 min ×3; Week2 add 2× strength (bodyweight); Week3 increase walk to 30 min and add interval sessions; Week4 add heavier resistance.",
		"Monitor symptoms: chest pain, severe breathlessness, dizziness — stop and seek care. Reassess BP/glucose after beginning program.")
	return recs
}

// Followups lists further-evaluation suggestions for abnormal findings
// that do not rise to an emergency. Order: lipids, glucose, CBC.
func Followups(lipidFlags []Flag, glucose GlucoseInterpretation, cbcFlags []Flag) []string {
	var out []string
	if len(lipidFlags) > 0 {
		out = append(out, "Repeat fasting lipid profile; if LDL high discuss statin therapy based on risk.")
	}
	if glucose.Code == GlucoseImpairedFasting || glucose.Code == GlucoseDiabetesFasting {
		out = append(out, "Order HbA1c and fasting glucose tests; consider endocrinology if abnormal.")
	}
	if len(cbcFlags) > 0 {
		out = append(out, "Repeat CBC and consider iron studies/ferritin if anemia suspected.")
	}
	return out
}
