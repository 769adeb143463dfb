package assessment

import (
	"strings"

	"github.com/healthassist/healthassist/internal/norms"
)

// Non-fasting glucose cutoffs in mg/dL. These buckets are fixed and do
// not come from the norms table.
const (
	postMealSevereHypo = 54
	postMealHypo       = 70
	postMealNormal     = 140
	postMealHigh       = 200
)

// CalculateBMI returns weight(kg) / height(m)^2. A non-positive height is
// a degenerate input, not an error: the sentinel 0 is returned.
func CalculateBMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	m := heightCm / 100
	return weightKg / (m * m)
}

// ClassifyBMI maps a BMI value onto the four categories. Band upper
// bounds are inclusive: ties go to the lower-severity band.
func ClassifyBMI(bmi float64, t norms.Table) BMICategory {
	switch {
	case bmi < t.BMI.Underweight:
		return BMIUnderweight
	case bmi <= t.BMI.NormalUpper:
		return BMINormal
	case bmi <= t.BMI.Overweight:
		return BMIOverweight
	default:
		return BMIObesity
	}
}

// ClassifyBP runs the stage cascade most severe first; the first match
// wins. The elevated rule intentionally requires a below-cutoff diastolic
// (AND, unlike the OR stages above it) so that an isolated high systolic
// with normal diastolic still reads as elevated only.
func ClassifyBP(systolic, diastolic int, t norms.Table) BPClassification {
	bp := t.BP
	switch {
	case systolic >= bp.Crisis.Systolic || diastolic >= bp.Crisis.Diastolic:
		return BPCrisis
	case systolic >= bp.Stage2.Systolic || diastolic >= bp.Stage2.Diastolic:
		return BPStage2
	case systolic >= bp.Stage1.Systolic || diastolic >= bp.Stage1.Diastolic:
		return BPStage1
	case systolic >= bp.Elevated.Systolic && diastolic < bp.Elevated.Diastolic:
		return BPElevated
	default:
		return BPNormal
	}
}

// InterpretGlucose classifies a glucose reading. Any context starting
// with "fast" (case-insensitive) selects the fasting ladder from the
// norms table; everything else uses the fixed non-fasting buckets.
func InterpretGlucose(glucose float64, context string, t norms.Table) GlucoseInterpretation {
	ctx := strings.ToLower(strings.TrimSpace(context))
	if strings.HasPrefix(ctx, "fast") {
		g := t.Glucose
		switch {
		case glucose < g.SevereHypoglycemia:
			return GlucoseInterpretation{Code: GlucoseSevereHypo, Label: "Severe hypoglycemia"}
		case glucose < g.Hypoglycemia:
			return GlucoseInterpretation{Code: GlucoseHypo, Label: "Low (hypoglycemia)"}
		case glucose <= g.NormalFastingUpper:
			return GlucoseInterpretation{Code: GlucoseNormalFasting, Label: "Normal fasting"}
		case glucose < g.DiabetesFasting:
			return GlucoseInterpretation{Code: GlucoseImpairedFasting, Label: "Impaired fasting (prediabetes)"}
		default:
			return GlucoseInterpretation{Code: GlucoseDiabetesFasting, Label: "Diabetes-range fasting"}
		}
	}
	switch {
	case glucose < postMealSevereHypo:
		return GlucoseInterpretation{Code: GlucoseSevereHypo, Label: "Severe hypoglycemia"}
	case glucose < postMealHypo:
		return GlucoseInterpretation{Code: GlucoseHypo, Label: "Low (hypoglycemia)"}
	case glucose < postMealNormal:
		return GlucoseInterpretation{Code: GlucosePostMealNormal, Label: "Normal (post-meal)"}
	case glucose < postMealHigh:
		return GlucoseInterpretation{Code: GlucosePostMealHigh, Label: "High (post-meal) — consider fasting test"}
	default:
		return GlucoseInterpretation{Code: GlucosePostMealVeryHigh, Label: "Very high (post-meal) — diabetes likely"}
	}
}

// CBCFlags runs the three independent CBC checks. Each check is a
// first-match cascade, so at most one flag per measurement, appended in
// hemoglobin, WBC, platelets order.
func CBCFlags(hemoglobin, wbc, platelets float64) []Flag {
	var flags []Flag
	if hemoglobin < 8.0 {
		flags = append(flags, Flag{
			Code:     FlagHemoglobinSevere,
			Severity: SeverityCritical,
			Text:     "Severely low hemoglobin — urgent evaluation needed",
		})
	} else if hemoglobin < 12.0 {
		flags = append(flags, Flag{
			Code:     FlagHemoglobinLow,
			Severity: SeverityWarning,
			Text:     "Low hemoglobin — possible anemia; consider iron studies",
		})
	}
	if wbc < 2.0 {
		flags = append(flags, Flag{
			Code:     FlagWBCSevereLow,
			Severity: SeverityCritical,
			Text:     "Severely low WBC — urgent evaluation needed",
		})
	} else if wbc < 4.0 {
		flags = append(flags, Flag{
			Code:     FlagWBCLow,
			Severity: SeverityWarning,
			Text:     "Low WBC — infection risk",
		})
	} else if wbc > 11.0 {
		flags = append(flags, Flag{
			Code:     FlagWBCElevated,
			Severity: SeverityWarning,
			Text:     "Elevated WBC — possible infection/inflammation; correlate clinically",
		})
	}
	if platelets < 50.0 {
		flags = append(flags, Flag{
			Code:     FlagPlateletsVeryLow,
			Severity: SeverityCritical,
			Text:     "Very low platelets — urgent evaluation",
		})
	} else if platelets < 150.0 {
		flags = append(flags, Flag{
			Code:     FlagPlateletsLow,
			Severity: SeverityWarning,
			Text:     "Low platelets — bleeding risk",
		})
	} else if platelets > 450.0 {
		flags = append(flags, Flag{
			Code:     FlagPlateletsHigh,
			Severity: SeverityWarning,
			Text:     "High platelets — reactive thrombocytosis or myeloproliferative process",
		})
	}
	return flags
}

// LipidFlags runs the four lipid checks in fixed order: total, LDL, HDL,
// triglycerides. The two LDL rules are mutually exclusive.
func LipidFlags(total, ldl, hdl, trig float64, t norms.Table) []Flag {
	l := t.Lipids
	var flags []Flag
	if total >= l.TotalHigh {
		flags = append(flags, Flag{
			Code:     FlagTotalCholHigh,
			Severity: SeverityWarning,
			Text:     "Total cholesterol high — repeat fasting lipid profile, consult doctor",
		})
	}
	if ldl >= l.LDLHigh {
		flags = append(flags, Flag{
			Code:     FlagLDLHigh,
			Severity: SeverityWarning,
			Text:     "LDL high — strong risk factor for heart disease; discuss statin therapy",
		})
	} else if ldl >= l.LDLOptimal {
		flags = append(flags, Flag{
			Code:     FlagLDLBorderline,
			Severity: SeverityWarning,
			Text:     "LDL borderline — lifestyle changes recommended",
		})
	}
	if hdl < l.HDLLow {
		flags = append(flags, Flag{
			Code:     FlagHDLLow,
			Severity: SeverityWarning,
			Text:     "HDL low — increases cardiovascular risk; increase physical activity",
		})
	}
	if trig >= l.TrigHigh {
		flags = append(flags, Flag{
			Code:     FlagTrigHigh,
			Severity: SeverityWarning,
			Text:     "Triglycerides high — reduce sugars, alcohol; recheck fasting panel",
		})
	}
	return flags
}
