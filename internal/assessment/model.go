package assessment

import (
	"github.com/google/uuid"

	"github.com/healthassist/healthassist/internal/norms"
)

// MeasurementSet is the immutable input record for one evaluation.
// Units: mg/dL for glucose and lipids, g/dL for hemoglobin, mm Hg for
// blood pressure, 10^3/uL for WBC and platelets. Range validation is a
// boundary concern; out-of-range values are accepted as-is.
type MeasurementSet struct {
	Name           string  `json:"name"`
	Age            int     `json:"age"`
	Sex            string  `json:"sex"`
	HeightCm       float64 `json:"height_cm"`
	WeightKg       float64 `json:"weight_kg"`
	Systolic       int     `json:"systolic"`
	Diastolic      int     `json:"diastolic"`
	Glucose        float64 `json:"glucose"`
	GlucoseContext string  `json:"glucose_context"`
	Hemoglobin     float64 `json:"hemoglobin"`
	Hematocrit     float64 `json:"hematocrit"`
	WBC            float64 `json:"wbc"`
	RBC            float64 `json:"rbc"`
	Platelets      float64 `json:"platelets"`
	MCV            float64 `json:"mcv"`
	TotalChol      float64 `json:"total_chol"`
	LDL            float64 `json:"ldl"`
	HDL            float64 `json:"hdl"`
	Triglycerides  float64 `json:"triglycerides"`
}

// BMICategory is the BMI classification label. The four categories are
// mutually exclusive and collectively exhaustive over the real line.
type BMICategory string

const (
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal weight"
	BMIOverweight  BMICategory = "Overweight"
	BMIObesity     BMICategory = "Obesity"
)

// BPClassification is the blood pressure classification label.
type BPClassification string

const (
	BPNormal   BPClassification = "Normal"
	BPElevated BPClassification = "Elevated blood pressure"
	BPStage1   BPClassification = "Stage 1 Hypertension"
	BPStage2   BPClassification = "Stage 2 Hypertension"
	BPCrisis   BPClassification = "Hypertensive crisis"
)

// GlucoseCode tags the glucose interpretation. Downstream logic branches
// on the code; the label is purely presentational.
type GlucoseCode string

const (
	GlucoseSevereHypo       GlucoseCode = "severe-hypoglycemia"
	GlucoseHypo             GlucoseCode = "hypoglycemia"
	GlucoseNormalFasting    GlucoseCode = "normal-fasting"
	GlucoseImpairedFasting  GlucoseCode = "impaired-fasting"
	GlucoseDiabetesFasting  GlucoseCode = "diabetes-fasting"
	GlucosePostMealNormal   GlucoseCode = "post-meal-normal"
	GlucosePostMealHigh     GlucoseCode = "post-meal-high"
	GlucosePostMealVeryHigh GlucoseCode = "post-meal-very-high"
)

// GlucoseInterpretation pairs the code with its display label.
type GlucoseInterpretation struct {
	Code  GlucoseCode `json:"code"`
	Label string      `json:"label"`
}

// Severity grades a flag. Critical flags feed the emergency
// determination verbatim.
type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// FlagCode identifies the rule that produced a flag.
type FlagCode string

const (
	FlagHemoglobinSevere FlagCode = "hemoglobin-severe-low"
	FlagHemoglobinLow    FlagCode = "hemoglobin-low"
	FlagWBCSevereLow     FlagCode = "wbc-severe-low"
	FlagWBCLow           FlagCode = "wbc-low"
	FlagWBCElevated      FlagCode = "wbc-elevated"
	FlagPlateletsVeryLow FlagCode = "platelets-very-low"
	FlagPlateletsLow     FlagCode = "platelets-low"
	FlagPlateletsHigh    FlagCode = "platelets-high"
	FlagTotalCholHigh    FlagCode = "total-cholesterol-high"
	FlagLDLHigh          FlagCode = "ldl-high"
	FlagLDLBorderline    FlagCode = "ldl-borderline"
	FlagHDLLow           FlagCode = "hdl-low"
	FlagTrigHigh         FlagCode = "triglycerides-high"
)

// Flag is an advisory produced by the CBC or lipid classifiers. Multiple
// flags may co-occur per domain.
type Flag struct {
	Code     FlagCode `json:"code"`
	Severity Severity `json:"severity"`
	Text     string   `json:"text"`
}

// EmergencyDetermination is the aggregated emergency signal. Reasons
// preserve encounter order: BP, glucose, then the flag scan.
type EmergencyDetermination struct {
	NeedsEmergency bool     `json:"needs_emergency"`
	Reasons        []string `json:"reasons"`
}

// Evaluation is the complete output of one assessment. It is derived
// entirely from the input measurements and the resolved norms table;
// identical inputs produce identical lists.
type Evaluation struct {
	ID            uuid.UUID              `json:"id"`
	Input         MeasurementSet         `json:"input"`
	BMI           float64                `json:"bmi"`
	BMICategory   BMICategory            `json:"bmi_category"`
	BP            BPClassification       `json:"bp_classification"`
	Glucose       GlucoseInterpretation  `json:"glucose"`
	CBCFlags      []Flag                 `json:"cbc_flags"`
	LipidFlags    []Flag                 `json:"lipid_flags"`
	Diet          []string               `json:"diet_recommendations"`
	Exercise      []string               `json:"exercise_recommendations"`
	Emergency     EmergencyDetermination `json:"emergency"`
	Followups     []string               `json:"followups"`
	CombinedFlags []string               `json:"combined_flags"`
	NormsSource   norms.Source           `json:"norms_source"`
}
