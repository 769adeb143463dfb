package norms

// Default returns the embedded fallback table. The values reflect common
// guideline cutoffs: WHO for BMI, AHA/ACC for blood pressure stages, ADA
// for fasting glucose, NIH/ATP III for lipids.
func Default() Table {
	return Table{
		BMI: BMIBands{
			Underweight: 18.5,
			NormalUpper: 24.9,
			Overweight:  29.9,
			Obesity:     30.0,
		},
		BP: BPThresholds{
			Elevated: BPCutoff{Systolic: 120, Diastolic: 80},
			Stage1:   BPCutoff{Systolic: 130, Diastolic: 80},
			Stage2:   BPCutoff{Systolic: 140, Diastolic: 90},
			Crisis:   BPCutoff{Systolic: 180, Diastolic: 120},
		},
		Glucose: GlucoseThresholds{
			SevereHypoglycemia: 54,
			Hypoglycemia:       70,
			NormalFastingUpper: 99,
			DiabetesFasting:    126,
		},
		Lipids: LipidThresholds{
			TotalHigh:  240,
			LDLOptimal: 100,
			LDLHigh:    160,
			HDLLow:     40,
			TrigHigh:   200,
		},
	}
}
