package assessment

// Emergency reason strings for the BP and glucose rules. Flag reasons are
// the flag texts themselves.
const (
	reasonBPCrisis      = "Very high blood pressure — hypertensive crisis"
	reasonSevereGlucose = "Severe hypoglycemia or very low glucose"
)

// DetermineEmergency scans the classification outputs for severity
// markers. Reasons keep encounter order: the BP check, the glucose check,
// then each critical flag verbatim in the order the classifiers produced
// them. The reasons list is empty exactly when NeedsEmergency is false.
func DetermineEmergency(bp BPClassification, glucose GlucoseInterpretation, flags []Flag) EmergencyDetermination {
	det := EmergencyDetermination{}
	if bp == BPCrisis {
		det.NeedsEmergency = true
		det.Reasons = append(det.Reasons, reasonBPCrisis)
	}
	if glucose.Code == GlucoseSevereHypo {
		det.NeedsEmergency = true
		det.Reasons = append(det.Reasons, reasonSevereGlucose)
	}
	for _, f := range flags {
		if f.Severity == SeverityCritical {
			det.NeedsEmergency = true
			det.Reasons = append(det.Reasons, f.Text)
		}
	}
	return det
}
