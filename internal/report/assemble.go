// Package report assembles evaluation results into downloadable
// documents. Renderers treat every string as opaque text that may need
// wrapping; if rich rendering fails the handler degrades to the plain
// text form.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/healthassist/healthassist/internal/assessment"
	"github.com/healthassist/healthassist/internal/norms"
)

// Document is the renderer-independent report: an ordered field/value
// table, the combined flags, and a note describing the norms source.
type Document struct {
	Rows       [][2]string
	Flags      []string
	SourceNote string
}

// Build assembles the report document from an evaluation. Row order
// matches the rendered report: identity, anthropometrics, classified
// measurements, then the recommendation digests.
func Build(ev *assessment.Evaluation) Document {
	m := ev.Input
	rows := [][2]string{
		{"Field", "Value"},
		{"Name", m.Name},
		{"Age", strconv.Itoa(m.Age)},
		{"Sex", m.Sex},
		{"Height (cm)", formatNum(m.HeightCm)},
		{"Weight (kg)", formatNum(m.WeightKg)},
		{"BMI", fmt.Sprintf("%.2f (%s)", ev.BMI, ev.BMICategory)},
		{"Blood Pressure", fmt.Sprintf("%d/%d (%s)", m.Systolic, m.Diastolic, ev.BP)},
		{"Glucose", fmt.Sprintf("%s (%s) - %s", formatNum(m.Glucose), m.GlucoseContext, ev.Glucose.Label)},
		{"Hemoglobin", formatNum(m.Hemoglobin) + " g/dL"},
		{"Hematocrit", formatNum(m.Hematocrit) + " %"},
		{"WBC", formatNum(m.WBC) + " (10^3/uL)"},
		{"Platelets", formatNum(m.Platelets) + " (10^3/uL)"},
		{"Lipids", fmt.Sprintf("Total %s, LDL %s, HDL %s, TG %s",
			formatNum(m.TotalChol), formatNum(m.LDL), formatNum(m.HDL), formatNum(m.Triglycerides))},
		{"Diet recommendations", strings.Join(ev.Diet, "; ")},
		{"Exercise recommendations", strings.Join(ev.Exercise, "; ")},
	}
	return Document{
		Rows:       rows,
		Flags:      ev.CombinedFlags,
		SourceNote: SourceNote(ev.NormsSource),
	}
}

// SourceNote describes which threshold set produced the report.
func SourceNote(src norms.Source) string {
	switch src {
	case norms.SourceRemote:
		return "Guideline thresholds used: live norms endpoint (validated). Embedded defaults reflect WHO, AHA/ACC, ADA, NIH references."
	case norms.SourceStore:
		return "Guideline thresholds used: operator-managed stored table. Embedded defaults reflect WHO, AHA/ACC, ADA, NIH references."
	default:
		return "Guideline thresholds used: embedded defaults (WHO, AHA/ACC, ADA, NIH). See app notes for original references."
	}
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
