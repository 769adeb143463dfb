package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/healthassist/healthassist/internal/assessment"
)

var csvColumns = []string{
	"timestamp", "name", "age", "sex", "height_cm", "weight_kg", "bmi",
	"systolic", "diastolic", "glucose", "glucose_context",
	"hb", "hct", "wbc", "rbc", "platelets", "mcv",
	"total_chol", "ldl", "hdl", "trig",
}

// CSV renders the raw inputs (plus computed BMI) as a single-record CSV
// export.
func CSV(ev *assessment.Evaluation, now time.Time) ([]byte, error) {
	m := ev.Input
	record := []string{
		now.Format(time.RFC3339),
		m.Name,
		strconv.Itoa(m.Age),
		m.Sex,
		formatNum(m.HeightCm),
		formatNum(m.WeightKg),
		fmt.Sprintf("%.2f", ev.BMI),
		strconv.Itoa(m.Systolic),
		strconv.Itoa(m.Diastolic),
		formatNum(m.Glucose),
		m.GlucoseContext,
		formatNum(m.Hemoglobin),
		formatNum(m.Hematocrit),
		formatNum(m.WBC),
		formatNum(m.RBC),
		formatNum(m.Platelets),
		formatNum(m.MCV),
		formatNum(m.TotalChol),
		formatNum(m.LDL),
		formatNum(m.HDL),
		formatNum(m.Triglycerides),
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvColumns); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	if err := w.Write(record); err != nil {
		return nil, fmt.Errorf("write csv record: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
