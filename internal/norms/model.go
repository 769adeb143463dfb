package norms

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BMIBands holds the BMI category cutoffs. Bands are inclusive on the
// upper side: a BMI equal to NormalUpper is still "Normal weight".
type BMIBands struct {
	Underweight float64 `json:"underweight"`
	NormalUpper float64 `json:"normal_upper"`
	Overweight  float64 `json:"overweight"`
	Obesity     float64 `json:"obesity"`
}

// BPCutoff is a systolic/diastolic threshold pair in mm Hg.
type BPCutoff struct {
	Systolic  int `json:"systolic"`
	Diastolic int `json:"diastolic"`
}

// BPThresholds holds the blood pressure stage cutoffs (AHA/ACC).
type BPThresholds struct {
	Elevated BPCutoff `json:"elevated"`
	Stage1   BPCutoff `json:"stage_1"`
	Stage2   BPCutoff `json:"stage_2"`
	Crisis   BPCutoff `json:"crisis"`
}

// GlucoseThresholds holds the fasting glucose cutoffs in mg/dL (ADA).
// The non-fasting ladder uses fixed literal cutoffs and is not configurable.
type GlucoseThresholds struct {
	SevereHypoglycemia float64 `json:"severe_hypoglycemia"`
	Hypoglycemia       float64 `json:"hypoglycemia"`
	NormalFastingUpper float64 `json:"normal_fasting_upper"`
	DiabetesFasting    float64 `json:"diabetes_fasting"`
}

// LipidThresholds holds the lipid panel cutoffs in mg/dL (NIH/ATP III).
type LipidThresholds struct {
	TotalHigh  float64 `json:"total_high"`
	LDLOptimal float64 `json:"ldl_optimal"`
	LDLHigh    float64 `json:"ldl_high"`
	HDLLow     float64 `json:"hdl_low"`
	TrigHigh   float64 `json:"trig_high"`
}

// Table is the complete, immutable threshold table the classifiers run
// against. It is passed by value into every classifier call; nothing
// mutates it after construction.
type Table struct {
	BMI     BMIBands          `json:"bmi"`
	BP      BPThresholds      `json:"bp"`
	Glucose GlucoseThresholds `json:"glucose"`
	Lipids  LipidThresholds   `json:"lipids"`
}

// tablePayload mirrors Table with pointer sections so that absent
// top-level keys in an external payload are distinguishable from
// zero-valued ones.
type tablePayload struct {
	BMI     *BMIBands          `json:"bmi"`
	BP      *BPThresholds      `json:"bp"`
	Glucose *GlucoseThresholds `json:"glucose"`
	Lipids  *LipidThresholds   `json:"lipids"`
}

// Parse decodes an externally supplied norms payload. The payload is
// accepted only if it carries the required "bmi" and "bp" top-level keys;
// otherwise the whole payload is rejected (never partially merged).
// Optional "glucose" and "lipids" sections missing from an accepted
// payload are completed from the embedded defaults so the engine always
// operates on a full table.
func Parse(data []byte) (Table, error) {
	var p tablePayload
	if err := json.Unmarshal(data, &p); err != nil {
		return Table{}, fmt.Errorf("decode norms payload: %w", err)
	}
	if p.BMI == nil || p.BP == nil {
		return Table{}, fmt.Errorf("norms payload missing required bmi/bp sections")
	}
	t := Table{BMI: *p.BMI, BP: *p.BP}
	def := Default()
	if p.Glucose != nil {
		t.Glucose = *p.Glucose
	} else {
		t.Glucose = def.Glucose
	}
	if p.Lipids != nil {
		t.Lipids = *p.Lipids
	} else {
		t.Lipids = def.Lipids
	}
	if err := t.Validate(); err != nil {
		return Table{}, err
	}
	return t, nil
}

// Validate checks the ordering invariant: thresholds within each domain
// must increase with severity. A table violating it is rejected outright.
func (t Table) Validate() error {
	if !(t.BMI.Underweight < t.BMI.NormalUpper && t.BMI.NormalUpper < t.BMI.Overweight) {
		return fmt.Errorf("bmi bands not ascending: %.1f/%.1f/%.1f",
			t.BMI.Underweight, t.BMI.NormalUpper, t.BMI.Overweight)
	}
	if t.BP.Stage1.Systolic > t.BP.Stage2.Systolic || t.BP.Stage2.Systolic > t.BP.Crisis.Systolic {
		return fmt.Errorf("bp systolic cutoffs not ascending")
	}
	if t.BP.Stage1.Diastolic > t.BP.Stage2.Diastolic || t.BP.Stage2.Diastolic > t.BP.Crisis.Diastolic {
		return fmt.Errorf("bp diastolic cutoffs not ascending")
	}
	g := t.Glucose
	if !(g.SevereHypoglycemia < g.Hypoglycemia && g.Hypoglycemia < g.NormalFastingUpper && g.NormalFastingUpper < g.DiabetesFasting) {
		return fmt.Errorf("glucose cutoffs not ascending")
	}
	if !(t.Lipids.LDLOptimal < t.Lipids.LDLHigh) {
		return fmt.Errorf("lipid ldl_optimal must be below ldl_high")
	}
	return nil
}

// CustomTable maps to the norms_table table: an operator-managed
// replacement threshold table. At most one table is active at a time.
type CustomTable struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	Payload     Table     `db:"payload" json:"payload"`
	Active      bool      `db:"active" json:"active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
