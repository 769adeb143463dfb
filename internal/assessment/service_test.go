package assessment

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/healthassist/healthassist/internal/norms"
)

func healthyInput() MeasurementSet {
	return MeasurementSet{
		Name: "Asha", Age: 34, Sex: "Female",
		HeightCm: 165, WeightKg: 60,
		Systolic: 112, Diastolic: 72,
		Glucose: 88, GlucoseContext: "Fasting",
		Hemoglobin: 13.5, Hematocrit: 40, WBC: 6.2, RBC: 4.6, Platelets: 260, MCV: 88,
		TotalChol: 170, LDL: 90, HDL: 58, Triglycerides: 110,
	}
}

func criticalInput() MeasurementSet {
	m := healthyInput()
	m.Systolic = 190
	m.Diastolic = 125
	m.Hemoglobin = 7.0
	return m
}

func TestEvaluateWith_HealthyProfile(t *testing.T) {
	ev := EvaluateWith(healthyInput(), norms.Default())

	if ev.BMICategory != BMINormal {
		t.Errorf("expected normal BMI, got %s", ev.BMICategory)
	}
	if ev.BP != BPNormal {
		t.Errorf("expected normal BP, got %s", ev.BP)
	}
	if ev.Glucose.Code != GlucoseNormalFasting {
		t.Errorf("expected normal fasting glucose, got %s", ev.Glucose.Code)
	}
	if len(ev.CBCFlags) != 0 || len(ev.LipidFlags) != 0 {
		t.Errorf("expected no flags, got cbc=%v lipids=%v", ev.CBCFlags, ev.LipidFlags)
	}
	if ev.Emergency.NeedsEmergency {
		t.Error("healthy profile must not need emergency care")
	}
	if len(ev.Followups) != 0 {
		t.Errorf("expected no followups, got %v", ev.Followups)
	}
	// Combined flags always carry the glucose label last.
	if len(ev.CombinedFlags) != 1 || ev.CombinedFlags[0] != ev.Glucose.Label {
		t.Errorf("expected combined flags to end with glucose label, got %v", ev.CombinedFlags)
	}
}

func TestEvaluateWith_Deterministic(t *testing.T) {
	m := criticalInput()
	a := EvaluateWith(m, norms.Default())
	b := EvaluateWith(m, norms.Default())

	// Everything except the generated ID must be identical.
	a.ID = b.ID
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs must produce identical evaluations")
	}
}

func TestEvaluateWith_EmergencySuppressesFollowups(t *testing.T) {
	ev := EvaluateWith(criticalInput(), norms.Default())

	if !ev.Emergency.NeedsEmergency {
		t.Fatal("expected emergency for crisis BP plus severe anemia")
	}
	if len(ev.Followups) != 0 {
		t.Errorf("followups must be empty under emergency, got %v", ev.Followups)
	}
	if len(ev.Emergency.Reasons) != 2 {
		t.Errorf("expected BP and hemoglobin reasons, got %v", ev.Emergency.Reasons)
	}
}

func TestEvaluateWith_CombinedFlagOrder(t *testing.T) {
	m := healthyInput()
	m.Hemoglobin = 10 // warning
	m.LDL = 170       // warning
	ev := EvaluateWith(m, norms.Default())

	want := []string{
		ev.CBCFlags[0].Text,
		ev.LipidFlags[0].Text,
		ev.Glucose.Label,
	}
	if !reflect.DeepEqual(ev.CombinedFlags, want) {
		t.Errorf("combined flags out of order:\ngot  %v\nwant %v", ev.CombinedFlags, want)
	}
}

func TestEvaluateWith_CustomTableShiftsClassification(t *testing.T) {
	m := healthyInput() // BMI ~22.0
	tight := norms.Default()
	tight.BMI.NormalUpper = 21.0
	tight.BMI.Overweight = 25.0

	ev := EvaluateWith(m, tight)
	if ev.BMICategory != BMIOverweight {
		t.Errorf("expected overweight under tightened bands, got %s", ev.BMICategory)
	}
}

func TestService_Evaluate_SetsNormsSource(t *testing.T) {
	resolver := norms.NewResolver(nil, nil, time.Second, zerolog.Nop())
	svc := NewService(resolver)

	ev := svc.Evaluate(context.Background(), healthyInput())
	if ev.NormsSource != norms.SourceDefault {
		t.Errorf("expected default norms source, got %s", ev.NormsSource)
	}
	if ev.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("expected a generated evaluation id")
	}
}
