package assessment

import (
	"strings"
	"testing"
)

func hasLineContaining(lines []string, substr string) bool {
	for _, l := range lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

func TestRecommendDiet_BMIBlocks(t *testing.T) {
	tests := []struct {
		cat  BMICategory
		want string
	}{
		{BMIUnderweight, "Increase daily calories"},
		{BMINormal, "Maintain weight"},
		{BMIOverweight, "modest calorie deficit"},
		{BMIObesity, "Structured weight-loss plan"},
	}
	normal := GlucoseInterpretation{Code: GlucoseNormalFasting}
	for _, tt := range tests {
		recs := RecommendDiet(35, "Male", tt.cat, normal, nil)
		if !hasLineContaining(recs, tt.want) {
			t.Errorf("category %s: missing line containing %q", tt.cat, tt.want)
		}
		// The fixed general tips always close the list.
		if !strings.Contains(recs[len(recs)-1], "Starter 7-day micro-plan") {
			t.Errorf("category %s: expected starter plan as final line", tt.cat)
		}
	}
}

func TestRecommendDiet_GlucoseTriggers(t *testing.T) {
	tests := []struct {
		code GlucoseCode
		want bool
	}{
		{GlucoseImpairedFasting, true},
		{GlucoseDiabetesFasting, true},
		{GlucosePostMealHigh, true},
		{GlucosePostMealVeryHigh, false},
		{GlucoseNormalFasting, false},
		{GlucosePostMealNormal, false},
		{GlucoseHypo, false},
		{GlucoseSevereHypo, false},
	}
	for _, tt := range tests {
		recs := RecommendDiet(35, "Male", BMINormal, GlucoseInterpretation{Code: tt.code}, nil)
		got := hasLineContaining(recs, "Low-GI meals")
		if got != tt.want {
			t.Errorf("code %s: glucose diet block present = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestRecommendDiet_LipidTriggers(t *testing.T) {
	normal := GlucoseInterpretation{Code: GlucoseNormalFasting}

	for _, code := range []FlagCode{FlagTotalCholHigh, FlagLDLHigh, FlagLDLBorderline, FlagTrigHigh} {
		recs := RecommendDiet(35, "Male", BMINormal, normal, []Flag{{Code: code}})
		if !hasLineContaining(recs, "Reduce saturated fats") {
			t.Errorf("flag %s: expected lipid diet block", code)
		}
	}

	// An isolated low-HDL flag does not add the lipid diet block.
	recs := RecommendDiet(35, "Male", BMINormal, normal, []Flag{{Code: FlagHDLLow}})
	if hasLineContaining(recs, "Reduce saturated fats") {
		t.Error("hdl-low alone must not trigger the lipid diet block")
	}
}

func TestRecommendExercise_CrisisShortCircuit(t *testing.T) {
	recs := RecommendExercise(35, BMIObesity, BPCrisis, GlucoseInterpretation{Code: GlucoseDiabetesFasting})
	if len(recs) != 1 {
		t.Fatalf("expected single urgent line, got %d lines", len(recs))
	}
	if !strings.Contains(recs[0], "Emergency BP") {
		t.Errorf("unexpected crisis line: %q", recs[0])
	}
}

func TestRecommendExercise_LowImpactLeadsForHighBMI(t *testing.T) {
	for _, cat := range []BMICategory{BMIOverweight, BMIObesity} {
		recs := RecommendExercise(35, cat, BPNormal, GlucoseInterpretation{Code: GlucoseNormalFasting})
		if !strings.Contains(recs[0], "low-impact cardio") {
			t.Errorf("category %s: expected low-impact line first, got %q", cat, recs[0])
		}
	}
	for _, cat := range []BMICategory{BMIUnderweight, BMINormal} {
		recs := RecommendExercise(35, cat, BPNormal, GlucoseInterpretation{Code: GlucoseNormalFasting})
		if !strings.Contains(recs[0], "Aerobic target") {
			t.Errorf("category %s: expected aerobic baseline first, got %q", cat, recs[0])
		}
	}
}

func TestRecommendExercise_GlucoseWalkLine(t *testing.T) {
	tests := []struct {
		code GlucoseCode
		want bool
	}{
		{GlucoseImpairedFasting, true},
		{GlucoseDiabetesFasting, true},
		{GlucosePostMealHigh, false},
		{GlucoseNormalFasting, false},
	}
	for _, tt := range tests {
		recs := RecommendExercise(35, BMINormal, BPNormal, GlucoseInterpretation{Code: tt.code})
		got := hasLineContaining(recs, "Post-meal walks")
		if got != tt.want {
			t.Errorf("code %s: walk line present = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestRecommendExercise_ClosingLines(t *testing.T) {
	recs := RecommendExercise(35, BMINormal, BPStage1, GlucoseInterpretation{Code: GlucoseNormalFasting})
	n := len(recs)
	if n < 2 || !strings.Contains(recs[n-2], "4-week starter") || !strings.Contains(recs[n-1], "Monitor symptoms") {
		t.Errorf("expected plan and safety lines closing the list, got %v", recs)
	}
}

func TestFollowups_Order(t *testing.T) {
	lipids := []Flag{{Code: FlagLDLHigh}}
	cbc := []Flag{{Code: FlagHemoglobinLow}}
	glucose := GlucoseInterpretation{Code: GlucoseImpairedFasting}

	out := Followups(lipids, glucose, cbc)
	if len(out) != 3 {
		t.Fatalf("expected 3 followups, got %d", len(out))
	}
	if !strings.Contains(out[0], "lipid profile") {
		t.Errorf("expected lipid followup first, got %q", out[0])
	}
	if !strings.Contains(out[1], "HbA1c") {
		t.Errorf("expected glucose followup second, got %q", out[1])
	}
	if !strings.Contains(out[2], "Repeat CBC") {
		t.Errorf("expected CBC followup third, got %q", out[2])
	}
}

func TestFollowups_NoneForNormalResults(t *testing.T) {
	out := Followups(nil, GlucoseInterpretation{Code: GlucoseNormalFasting}, nil)
	if len(out) != 0 {
		t.Errorf("expected no followups, got %v", out)
	}
}

func TestFollowups_GlucoseCodesOutsideTriggerSet(t *testing.T) {
	for _, code := range []GlucoseCode{GlucosePostMealHigh, GlucosePostMealVeryHigh, GlucoseHypo} {
		out := Followups(nil, GlucoseInterpretation{Code: code}, nil)
		if len(out) != 0 {
			t.Errorf("code %s: expected no glucose followup, got %v", code, out)
		}
	}
}
