package assessment

import (
	"context"

	"github.com/google/uuid"

	"github.com/healthassist/healthassist/internal/norms"
)

// Service runs full evaluations against the effective norms table. The
// evaluation itself is a pure transform of its inputs; the only I/O is
// the bounded norms resolution, so concurrent calls are safe without
// locks.
type Service struct {
	resolver *norms.Resolver
}

func NewService(resolver *norms.Resolver) *Service {
	return &Service{resolver: resolver}
}

// Evaluate classifies every domain of the measurement set, derives the
// recommendations and the emergency determination, and assembles the
// combined flags list (CBC, lipids, then the glucose interpretation). It
// has no failure path: any syntactically valid input yields a complete
// evaluation.
func (s *Service) Evaluate(ctx context.Context, m MeasurementSet) *Evaluation {
	res := s.resolver.Resolve(ctx)
	ev := EvaluateWith(m, res.Table)
	ev.NormsSource = res.Source
	return ev
}

// EvaluateWith runs the evaluation against an explicit table. Exposed so
// callers and tests can pin synthetic norms.
func EvaluateWith(m MeasurementSet, t norms.Table) *Evaluation {
	bmi := CalculateBMI(m.WeightKg, m.HeightCm)
	bmiCat := ClassifyBMI(bmi, t)
	bp := ClassifyBP(m.Systolic, m.Diastolic, t)
	glucose := InterpretGlucose(m.Glucose, m.GlucoseContext, t)
	cbc := CBCFlags(m.Hemoglobin, m.WBC, m.Platelets)
	lipids := LipidFlags(m.TotalChol, m.LDL, m.HDL, m.Triglycerides, t)

	diet := RecommendDiet(m.Age, m.Sex, bmiCat, glucose, lipids)
	exercise := RecommendExercise(m.Age, bmiCat, bp, glucose)

	allFlags := make([]Flag, 0, len(cbc)+len(lipids))
	allFlags = append(allFlags, cbc...)
	allFlags = append(allFlags, lipids...)
	emergency := DetermineEmergency(bp, glucose, allFlags)

	var followups []string
	if !emergency.NeedsEmergency {
		followups = Followups(lipids, glucose, cbc)
	}

	combined := make([]string, 0, len(allFlags)+1)
	for _, f := range allFlags {
		combined = append(combined, f.Text)
	}
	combined = append(combined, glucose.Label)

	return &Evaluation{
		ID:            uuid.New(),
		Input:         m,
		BMI:           bmi,
		BMICategory:   bmiCat,
		BP:            bp,
		Glucose:       glucose,
		CBCFlags:      cbc,
		LipidFlags:    lipids,
		Diet:          diet,
		Exercise:      exercise,
		Emergency:     emergency,
		Followups:     followups,
		CombinedFlags: combined,
	}
}
