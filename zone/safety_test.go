package zone

import (
	"testing"
)

func TestClassifyRiskTiers(t *testing.T) {
	cases := []struct {
		risk float64
		want SafetyLevel
	}{
		{0, VERY_SAFE},
		{2, VERY_SAFE},
		{2.1, SAFE},
		{5, SAFE},
		{5.0001, MODERATE},
		{8, MODERATE},
		{8.5, CAUTION},
		{14, CAUTION},
	}
	for _, c := range cases {
		if got := ClassifyRisk(c.risk); got != c.want {
			t.Errorf("ClassifyRisk(%v) = %v, want %v", c.risk, got, c.want)
		}
	}
}

func TestSafetyLevelStrings(t *testing.T) {
	levels := []SafetyLevel{VERY_SAFE, SAFE, MODERATE, CAUTION}
	for _, level := range levels {
		parsed, err := SafetyLevelFromString(level.String())
		if err != nil {
			t.Errorf("round trip failed for %v: %v", level, err)
		}
		if parsed != level {
			t.Errorf("round trip %v -> %v", level, parsed)
		}
	}
	if _, err := SafetyLevelFromString("bogus"); err == nil {
		t.Errorf("expected error for unknown level")
	}
}

func TestSafetyLevelPresentation(t *testing.T) {
	seen := map[string]bool{}
	levels := []SafetyLevel{VERY_SAFE, SAFE, MODERATE, CAUTION}
	for _, level := range levels {
		color := level.Color()
		if seen[color] {
			t.Errorf("duplicate color %v", color)
		}
		seen[color] = true
		if level.LineWeight() <= 0 {
			t.Errorf("LineWeight(%v) = %v", level, level.LineWeight())
		}
	}
}
