package zone

import (
	"encoding/json"
	"errors"
)

//*******************************************
// safety classification
//*******************************************

// Tier boundaries shared between per-edge styling and whole-route
// classification. Keep both in sync when changing either.
const (
	VerySafeMaxRisk = 2.0
	SafeMaxRisk     = 5.0
	ModerateMaxRisk = 8.0
)

type SafetyLevel byte

const (
	VERY_SAFE SafetyLevel = 0
	SAFE      SafetyLevel = 1
	MODERATE  SafetyLevel = 2
	CAUTION   SafetyLevel = 3
)

// ClassifyRisk maps a (mean or single-edge) risk value onto a safety tier.
func ClassifyRisk(risk float64) SafetyLevel {
	if risk <= VerySafeMaxRisk {
		return VERY_SAFE
	}
	if risk <= SafeMaxRisk {
		return SAFE
	}
	if risk <= ModerateMaxRisk {
		return MODERATE
	}
	return CAUTION
}

func (self SafetyLevel) String() string {
	switch self {
	case VERY_SAFE:
		return "Very Safe"
	case SAFE:
		return "Safe"
	case MODERATE:
		return "Moderate"
	case CAUTION:
		return "Caution Advised"
	default:
		panic("unknown safety level")
	}
}

// Color returns the presentation color of the tier.
func (self SafetyLevel) Color() string {
	switch self {
	case VERY_SAFE:
		return "#2ecc71"
	case SAFE:
		return "#f1c40f"
	case MODERATE:
		return "#e67e22"
	default:
		return "#e74c3c"
	}
}

// LineWeight returns the polyline stroke weight of the tier.
func (self SafetyLevel) LineWeight() int {
	switch self {
	case VERY_SAFE:
		return 4
	case SAFE:
		return 5
	case MODERATE:
		return 6
	default:
		return 7
	}
}

func (self SafetyLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *SafetyLevel) UnmarshalJSON(data []byte) error {
	var typ string
	if err := json.Unmarshal(data, &typ); err != nil {
		return err
	}
	level, err := SafetyLevelFromString(typ)
	*self = level
	return err
}

func SafetyLevelFromString(s string) (SafetyLevel, error) {
	switch s {
	case "Very Safe":
		return VERY_SAFE, nil
	case "Safe":
		return SAFE, nil
	case "Moderate":
		return MODERATE, nil
	case "Caution Advised":
		return CAUTION, nil
	default:
		return VERY_SAFE, errors.New("unknown safety level")
	}
}
