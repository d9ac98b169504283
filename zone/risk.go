package zone

import (
	"math"
)

//*******************************************
// risk scoring
//*******************************************

// Tuning constants for the deterministic risk proxy. The base and scale have
// no derivation beyond worked examples, treat them as knobs.
const (
	RiskBase = 8.0
	RiskMax  = 14

	hash_k1 = 1000.0
	hash_k2 = 1000.0
)

// Scorer derives an integer risk score in [0, RiskMax] from a coordinate.
// Scores are a pure function of the coordinate and the zone table, so they
// never need to be persisted. Reproducible across runs within one binary;
// cross-platform parity depends on libm rounding of Sin/Cos.
type Scorer struct {
	table *Table
	base  float64
	max   int32
}

func NewScorer(table *Table) *Scorer {
	return &Scorer{
		table: table,
		base:  RiskBase,
		max:   RiskMax,
	}
}

func NewScorerWith(table *Table, base float64, max int32) *Scorer {
	if base <= 0 {
		base = RiskBase
	}
	if max <= 0 {
		max = RiskMax
	}
	return &Scorer{
		table: table,
		base:  base,
		max:   max,
	}
}

func (self *Scorer) Score(lat, lon float64) int32 {
	multiplier := self.table.Multiplier(self.table.Classify(lat, lon))
	frac := _HashCoord(lat, lon)
	score := int32(math.Floor(frac * self.base * multiplier))
	if score < 0 {
		score = 0
	}
	if score > self.max {
		score = self.max
	}
	return score
}

// _HashCoord maps a coordinate to a deterministic fraction in [0, 1).
func _HashCoord(lat, lon float64) float64 {
	v := math.Sin(lat*hash_k1) * math.Cos(lon*hash_k2)
	return v - math.Floor(v)
}
