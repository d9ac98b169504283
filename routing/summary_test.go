package routing

import (
	"errors"
	"math"
	"testing"

	"github.com/safewalk/go-safewalk/graph"
	. "github.com/safewalk/go-safewalk/util"
	"github.com/safewalk/go-safewalk/zone"
)

// _ChainGraph builds a line of nodes with one edge per (risk, length) pair.
func _ChainGraph(risks []int32, lengths []float32) *graph.Graph {
	nodes := NewArray[graph.Node](len(risks) + 1)
	for i := range nodes {
		nodes[i] = _Node(-72.930+float64(i)*0.001, 41.310)
	}
	edges := NewArray[graph.Edge](len(risks))
	for i, risk := range risks {
		edges[i] = graph.Edge{
			NodeA:  int32(i),
			NodeB:  int32(i + 1),
			Risk:   risk,
			Length: lengths[i],
			Weight: float32(risk) + lengths[i]*graph.DistanceScale,
			Name:   "test",
		}
	}
	return graph.NewGraph(nodes, edges)
}

func _ChainPath(n int) Path {
	nodes := NewArray[int32](n)
	for i := range nodes {
		nodes[i] = int32(i)
	}
	return Path{Nodes: nodes}
}

func TestSummarizeTotals(t *testing.T) {
	g := _ChainGraph([]int32{1, 4, 10}, []float32{0.1, 0.1, 0.1})
	summary, err := Summarize(g, _ChainPath(4))
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if summary.TotalRisk != 15 {
		t.Errorf("TotalRisk = %v, want 15", summary.TotalRisk)
	}
	if summary.Segments != 3 {
		t.Errorf("Segments = %v, want 3", summary.Segments)
	}
	if math.Abs(summary.MeanRisk-5.0) > 1e-9 {
		t.Errorf("MeanRisk = %v, want 5.0", summary.MeanRisk)
	}
	// mean risk of exactly 5 is still "Safe", the boundary is inclusive
	if summary.Safety != zone.SAFE {
		t.Errorf("Safety = %v, want Safe", summary.Safety)
	}
	want_miles := 0.3 * KmToMiles
	if math.Abs(summary.TotalMiles-want_miles) > 1e-4 {
		t.Errorf("TotalMiles = %v, want %v", summary.TotalMiles, want_miles)
	}
}

func TestSummarizeLengthMonotonic(t *testing.T) {
	g := _ChainGraph([]int32{1, 1, 1, 1}, []float32{0.1, 0.2, 0.1, 0.3})
	prev := 0.0
	for n := 2; n <= 5; n++ {
		summary, err := Summarize(g, _ChainPath(n))
		if err != nil {
			t.Fatalf("Summarize(%v nodes): %v", n, err)
		}
		if summary.TotalMiles < prev {
			t.Errorf("total length decreased when extending the path: %v < %v",
				summary.TotalMiles, prev)
		}
		prev = summary.TotalMiles
	}
}

func TestSummarizeTiers(t *testing.T) {
	cases := []struct {
		risks []int32
		want  zone.SafetyLevel
	}{
		{[]int32{0, 2, 2}, zone.VERY_SAFE},
		{[]int32{2, 4, 5}, zone.SAFE},
		{[]int32{8, 8, 8}, zone.MODERATE},
		{[]int32{14, 10, 12}, zone.CAUTION},
	}
	for _, c := range cases {
		lengths := make([]float32, len(c.risks))
		for i := range lengths {
			lengths[i] = 0.05
		}
		g := _ChainGraph(c.risks, lengths)
		summary, err := Summarize(g, _ChainPath(len(c.risks)+1))
		if err != nil {
			t.Fatalf("Summarize: %v", err)
		}
		if summary.Safety != c.want {
			t.Errorf("risks %v -> %v, want %v", c.risks, summary.Safety, c.want)
		}
	}
}

func TestSummarizeTooShort(t *testing.T) {
	g := _ChainGraph([]int32{1}, []float32{0.1})
	if _, err := Summarize(g, Path{Nodes: Array[int32]{0}}); !errors.Is(err, ErrNoPath) {
		t.Errorf("err = %v, want ErrNoPath", err)
	}
}

func TestSummarizeDisconnectedPath(t *testing.T) {
	g := _ChainGraph([]int32{1, 1}, []float32{0.1, 0.1})
	bogus := Path{Nodes: Array[int32]{0, 2}}
	if _, err := Summarize(g, bogus); !errors.Is(err, ErrNoPath) {
		t.Errorf("err = %v, want ErrNoPath", err)
	}
}
