package routing

import (
	"github.com/safewalk/go-safewalk/geo"
	"github.com/safewalk/go-safewalk/graph"
	. "github.com/safewalk/go-safewalk/util"
)

//*******************************************
// path
//*******************************************

// Path is an ordered node sequence, start to end inclusive. A valid route has
// at least two nodes with consecutive nodes connected by a graph edge.
type Path struct {
	Nodes  Array[int32]
	Weight float64
}

func (self Path) Length() int {
	return self.Nodes.Length()
}

// GetGeometry resolves the node sequence to coordinates.
func (self Path) GetGeometry(g *graph.Graph) geo.CoordArray {
	coords := make(geo.CoordArray, self.Nodes.Length())
	for i, node := range self.Nodes {
		coords[i] = g.GetNodeGeom(node)
	}
	return coords
}

// GetEdges resolves consecutive node pairs to their connecting edges,
// ok is false if any pair is not edge-connected.
func (self Path) GetEdges(g *graph.Graph) (Array[int32], bool) {
	if self.Nodes.Length() < 2 {
		return nil, false
	}
	edges := NewArray[int32](self.Nodes.Length() - 1)
	for i := 1; i < self.Nodes.Length(); i++ {
		edge_id, ok := g.FindEdge(self.Nodes[i-1], self.Nodes[i])
		if !ok {
			return nil, false
		}
		edges[i-1] = edge_id
	}
	return edges, true
}
