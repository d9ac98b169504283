package graph

import (
	"github.com/safewalk/go-safewalk/geo"
	. "github.com/safewalk/go-safewalk/util"
)

//*******************************************
// routing graph
//*******************************************

// Graph owns the nodes and edges of one construction cycle. It is never
// mutated after NewGraph returns, rebuilds produce a fresh value that callers
// swap in wholesale.
type Graph struct {
	nodes    Array[Node]
	edges    Array[Edge]
	topology AdjacencyArray
}

func NewGraph(nodes Array[Node], edges Array[Edge]) *Graph {
	topology := _BuildTopology(nodes, edges)
	return &Graph{
		nodes:    nodes,
		edges:    edges,
		topology: topology,
	}
}

func (self *Graph) NodeCount() int {
	return len(self.nodes)
}
func (self *Graph) EdgeCount() int {
	return len(self.edges)
}
func (self *Graph) IsNode(node int32) bool {
	return node >= 0 && node < int32(len(self.nodes))
}
func (self *Graph) GetNode(node int32) Node {
	return self.nodes[node]
}
func (self *Graph) GetEdge(edge int32) Edge {
	return self.edges[edge]
}
func (self *Graph) GetNodeGeom(node int32) geo.Coord {
	return self.nodes[node].Loc
}
func (self *Graph) GetNodeDegree(node int32) int16 {
	return self.topology.GetDegree(node)
}

func (self *Graph) GetExplorer() Explorer {
	return Explorer{
		graph:    self,
		accessor: self.topology.GetAccessor(),
	}
}

// GetClosestNode returns the node minimizing great-circle distance to the
// query point, ties going to the lower id. ok is false on an empty graph.
func (self *Graph) GetClosestNode(point geo.Coord) (int32, bool) {
	if len(self.nodes) == 0 {
		return -1, false
	}
	closest := int32(0)
	min_dist := geo.HaversineDist(point, self.nodes[0].Loc)
	for i := 1; i < len(self.nodes); i++ {
		dist := geo.HaversineDist(point, self.nodes[i].Loc)
		if dist < min_dist {
			min_dist = dist
			closest = int32(i)
		}
	}
	return closest, true
}

// FindEdge returns the lowest-weight edge connecting two nodes in either
// direction, ok is false if none exists.
func (self *Graph) FindEdge(node_a, node_b int32) (int32, bool) {
	if !self.IsNode(node_a) || !self.IsNode(node_b) {
		return -1, false
	}
	found := int32(-1)
	accessor := self.topology.GetAccessor()
	accessor.SetBaseNode(node_a)
	for accessor.Next() {
		if accessor.GetOtherID() != node_b {
			continue
		}
		edge_id := accessor.GetEdgeID()
		if found == -1 || self.edges[edge_id].Weight < self.edges[found].Weight {
			found = edge_id
		}
	}
	if found == -1 {
		return -1, false
	}
	return found, true
}

//*******************************************
// graph explorer
//*******************************************

// not thread safe, use one instance per query
type Explorer struct {
	graph    *Graph
	accessor AdjAccessor
}

// ForAdjacentEdges iterates the adjacency of a node calling the callback for
// every incident edge. Edges are undirected, both endpoints see them.
func (self *Explorer) ForAdjacentEdges(node int32, callback func(EdgeRef)) {
	self.accessor.SetBaseNode(node)
	for self.accessor.Next() {
		callback(EdgeRef{
			EdgeID:  self.accessor.GetEdgeID(),
			OtherID: self.accessor.GetOtherID(),
		})
	}
}

func (self *Explorer) GetEdgeWeight(ref EdgeRef) float64 {
	return float64(self.graph.edges[ref.EdgeID].Weight)
}
