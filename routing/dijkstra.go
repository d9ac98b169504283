package routing

import (
	"errors"
	"math"

	"github.com/safewalk/go-safewalk/graph"
	. "github.com/safewalk/go-safewalk/util"
)

// ErrEmptyGraph is returned for any query against a graph with zero nodes.
var ErrEmptyGraph = errors.New("graph has no nodes")

// ErrNoPath is returned when no route connects start and end. A single-node
// path is not a valid route, so start == end also yields ErrNoPath.
var ErrNoPath = errors.New("no path found")

//*******************************************
// dijkstra
//*******************************************

type _NodeFlag struct {
	dist      float64
	prev_node int32
	prev_edge int32
	visited   bool
}

// Dijkstra is a single-source weighted search terminating as soon as the
// destination is settled. Weights are non-negative, so the early exit cannot
// change the result. Ties between equal tentative distances resolve in heap
// order, which is deterministic for a deterministically built graph.
type Dijkstra struct {
	g     *graph.Graph
	from  int32
	to    int32
	flags Array[_NodeFlag]
	heap  PriorityQueue[int32, float64]
	found bool
}

func NewDijkstra(g *graph.Graph, from, to int32) *Dijkstra {
	flags := NewArray[_NodeFlag](g.NodeCount())
	for i := 0; i < flags.Length(); i++ {
		flags[i] = _NodeFlag{dist: math.Inf(1), prev_node: -1, prev_edge: -1}
	}
	flags[from].dist = 0
	heap := NewPriorityQueue[int32, float64](100)
	heap.Enqueue(from, 0)
	return &Dijkstra{
		g:     g,
		from:  from,
		to:    to,
		flags: flags,
		heap:  heap,
	}
}

func (self *Dijkstra) CalcShortestPath() bool {
	explorer := self.g.GetExplorer()
	for {
		curr_id, ok := self.heap.Dequeue()
		if !ok {
			return false
		}
		curr_flag := &self.flags[curr_id]
		if curr_flag.visited {
			continue
		}
		curr_flag.visited = true
		if curr_id == self.to {
			self.found = true
			return true
		}
		explorer.ForAdjacentEdges(curr_id, func(ref graph.EdgeRef) {
			other_flag := &self.flags[ref.OtherID]
			if other_flag.visited {
				return
			}
			new_dist := curr_flag.dist + explorer.GetEdgeWeight(ref)
			if new_dist < other_flag.dist {
				other_flag.dist = new_dist
				other_flag.prev_node = curr_id
				other_flag.prev_edge = ref.EdgeID
				self.heap.Enqueue(ref.OtherID, new_dist)
			}
		})
	}
}

func (self *Dijkstra) GetShortestPath() Path {
	if !self.found {
		return Path{}
	}
	nodes := NewList[int32](10)
	curr := self.to
	for curr != -1 {
		nodes.Add(curr)
		curr = self.flags[curr].prev_node
	}
	// reverse into start-to-end order
	for i, j := 0, nodes.Length()-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	return Path{
		Nodes:  Array[int32](nodes),
		Weight: self.flags[self.to].dist,
	}
}

//*******************************************
// query entry point
//*******************************************

// ShortestPath runs a dijkstra between two graph nodes, surfacing the empty
// graph and the unreachable destination as distinct failures.
func ShortestPath(g *graph.Graph, from, to int32) (Path, error) {
	if g.NodeCount() == 0 {
		return Path{}, ErrEmptyGraph
	}
	if !g.IsNode(from) || !g.IsNode(to) {
		return Path{}, ErrNoPath
	}
	if from == to {
		return Path{}, ErrNoPath
	}
	alg := NewDijkstra(g, from, to)
	if !alg.CalcShortestPath() {
		return Path{}, ErrNoPath
	}
	return alg.GetShortestPath(), nil
}
