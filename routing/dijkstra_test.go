package routing

import (
	"errors"
	"testing"

	"github.com/safewalk/go-safewalk/geo"
	"github.com/safewalk/go-safewalk/graph"
	. "github.com/safewalk/go-safewalk/util"
)

func _Node(lon, lat float64) graph.Node {
	return graph.Node{Loc: geo.NewCoord(lon, lat)}
}

func _Edge(a, b int32, weight float32) graph.Edge {
	return graph.Edge{NodeA: a, NodeB: b, Weight: weight, Name: "test"}
}

func _TriangleGraph(with_direct bool) *graph.Graph {
	nodes := Array[graph.Node]{
		_Node(-72.930, 41.310),
		_Node(-72.928, 41.310),
		_Node(-72.928, 41.308),
	}
	edges := NewList[graph.Edge](3)
	edges.Add(_Edge(0, 1, 1))
	edges.Add(_Edge(1, 2, 1))
	if with_direct {
		edges.Add(_Edge(0, 2, 1))
	}
	return graph.NewGraph(nodes, Array[graph.Edge](edges))
}

func TestShortestPathDirectEdge(t *testing.T) {
	g := _TriangleGraph(true)
	path, err := ShortestPath(g, 0, 2)
	if err != nil {
		t.Fatalf("ShortestPath: %v", err)
	}
	if path.Length() != 2 || path.Nodes[0] != 0 || path.Nodes[1] != 2 {
		t.Errorf("path = %v, want [0 2]", path.Nodes)
	}
	if path.Weight != 1 {
		t.Errorf("weight = %v, want 1", path.Weight)
	}
}

func TestShortestPathTwoHop(t *testing.T) {
	g := _TriangleGraph(false)
	path, err := ShortestPath(g, 0, 2)
	if err != nil {
		t.Fatalf("ShortestPath: %v", err)
	}
	want := []int32{0, 1, 2}
	if path.Length() != 3 {
		t.Fatalf("path = %v, want %v", path.Nodes, want)
	}
	for i, n := range want {
		if path.Nodes[i] != n {
			t.Errorf("path = %v, want %v", path.Nodes, want)
			break
		}
	}
	if path.Weight != 2 {
		t.Errorf("weight = %v, want 2", path.Weight)
	}
}

func TestShortestPathBidirectional(t *testing.T) {
	// edges are undirected, the reverse query must succeed as well
	g := _TriangleGraph(false)
	path, err := ShortestPath(g, 2, 0)
	if err != nil {
		t.Fatalf("ShortestPath: %v", err)
	}
	if path.Nodes[0] != 2 || path.Nodes[path.Length()-1] != 0 {
		t.Errorf("path = %v, want 2 ... 0", path.Nodes)
	}
}

func TestShortestPathOptimality(t *testing.T) {
	// the direct edge 0-3 is heavier than the detour over 1 and 2
	nodes := Array[graph.Node]{
		_Node(-72.930, 41.310),
		_Node(-72.929, 41.310),
		_Node(-72.928, 41.310),
		_Node(-72.927, 41.310),
	}
	edges := Array[graph.Edge]{
		_Edge(0, 3, 10),
		_Edge(0, 1, 2),
		_Edge(1, 2, 2),
		_Edge(2, 3, 2),
	}
	g := graph.NewGraph(nodes, edges)
	path, err := ShortestPath(g, 0, 3)
	if err != nil {
		t.Fatalf("ShortestPath: %v", err)
	}
	if path.Weight != 6 {
		t.Errorf("weight = %v, want 6 (detour beats direct edge)", path.Weight)
	}
	if path.Length() != 4 {
		t.Errorf("path = %v, want the 4-node detour", path.Nodes)
	}
}

func TestShortestPathConnected(t *testing.T) {
	g := _TriangleGraph(false)
	path, err := ShortestPath(g, 0, 2)
	if err != nil {
		t.Fatalf("ShortestPath: %v", err)
	}
	for i := 1; i < path.Length(); i++ {
		if _, ok := g.FindEdge(path.Nodes[i-1], path.Nodes[i]); !ok {
			t.Errorf("nodes %v and %v not edge-connected", path.Nodes[i-1], path.Nodes[i])
		}
	}
}

func TestShortestPathDisconnected(t *testing.T) {
	nodes := Array[graph.Node]{
		_Node(-72.930, 41.310),
		_Node(-72.928, 41.310),
		_Node(-72.800, 41.400),
		_Node(-72.798, 41.400),
	}
	edges := Array[graph.Edge]{
		_Edge(0, 1, 1),
		_Edge(2, 3, 1),
	}
	g := graph.NewGraph(nodes, edges)
	if _, err := ShortestPath(g, 0, 3); !errors.Is(err, ErrNoPath) {
		t.Errorf("err = %v, want ErrNoPath", err)
	}
}

func TestShortestPathStartEqualsEnd(t *testing.T) {
	g := _TriangleGraph(true)
	if _, err := ShortestPath(g, 1, 1); !errors.Is(err, ErrNoPath) {
		t.Errorf("err = %v, want ErrNoPath", err)
	}
}

func TestShortestPathEmptyGraph(t *testing.T) {
	g := graph.NewGraph(nil, nil)
	if _, err := ShortestPath(g, 0, 1); !errors.Is(err, ErrEmptyGraph) {
		t.Errorf("err = %v, want ErrEmptyGraph", err)
	}
}

func TestShortestPathUnknownNode(t *testing.T) {
	g := _TriangleGraph(true)
	if _, err := ShortestPath(g, 0, 99); !errors.Is(err, ErrNoPath) {
		t.Errorf("err = %v, want ErrNoPath", err)
	}
}

func TestPathGeometry(t *testing.T) {
	g := _TriangleGraph(false)
	path, err := ShortestPath(g, 0, 2)
	if err != nil {
		t.Fatalf("ShortestPath: %v", err)
	}
	coords := path.GetGeometry(g)
	if len(coords) != path.Length() {
		t.Fatalf("geometry length = %v, want %v", len(coords), path.Length())
	}
	if coords[0] != g.GetNodeGeom(0) || coords[2] != g.GetNodeGeom(2) {
		t.Errorf("geometry endpoints do not match node locations")
	}
}
