package graph

import (
	. "github.com/safewalk/go-safewalk/util"
)

//*******************************************
// adjacency structures
//*******************************************

// AdjacencyList is the dynamic adjacency used while building.
type AdjacencyList struct {
	entries Array[List[EdgeRef]]
}

func NewAdjacencyList(node_count int) AdjacencyList {
	entries := NewArray[List[EdgeRef]](node_count)
	for i := 0; i < node_count; i++ {
		entries[i] = NewList[EdgeRef](2)
	}
	return AdjacencyList{
		entries: entries,
	}
}

func (self *AdjacencyList) AddEntry(node, other, edge int32) {
	entries := self.entries[node]
	entries.Add(EdgeRef{EdgeID: edge, OtherID: other})
	self.entries[node] = entries
}

// AdjacencyArray is the compact adjacency used for queries.
// Entries of node n live at [node_starts[n], node_starts[n+1]).
type AdjacencyArray struct {
	node_starts Array[int32]
	entries     Array[EdgeRef]
}

func AdjacencyListToArray(dyn *AdjacencyList) *AdjacencyArray {
	node_count := dyn.entries.Length()
	node_starts := NewArray[int32](node_count + 1)
	entry_count := 0
	for i := 0; i < node_count; i++ {
		node_starts[i] = int32(entry_count)
		entry_count += dyn.entries[i].Length()
	}
	node_starts[node_count] = int32(entry_count)
	entries := NewArray[EdgeRef](entry_count)
	pos := 0
	for i := 0; i < node_count; i++ {
		for _, ref := range dyn.entries[i] {
			entries[pos] = ref
			pos += 1
		}
	}
	return &AdjacencyArray{
		node_starts: node_starts,
		entries:     entries,
	}
}

func (self *AdjacencyArray) GetDegree(node int32) int16 {
	return int16(self.node_starts[node+1] - self.node_starts[node])
}

func (self *AdjacencyArray) GetAccessor() AdjAccessor {
	return AdjAccessor{
		topology: self,
	}
}

//*******************************************
// adjacency accessor
//*******************************************

// not thread safe, use one instance per traversal
type AdjAccessor struct {
	topology *AdjacencyArray
	state    int32
	end      int32
}

func (self *AdjAccessor) SetBaseNode(node int32) {
	self.state = self.topology.node_starts[node]
	self.end = self.topology.node_starts[node+1]
}

func (self *AdjAccessor) Next() bool {
	if self.state >= self.end {
		return false
	}
	self.state += 1
	return true
}

func (self *AdjAccessor) GetEdgeID() int32 {
	return self.topology.entries[self.state-1].EdgeID
}

func (self *AdjAccessor) GetOtherID() int32 {
	return self.topology.entries[self.state-1].OtherID
}

// _BuildTopology registers every undirected edge with both of its endpoints.
func _BuildTopology(nodes Array[Node], edges Array[Edge]) AdjacencyArray {
	dyn := NewAdjacencyList(nodes.Length())
	for id, edge := range edges {
		dyn.AddEntry(edge.NodeA, edge.NodeB, int32(id))
		dyn.AddEntry(edge.NodeB, edge.NodeA, int32(id))
	}
	return *AdjacencyListToArray(&dyn)
}
