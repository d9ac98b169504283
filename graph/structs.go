package graph

import (
	"github.com/safewalk/go-safewalk/geo"
)

//*******************************************
// graph structs
//*******************************************

type Node struct {
	Loc geo.Coord
}

// Edge is an undirected street segment between two distinct nodes.
type Edge struct {
	NodeA  int32
	NodeB  int32
	Risk   int32
	Length float32 // km
	Weight float32
	WayID  int64
	Name   string
	Zone   string
}

type EdgeRef struct {
	EdgeID  int32
	OtherID int32
}
