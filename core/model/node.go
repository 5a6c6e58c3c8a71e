package model

const InvalidNodeID NodeID = -1

type NodeID int

// PlacementHeight is the fixed Y at which every node sits above the plane.
const PlacementHeight = 0.5

// PlanePoint is a position on the sequencing plane. X is the sweep axis.
type PlanePoint struct{ X, Z float64 }

// Node is a placed instrument marker. Nodes are owned by the Registry and
// only ever handed out as copies.
type Node struct {
	ID   NodeID
	Type InstrumentType
	Pos  PlanePoint

	// Triggered flips true at most once between two consecutive wraps.
	Triggered bool

	// Highlight decays from 1 toward 0, ScaleImpulse from its trigger
	// value toward 1. Both are rendering state, advanced once per tick.
	Highlight    float64
	ScaleImpulse float64
}
