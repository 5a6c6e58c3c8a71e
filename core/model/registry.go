package model

import (
	"fmt"
	"sync"

	game_log "github.com/ingyamilmolinar/planebeat/internal/log"
)

const (
	// decayRate is the per-tick lerp factor toward baseline.
	decayRate = 0.1
	// snapEpsilon ends a decay once the remaining delta is imperceptible,
	// so nodes settle instead of carrying perpetual tiny offsets.
	snapEpsilon = 1e-3
)

// Trigger is the event emitted when the playhead passes a node.
type Trigger struct {
	NodeID NodeID
	Type   InstrumentType
}

// Registry owns every placed node. Appends come from placement commands,
// mutation from the engine tick; the render side only ever sees copies via
// Snapshot, so a single RWMutex covers all access.
type Registry struct {
	mu     sync.RWMutex
	nodes  []Node
	next   NodeID
	logger *game_log.Logger
}

func NewRegistry(logger *game_log.Logger) *Registry {
	return &Registry{logger: logger}
}

// Place appends a new untriggered node at pt. The instrument type must be a
// catalog value; anything else is a programming error surfaced to the
// caller rather than a half-built node.
func (r *Registry) Place(pt PlanePoint, t InstrumentType) (NodeID, error) {
	if !t.Valid() {
		return InvalidNodeID, fmt.Errorf("place: invalid instrument type %d", int(t))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.next
	r.next++
	r.nodes = append(r.nodes, Node{
		ID:           id,
		Type:         t,
		Pos:          pt,
		ScaleImpulse: 1.0,
	})
	r.logger.Debugf("[REGISTRY] placed node %d (%s) at (%.2f, %.2f)", id, t, pt.X, pt.Z)
	return id, nil
}

// MarkWithin flips every untriggered node whose X lies within tol of pos
// and returns a Trigger per newly marked node. No ordering guarantee.
func (r *Registry) MarkWithin(pos, tol float64) []Trigger {
	r.mu.Lock()
	defer r.mu.Unlock()
	var fired []Trigger
	for i := range r.nodes {
		n := &r.nodes[i]
		if n.Triggered {
			continue
		}
		if d := n.Pos.X - pos; d < tol && d > -tol {
			n.Triggered = true
			fired = append(fired, Trigger{NodeID: n.ID, Type: n.Type})
		}
	}
	return fired
}

// ResetTriggers clears every node's triggered flag. Called on wrap, under
// one lock, so no reader ever observes a half-reset registry.
func (r *Registry) ResetTriggers() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.nodes {
		r.nodes[i].Triggered = false
	}
}

// Impulse applies the visual trigger response to one node.
func (r *Registry) Impulse(id NodeID, scale float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.nodes {
		if r.nodes[i].ID == id {
			r.nodes[i].Highlight = 1.0
			r.nodes[i].ScaleImpulse = scale
			return
		}
	}
}

// Decay advances every node's visual state one tick toward baseline.
func (r *Registry) Decay() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.nodes {
		n := &r.nodes[i]
		n.Highlight += (0 - n.Highlight) * decayRate
		if n.Highlight < snapEpsilon {
			n.Highlight = 0
		}
		n.ScaleImpulse += (1.0 - n.ScaleImpulse) * decayRate
		if d := n.ScaleImpulse - 1.0; d < snapEpsilon && d > -snapEpsilon {
			n.ScaleImpulse = 1.0
		}
	}
}

// Snapshot returns a copy of every node for rendering.
func (r *Registry) Snapshot() []Node {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Node, len(r.nodes))
	copy(out, r.nodes)
	return out
}

// Node returns a copy of the node with the given ID.
func (r *Registry) Node(id NodeID) (Node, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.nodes {
		if r.nodes[i].ID == id {
			return r.nodes[i], true
		}
	}
	return Node{}, false
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.nodes)
}
