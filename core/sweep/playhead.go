// Package sweep implements the playhead state machine and the proximity
// trigger detector that drive the sequencer.
package sweep

import "fmt"

// Playhead is the single marker sweeping the plane along the X axis.
// It starts stopped at Min; Stop freezes the position, only a wrap resets
// it back to Min.
type Playhead struct {
	Pos      float64
	Min, Max float64
	Velocity float64

	running bool
}

// NewPlayhead validates the sweep parameters. Velocity must be positive and
// the bounds non-degenerate, otherwise the playhead could never complete a
// sweep.
func NewPlayhead(min, max, velocity float64) (*Playhead, error) {
	if max <= min {
		return nil, fmt.Errorf("playhead: bounds [%v, %v] are empty", min, max)
	}
	if velocity <= 0 {
		return nil, fmt.Errorf("playhead: velocity %v must be > 0", velocity)
	}
	return &Playhead{Pos: min, Min: min, Max: max, Velocity: velocity}, nil
}

func (p *Playhead) Play()         { p.running = true }
func (p *Playhead) Stop()         { p.running = false }
func (p *Playhead) Running() bool { return p.running }

// Advance moves the playhead one tick and reports whether it wrapped.
// A no-op while stopped. Crossing Max snaps back to Min; the caller must
// reset all trigger flags before running detection against the new
// position.
func (p *Playhead) Advance() (wrapped bool) {
	if !p.running {
		return false
	}
	p.Pos += p.Velocity
	if p.Pos > p.Max {
		p.Pos = p.Min
		return true
	}
	return false
}
