package sweep

import "github.com/ingyamilmolinar/planebeat/core/model"

// DefaultTolerance is the trigger distance window. It assumes the default
// per-tick velocity: a tick displacement above twice this value can step
// over a node without triggering it. Kept as-is; callers that raise the
// velocity must raise the tolerance with it.
const DefaultTolerance = 1.0

// Detector performs the per-tick proximity test between the playhead and
// every untriggered node.
type Detector struct {
	Tolerance float64
}

func NewDetector(tolerance float64) *Detector {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Detector{Tolerance: tolerance}
}

// Scan marks every untriggered node within the tolerance window of pos and
// returns one Trigger per newly marked node. Each node fires at most once
// per sweep; a wrap must have cleared the flags before Scan runs.
func (d *Detector) Scan(reg *model.Registry, pos float64) []model.Trigger {
	return reg.MarkWithin(pos, d.Tolerance)
}
