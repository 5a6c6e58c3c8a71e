package engine

import "github.com/ingyamilmolinar/planebeat/core/model"

type cmdKind int

const (
	cmdPlay cmdKind = iota
	cmdStop
	cmdSetInstrument
	cmdPlace
)

type command struct {
	kind       cmdKind
	instrument model.InstrumentType
	point      model.PlanePoint
}

// send enqueues a command for the next tick. The queue is generously sized
// for interactive input; if it is somehow full the command is dropped and
// logged rather than blocking the caller.
func (e *Engine) send(c command) {
	select {
	case e.cmds <- c:
	default:
		e.logger.Warnf("[ENGINE] command queue full, dropped command %d", int(c.kind))
	}
}

// Play starts the sweep from the current playhead position.
func (e *Engine) Play() { e.send(command{kind: cmdPlay}) }

// Stop freezes the playhead. Position and trigger flags are untouched and
// in-flight audio keeps playing.
func (e *Engine) Stop() { e.send(command{kind: cmdStop}) }

// SetInstrument selects the instrument used for subsequent placements.
func (e *Engine) SetInstrument(t model.InstrumentType) {
	e.send(command{kind: cmdSetInstrument, instrument: t})
}

// Place requests a node at pt. The instrument is resolved from the current
// selection when the command is applied, so a SetInstrument queued earlier
// in the same batch takes effect first.
func (e *Engine) Place(pt model.PlanePoint) {
	e.send(command{kind: cmdPlace, point: pt})
}

// Status is a consistent view of the transport for UI display.
type Status struct {
	Running  bool
	Pos      float64
	Min, Max float64
	Selected model.InstrumentType
}

// Status reports the playhead and selection state as of the last tick.
func (e *Engine) Status() Status {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return Status{
		Running:  e.head.Running(),
		Pos:      e.head.Pos,
		Min:      e.head.Min,
		Max:      e.head.Max,
		Selected: e.selected,
	}
}

// Snapshot returns a copy of every node for rendering.
func (e *Engine) Snapshot() []model.Node { return e.reg.Snapshot() }

// Registry exposes the node registry, mainly for tests and hooks that want
// read access beyond the render snapshot.
func (e *Engine) Registry() *model.Registry { return e.reg }
