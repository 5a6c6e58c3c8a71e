// Package engine ties the registry, playhead and trigger detector together
// into one session and runs the fixed-rate tick loop over them.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ingyamilmolinar/planebeat/core/model"
	"github.com/ingyamilmolinar/planebeat/core/sweep"
	game_log "github.com/ingyamilmolinar/planebeat/internal/log"
)

// tickInterval targets 60 ticks per second.
const tickInterval = 16 * time.Millisecond

// Dispatcher starts fire-and-forget playback for a triggered instrument.
// Implementations must not block the tick loop.
type Dispatcher interface {
	Dispatch(t model.InstrumentType)
}

// Engine owns all session state. UI code talks to it exclusively through
// commands and read-only snapshots; every mutation happens inside Tick.
type Engine struct {
	reg    *model.Registry
	head   *sweep.Playhead
	det    *sweep.Detector
	disp   Dispatcher
	logger *game_log.Logger

	// mu covers playhead and selection state so Status can read them
	// while the tick goroutine runs.
	mu       sync.RWMutex
	cmds     chan command
	selected model.InstrumentType

	// Events carries each trigger to external visualization hooks. Sends
	// never block; a full channel drops the event.
	Events chan model.Trigger
}

// New assembles a session engine. The playhead starts stopped at the lower
// bound and Synth is the initially selected instrument.
func New(head *sweep.Playhead, det *sweep.Detector, disp Dispatcher, logger *game_log.Logger) *Engine {
	return &Engine{
		reg:      model.NewRegistry(logger),
		head:     head,
		det:      det,
		disp:     disp,
		logger:   logger,
		cmds:     make(chan command, 64),
		selected: model.Synth,
		Events:   make(chan model.Trigger, 16),
	}
}

// Run drives the tick loop until ctx is cancelled or a tick fails.
// Cancellation is checked between ticks, so no tick is ever cut short.
func (e *Engine) Run(ctx context.Context) error {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := e.Tick(); err != nil {
				e.logger.Errorf("[ENGINE] tick failed: %v", err)
				return err
			}
		case <-ctx.Done():
			return nil
		}
	}
}

// Tick executes one step of the sequencer in its fixed order: drain
// commands, advance the playhead, reset flags on wrap, detect triggers,
// fan each trigger out to audio and visuals, then decay all nodes.
// Visual decay runs whether or not the playhead is moving.
func (e *Engine) Tick() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.drainCommands(); err != nil {
		return err
	}

	if e.head.Running() {
		if wrapped := e.head.Advance(); wrapped {
			e.reg.ResetTriggers()
			e.logger.Debugf("[ENGINE] wrapped to %.2f, trigger flags cleared", e.head.Min)
		}
		for _, trig := range e.det.Scan(e.reg, e.head.Pos) {
			desc, err := model.DescriptorFor(trig.Type)
			if err != nil {
				return fmt.Errorf("tick: %w", err)
			}
			e.disp.Dispatch(trig.Type)
			e.reg.Impulse(trig.NodeID, desc.Impulse)
			select {
			case e.Events <- trig:
			default:
			}
			e.logger.Debugf("[ENGINE] node %d (%s) triggered at %.2f", trig.NodeID, trig.Type, e.head.Pos)
		}
	}

	e.reg.Decay()
	return nil
}

// drainCommands applies every queued command before the tick proper, so a
// placement is either fully visible to this tick's detection or not at all.
func (e *Engine) drainCommands() error {
	for {
		select {
		case c := <-e.cmds:
			if err := e.apply(c); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (e *Engine) apply(c command) error {
	switch c.kind {
	case cmdPlay:
		e.head.Play()
		e.logger.Infof("[ENGINE] play")
	case cmdStop:
		e.head.Stop()
		e.logger.Infof("[ENGINE] stop at %.2f", e.head.Pos)
	case cmdSetInstrument:
		if !c.instrument.Valid() {
			return fmt.Errorf("apply: invalid instrument %d", int(c.instrument))
		}
		e.selected = c.instrument
	case cmdPlace:
		// Selection points are clipped by the view, but a point off the
		// sweep axis could never trigger; drop it without error.
		if c.point.X < e.head.Min || c.point.X > e.head.Max {
			e.logger.Debugf("[ENGINE] placement at %.2f outside sweep bounds, ignored", c.point.X)
			return nil
		}
		if _, err := e.reg.Place(c.point, e.selected); err != nil {
			return fmt.Errorf("apply: %w", err)
		}
	default:
		return fmt.Errorf("apply: unknown command %d", int(c.kind))
	}
	return nil
}
