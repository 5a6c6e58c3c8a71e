package engine

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/ingyamilmolinar/planebeat/core/model"
	"github.com/ingyamilmolinar/planebeat/core/sweep"
	game_log "github.com/ingyamilmolinar/planebeat/internal/log"
)

var testLogger = game_log.New(os.Stdout, game_log.LevelError)

type countingDispatcher struct {
	counts map[model.InstrumentType]int
}

func newCountingDispatcher() *countingDispatcher {
	return &countingDispatcher{counts: map[model.InstrumentType]int{}}
}

func (d *countingDispatcher) Dispatch(t model.InstrumentType) { d.counts[t]++ }

// newTestEngine builds the reference scenario: bounds [-100, 100],
// velocity 0.5 per tick, tolerance 1.0.
func newTestEngine(t *testing.T) (*Engine, *countingDispatcher) {
	t.Helper()
	head, err := sweep.NewPlayhead(-100, 100, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	disp := newCountingDispatcher()
	return New(head, sweep.NewDetector(1.0), disp, testLogger), disp
}

func tick(t *testing.T, e *Engine, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := e.Tick(); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}
}

func placeScenario(t *testing.T, e *Engine) {
	t.Helper()
	e.SetInstrument(model.Synth)
	e.Place(model.PlanePoint{X: -50, Z: 0})
	e.SetInstrument(model.Pluck)
	e.Place(model.PlanePoint{X: 0, Z: 10})
	e.SetInstrument(model.Kick)
	e.Place(model.PlanePoint{X: 50, Z: -10})
}

func TestSweepTriggersEachNodeOnceAtExpectedTicks(t *testing.T) {
	e, disp := newTestEngine(t)
	placeScenario(t, e)
	e.Play()

	// position after n ticks is -100 + 0.5n; the node at -50 enters the
	// tolerance window on tick 99.
	tick(t, e, 98)
	if disp.counts[model.Synth] != 0 {
		t.Fatalf("synth fired early: %v", disp.counts)
	}
	tick(t, e, 1)
	if disp.counts[model.Synth] != 1 {
		t.Fatalf("synth not fired at tick 99: %v", disp.counts)
	}

	tick(t, e, 100) // tick 199
	if disp.counts[model.Pluck] != 1 {
		t.Fatalf("pluck not fired at tick 199: %v", disp.counts)
	}

	tick(t, e, 100) // tick 299
	if disp.counts[model.Kick] != 1 {
		t.Fatalf("kick not fired at tick 299: %v", disp.counts)
	}

	// no node fires twice within one sweep
	tick(t, e, 100) // tick 399
	for typ, c := range disp.counts {
		if c != 1 {
			t.Fatalf("%s fired %d times in one sweep", typ, c)
		}
	}
}

func TestKickTriggerAppliesScaleImpulse(t *testing.T) {
	e, _ := newTestEngine(t)
	placeScenario(t, e)
	e.Play()
	tick(t, e, 299)

	for _, n := range e.Snapshot() {
		switch n.Type {
		case model.Kick:
			// impulse 1.2 decays once in the trigger tick: 1 + 0.2*0.9
			if n.ScaleImpulse < 1.15 {
				t.Fatalf("kick scale impulse = %v, want ~1.18", n.ScaleImpulse)
			}
		case model.Synth, model.Pluck:
			if n.ScaleImpulse > 1.01 {
				t.Fatalf("%s scale impulse = %v, want baseline", n.Type, n.ScaleImpulse)
			}
		}
	}
}

func TestWrapResetsPositionAndFlags(t *testing.T) {
	e, _ := newTestEngine(t)
	placeScenario(t, e)
	e.Play()

	tick(t, e, 400)
	if st := e.Status(); st.Pos != 100 {
		t.Fatalf("pre-wrap pos = %v, want 100", st.Pos)
	}
	for _, n := range e.Snapshot() {
		if !n.Triggered {
			t.Fatalf("node %d untriggered before wrap", n.ID)
		}
	}

	tick(t, e, 1) // tick 401 crosses Max and wraps
	if st := e.Status(); st.Pos != -100 {
		t.Fatalf("post-wrap pos = %v, want -100", st.Pos)
	}
	for _, n := range e.Snapshot() {
		if n.Triggered {
			t.Fatalf("node %d still triggered after wrap", n.ID)
		}
	}
}

func TestDispatchCountPerCompletedSweep(t *testing.T) {
	e, disp := newTestEngine(t)
	placeScenario(t, e)
	e.Play()

	const sweepTicks = 401
	tick(t, e, 3*sweepTicks)
	for _, typ := range []model.InstrumentType{model.Synth, model.Pluck, model.Kick} {
		if disp.counts[typ] != 3 {
			t.Fatalf("%s dispatched %d times over 3 sweeps", typ, disp.counts[typ])
		}
	}
}

func TestStopFreezesSweepButDecayContinues(t *testing.T) {
	e, disp := newTestEngine(t)
	placeScenario(t, e)
	e.Play()
	tick(t, e, 150) // synth fired at 99, pos now -25

	e.Stop()
	tick(t, e, 1) // applies the stop
	st := e.Status()
	if st.Running {
		t.Fatal("engine still running after stop")
	}
	frozen := st.Pos

	var before float64
	for _, n := range e.Snapshot() {
		if n.Type == model.Synth {
			before = n.Highlight
		}
	}
	if before == 0 {
		t.Fatal("synth highlight should still be decaying 52 ticks after trigger")
	}

	tick(t, e, 100)
	if st := e.Status(); st.Pos != frozen {
		t.Fatalf("position moved while stopped: %v != %v", st.Pos, frozen)
	}
	if disp.counts[model.Pluck] != 0 {
		t.Fatal("trigger fired while stopped")
	}
	for _, n := range e.Snapshot() {
		if n.Type == model.Synth && n.Highlight >= before {
			t.Fatalf("highlight did not decay while stopped: %v >= %v", n.Highlight, before)
		}
		if n.Type == model.Synth && !n.Triggered {
			t.Fatal("stop must not clear trigger flags")
		}
	}
}

func TestPlacementAppliesAtomicallyBetweenTicks(t *testing.T) {
	e, disp := newTestEngine(t)
	e.Play()
	tick(t, e, 100) // pos -50

	// placed mid-sweep right on the playhead: visible to the very next tick
	e.SetInstrument(model.Pluck)
	e.Place(model.PlanePoint{X: -49.6, Z: 0})
	if e.Registry().Len() != 0 {
		t.Fatal("placement visible before the next tick drained it")
	}
	tick(t, e, 1)
	if e.Registry().Len() != 1 {
		t.Fatal("placement not applied on the next tick")
	}
	if disp.counts[model.Pluck] != 1 {
		t.Fatalf("node under the playhead did not trigger: %v", disp.counts)
	}
}

func TestPlacementOutsideSweepBoundsIsDropped(t *testing.T) {
	e, _ := newTestEngine(t)
	e.Place(model.PlanePoint{X: 250, Z: 0})
	tick(t, e, 1)
	if e.Registry().Len() != 0 {
		t.Fatal("out-of-bounds placement created a node")
	}
}

func TestInvalidInstrumentCommandStopsTheLoop(t *testing.T) {
	e, _ := newTestEngine(t)
	e.SetInstrument(model.InstrumentType(42))
	if err := e.Tick(); err == nil {
		t.Fatal("expected tick to fail on invalid instrument command")
	}
}

func TestTriggerEventsAreEmitted(t *testing.T) {
	e, _ := newTestEngine(t)
	placeScenario(t, e)
	e.Play()
	tick(t, e, 350)

	var got []model.Trigger
	for {
		select {
		case tr := <-e.Events:
			got = append(got, tr)
			continue
		default:
		}
		break
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 trigger events, got %v", got)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run returned %v on cancel", err)
		}
	case <-time.After(time.Second):
		t.Fatal("run did not stop after cancel")
	}
}
