// Package ui renders the sequencing plane with ebiten and turns input into
// engine commands. It never mutates engine state directly: clicks and keys
// become commands, drawing reads snapshots.
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ingyamilmolinar/planebeat/core/engine"
	"github.com/ingyamilmolinar/planebeat/core/model"
	game_log "github.com/ingyamilmolinar/planebeat/internal/log"
)

const nodeRadius = 7.0

// Game is the ebiten front end over a running engine.
type Game struct {
	eng    *engine.Engine
	view   *View
	logger *game_log.Logger
}

func New(eng *engine.Engine, view *View, logger *game_log.Logger) *Game {
	return &Game{eng: eng, view: view, logger: logger}
}

var instrumentKeys = map[ebiten.Key]model.InstrumentType{
	ebiten.Key1: model.Synth,
	ebiten.Key2: model.Pluck,
	ebiten.Key3: model.Kick,
}

func (g *Game) Update() error {
	for key, t := range instrumentKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.eng.SetInstrument(t)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.eng.Status().Running {
			g.eng.Stop()
		} else {
			g.eng.Play()
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if pt, ok := g.view.ScreenToPlane(x, y); ok {
			g.eng.Place(pt)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)
	st := g.eng.Status()

	// plane
	vector.DrawFilledRect(screen, 0, topOffset, float32(g.view.W), float32(g.view.H-topOffset), ColorPlane, false)
	vector.StrokeRect(screen, 0, topOffset, float32(g.view.W), float32(g.view.H-topOffset), 1, ColorPlaneEdge, false)

	// nodes
	for _, n := range g.eng.Snapshot() {
		sx, sy := g.view.PlaneToScreen(n.Pos)
		clr := highlightColor(InstrumentColor(n.Type), n.Highlight)
		r := float32(nodeRadius * n.ScaleImpulse)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), r, clr, true)
	}

	// playhead
	px := float32(g.view.SweepX(st.Pos))
	vector.StrokeLine(screen, px, topOffset, px, float32(g.view.H), 1.5, ColorPlayhead, true)

	g.drawTransport(screen, st)
}

func (g *Game) drawTransport(screen *ebiten.Image, st engine.Status) {
	state := "stopped"
	if st.Running {
		state = "playing"
	}
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("[space] %s  pos %.1f", state, st.Pos), 8, 6)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("[1] synth [2] pluck [3] kick   selected: %s", st.Selected), 8, 22)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.view.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
