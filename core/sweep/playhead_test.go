package sweep

import "testing"

func TestNewPlayheadValidatesParams(t *testing.T) {
	if _, err := NewPlayhead(100, -100, 0.5); err == nil {
		t.Fatal("expected error for inverted bounds")
	}
	if _, err := NewPlayhead(-100, 100, 0); err == nil {
		t.Fatal("expected error for zero velocity")
	}
	if _, err := NewPlayhead(-100, 100, -1); err == nil {
		t.Fatal("expected error for negative velocity")
	}
}

func TestPlayheadStartsStoppedAtMin(t *testing.T) {
	p, err := NewPlayhead(-100, 100, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if p.Running() {
		t.Fatal("playhead must start stopped")
	}
	if p.Pos != -100 {
		t.Fatalf("playhead starts at %v, want -100", p.Pos)
	}
	if p.Advance() {
		t.Fatal("advance while stopped reported a wrap")
	}
	if p.Pos != -100 {
		t.Fatalf("advance while stopped moved playhead to %v", p.Pos)
	}
}

func TestAdvanceAndWrap(t *testing.T) {
	p, _ := NewPlayhead(-1, 1, 0.5)
	p.Play()

	positions := []float64{-0.5, 0, 0.5, 1}
	for i, want := range positions {
		if wrapped := p.Advance(); wrapped {
			t.Fatalf("tick %d wrapped early at %v", i, p.Pos)
		}
		if p.Pos != want {
			t.Fatalf("tick %d: pos = %v, want %v", i, p.Pos, want)
		}
	}
	// next advance crosses Max and snaps back
	if !p.Advance() {
		t.Fatalf("expected wrap, pos = %v", p.Pos)
	}
	if p.Pos != -1 {
		t.Fatalf("wrap landed at %v, want -1", p.Pos)
	}
}

func TestStopFreezesPosition(t *testing.T) {
	p, _ := NewPlayhead(-100, 100, 0.5)
	p.Play()
	for i := 0; i < 10; i++ {
		p.Advance()
	}
	frozen := p.Pos
	p.Stop()
	for i := 0; i < 10; i++ {
		p.Advance()
	}
	if p.Pos != frozen {
		t.Fatalf("stop must freeze position: %v != %v", p.Pos, frozen)
	}
	p.Play()
	p.Advance()
	if p.Pos != frozen+0.5 {
		t.Fatalf("resume must continue from frozen position, got %v", p.Pos)
	}
}
