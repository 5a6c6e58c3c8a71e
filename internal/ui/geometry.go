package ui

import "github.com/ingyamilmolinar/planebeat/core/model"

// topOffset reserves room for the transport readout, in px.
const topOffset = 40

// View maps the square sequencing plane onto the window below the
// transport bar. The sweep runs left to right along X; Z grows downward.
// The plane uses the sweep bounds on both axes.
type View struct {
	Min, Max float64
	W, H     int
}

func NewView(min, max float64, w, h int) *View {
	return &View{Min: min, Max: max, W: w, H: h}
}

func (v *View) planeSpan() float64 { return v.Max - v.Min }

// PlaneToScreen projects a plane point to window pixels.
func (v *View) PlaneToScreen(pt model.PlanePoint) (sx, sy float64) {
	span := v.planeSpan()
	sx = (pt.X - v.Min) / span * float64(v.W)
	sy = (pt.Z-v.Min)/span*float64(v.H-topOffset) + topOffset
	return sx, sy
}

// SweepX projects a position on the sweep axis to a screen X.
func (v *View) SweepX(x float64) float64 {
	return (x - v.Min) / v.planeSpan() * float64(v.W)
}

// ScreenToPlane converts a cursor position to a plane point. The second
// return is false when the cursor misses the plane (transport bar or
// outside the window); no selection point is produced then.
func (v *View) ScreenToPlane(sx, sy int) (model.PlanePoint, bool) {
	if sx < 0 || sx >= v.W || sy < topOffset || sy >= v.H {
		return model.PlanePoint{}, false
	}
	span := v.planeSpan()
	return model.PlanePoint{
		X: v.Min + float64(sx)/float64(v.W)*span,
		Z: v.Min + float64(sy-topOffset)/float64(v.H-topOffset)*span,
	}, true
}

// Resize updates the projection for a new window size.
func (v *View) Resize(w, h int) {
	v.W, v.H = w, h
}
