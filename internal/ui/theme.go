package ui

import (
	"image/color"

	"github.com/ingyamilmolinar/planebeat/core/model"
)

var (
	ColorBackground = color.RGBA{0x12, 0x12, 0x1a, 0xff}
	ColorPlane      = color.RGBA{0x1e, 0x1e, 0x2a, 0xff}
	ColorPlaneEdge  = color.RGBA{0x3a, 0x3a, 0x4e, 0xff}
	ColorPlayhead   = color.RGBA{0xe8, 0xe8, 0xf0, 0xc0}
)

var instrumentColors = map[model.InstrumentType]color.RGBA{
	model.Synth: {0x4e, 0xc9, 0xb0, 0xff},
	model.Pluck: {0xd7, 0xba, 0x7d, 0xff},
	model.Kick:  {0xf4, 0x6a, 0x6a, 0xff},
}

// InstrumentColor is exhaustive over the catalog; an unknown type is a
// programming error upstream, so a plain map read is enough here.
func InstrumentColor(t model.InstrumentType) color.RGBA {
	return instrumentColors[t]
}

// highlightColor brightens c toward white by h in [0,1].
func highlightColor(c color.RGBA, h float64) color.RGBA {
	lift := func(v uint8) uint8 {
		return uint8(float64(v) + (255-float64(v))*h)
	}
	return color.RGBA{lift(c.R), lift(c.G), lift(c.B), c.A}
}
