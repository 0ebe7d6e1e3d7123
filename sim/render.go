package sim

import (
	"github.com/milk9111/topdown/geom"
	"github.com/milk9111/topdown/palette"
)

// RenderSurface is the single drawing primitive the simulation knows
// about. Everything on screen is a colored quad: rooms, entities, and
// particles alike. Keeping the surface this narrow is what lets the whole
// sim package run headless under go test.
type RenderSurface interface {
	DrawQuad(rect geom.Rect, angle float64, c palette.Color, opacity float64)
}
