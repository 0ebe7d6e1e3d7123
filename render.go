package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/topdown/geom"
	"github.com/milk9111/topdown/palette"
	"github.com/milk9111/topdown/sim"
)

// Renderer draws the simulation's quads onto the current frame. Everything
// on screen is one white pixel stretched, rotated, and tinted, so there are
// no image assets to load and the palette stays authoritative.
type Renderer struct {
	pixel  *ebiten.Image
	screen *ebiten.Image
}

var _ sim.RenderSurface = (*Renderer)(nil)

func NewRenderer() *Renderer {
	px := ebiten.NewImage(1, 1)
	px.Fill(color.White)
	return &Renderer{pixel: px}
}

// Begin points the renderer at this frame's target and clears it.
func (r *Renderer) Begin(screen *ebiten.Image) {
	r.screen = screen
	screen.Fill(palette.RGBA(palette.Ink))
}

func (r *Renderer) DrawQuad(rect geom.Rect, angle float64, c palette.Color, opacity float64) {
	if r.screen == nil || rect.W <= 0 || rect.H <= 0 || opacity <= 0 {
		return
	}

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	op.GeoM.Translate(-0.5, -0.5)
	op.GeoM.Scale(rect.W, rect.H)
	op.GeoM.Rotate(angle)
	center := rect.Center()
	op.GeoM.Translate(center.X, center.Y)
	op.ColorScale.ScaleWithColor(palette.RGBA(c))
	if opacity < 1 {
		op.ColorScale.ScaleAlpha(float32(opacity))
	}
	r.screen.DrawImage(r.pixel, op)
}
