package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/topdown/palette"
	"github.com/milk9111/topdown/sim"
)

const (
	hudPaddingX  = 12.0
	hudPaddingY  = 12.0
	heartW       = 16.0
	heartH       = 14.0
	heartSpacing = 6.0
	hudLineH     = 16.0

	noticeTicks = 150 // 2.5s at 60 ticks per second
	noticeFade  = 30  // last ticks ramp alpha down
	maxNotices  = 4
)

type notice struct {
	text string
	left int
}

// HUD paints health, score, bounty progress, and short-lived notices
// straight onto the frame after the world has drawn.
type HUD struct {
	face    ebtext.Face
	pixel   *ebiten.Image
	notices []notice
}

func NewHUD() *HUD {
	px := ebiten.NewImage(1, 1)
	px.Fill(color.White)
	return &HUD{
		face:  ebtext.NewGoXFace(basicfont.Face7x13),
		pixel: px,
	}
}

// Notify queues a short message. The oldest drops once the queue is full.
func (h *HUD) Notify(text string) {
	if text == "" {
		return
	}
	h.notices = append(h.notices, notice{text: text, left: noticeTicks})
	if len(h.notices) > maxNotices {
		h.notices = h.notices[len(h.notices)-maxNotices:]
	}
}

func (h *HUD) Update() {
	writeIdx := 0
	for i := range h.notices {
		h.notices[i].left--
		if h.notices[i].left <= 0 {
			continue
		}
		h.notices[writeIdx] = h.notices[i]
		writeIdx++
	}
	h.notices = h.notices[:writeIdx]
}

func (h *HUD) Draw(screen *ebiten.Image, w *sim.World) {
	if screen == nil || w == nil {
		return
	}
	screenW := float64(screen.Bounds().Dx())
	screenH := float64(screen.Bounds().Dy())

	hp, maxHP := w.ActorHP()
	if hp < 0 {
		hp = 0
	}
	if hp > maxHP {
		hp = maxHP
	}
	for slot := 0; slot < maxHP; slot++ {
		c := palette.Blood
		if slot >= hp {
			c = palette.Slate
		}
		x := hudPaddingX + float64(slot)*(heartW+heartSpacing)
		h.fillRect(screen, x, hudPaddingY, heartW, heartH, palette.RGBA(c))
	}

	score := fmt.Sprintf("%06d", w.Score())
	sw, _ := ebtext.Measure(score, h.face, hudLineH)
	h.drawText(screen, score, screenW-hudPaddingX-sw, hudPaddingY, 1)

	h.drawText(screen, w.RoomName(), hudPaddingX, screenH-hudPaddingY-hudLineH, 1)

	if q := w.QuestState(); q.Target > 0 {
		bounty := fmt.Sprintf("bounty %d / %d", q.Current, q.Target)
		if q.Completed {
			bounty = "bounty cleared"
		}
		bw, _ := ebtext.Measure(bounty, h.face, hudLineH)
		h.drawText(screen, bounty, screenW-hudPaddingX-bw, screenH-hudPaddingY-hudLineH, 1)
	}

	y := screenH * 0.22
	for _, n := range h.notices {
		alpha := 1.0
		if n.left < noticeFade {
			alpha = float64(n.left) / noticeFade
		}
		nw, _ := ebtext.Measure(n.text, h.face, hudLineH)
		h.drawText(screen, n.text, (screenW-nw)/2, y, alpha)
		y += hudLineH + 4
	}
}

func (h *HUD) fillRect(screen *ebiten.Image, x, y, w, ht float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, ht)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(h.pixel, op)
}

func (h *HUD) drawText(screen *ebiten.Image, s string, x, y, alpha float64) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(palette.RGBA(palette.Bone))
	if alpha < 1 {
		op.ColorScale.ScaleAlpha(float32(alpha))
	}
	ebtext.Draw(screen, s, h.face, op)
}
