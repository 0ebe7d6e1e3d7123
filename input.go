package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/topdown/geom"
	"github.com/milk9111/topdown/sim"
)

// keyNames maps the names the simulation may query to concrete keys, so
// rebinding stays in one place.
var keyNames = map[string]ebiten.Key{
	"up":    ebiten.KeyW,
	"down":  ebiten.KeyS,
	"left":  ebiten.KeyA,
	"right": ebiten.KeyD,
	"focus": ebiten.KeyShiftLeft,
	"pause": ebiten.KeyEscape,
}

// Input samples the keyboard and mouse once per frame into the shape the
// simulation reads. Just-pressed values come from inpututil, so they are
// true for exactly one frame.
type Input struct {
	move    cp.Vector
	pointer cp.Vector
	fire    bool
}

var _ sim.InputSource = (*Input)(nil)

func NewInput() *Input {
	return &Input{}
}

// Update polls devices. Call once per frame, before stepping the world.
func (i *Input) Update() {
	var move cp.Vector
	if ebiten.IsKeyPressed(keyNames["up"]) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		move.Y -= 1
	}
	if ebiten.IsKeyPressed(keyNames["down"]) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		move.Y += 1
	}
	if ebiten.IsKeyPressed(keyNames["left"]) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		move.X -= 1
	}
	if ebiten.IsKeyPressed(keyNames["right"]) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		move.X += 1
	}
	i.move = geom.Normalize(move)

	mx, my := ebiten.CursorPosition()
	i.pointer = cp.Vector{X: float64(mx), Y: float64(my)}

	i.fire = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

func (i *Input) Move() cp.Vector {
	return i.move
}

func (i *Input) Pointer() cp.Vector {
	return i.pointer
}

func (i *Input) FireJustPressed() bool {
	return i.fire
}

// KeyDown answers by-name key queries. Unknown names are simply up.
func (i *Input) KeyDown(name string) bool {
	k, ok := keyNames[name]
	if !ok {
		return false
	}
	return ebiten.IsKeyPressed(k)
}
