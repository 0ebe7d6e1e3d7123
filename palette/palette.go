package palette

import (
	"fmt"
	"image/color"
	"strings"
)

// Color tags one entry of the fixed palette. The simulation only ever
// references tags; the render surface maps them to RGBA at draw time.
type Color uint8

const (
	Unset Color = iota
	Ink         // background
	Floor       // room interior
	Bone        // the actor
	Slate       // obstacles
	Rust        // brute-type hostiles
	Moss        // stalker-type hostiles
	Fang        // skitter-type hostiles
	Brass       // projectiles
	Blood       // damage particles
	Glow        // doors and highlights
)

var names = map[Color]string{
	Unset: "unset",
	Ink:   "ink",
	Floor: "floor",
	Bone:  "bone",
	Slate: "slate",
	Rust:  "rust",
	Moss:  "moss",
	Fang:  "fang",
	Brass: "brass",
	Blood: "blood",
	Glow:  "glow",
}

var rgba = map[Color]color.RGBA{
	Ink:   {R: 0x12, G: 0x12, B: 0x16, A: 0xff},
	Floor: {R: 0x1c, G: 0x1d, B: 0x24, A: 0xff},
	Bone:  {R: 0xe8, G: 0xe3, B: 0xd4, A: 0xff},
	Slate: {R: 0x4a, G: 0x50, B: 0x5c, A: 0xff},
	Rust:  {R: 0xb5, G: 0x4a, B: 0x32, A: 0xff},
	Moss:  {R: 0x5d, G: 0x8a, B: 0x4a, A: 0xff},
	Fang:  {R: 0xc9, G: 0x8f, B: 0xc9, A: 0xff},
	Brass: {R: 0xd9, G: 0xa8, B: 0x3c, A: 0xff},
	Blood: {R: 0xc0, G: 0x30, B: 0x30, A: 0xff},
	Glow:  {R: 0x6e, G: 0xc1, B: 0xd6, A: 0xff},
}

// RGBA returns the display color for tag c. Unknown tags come back loud
// magenta so a bad tag is visible instead of invisible.
func RGBA(c Color) color.RGBA {
	if v, ok := rgba[c]; ok {
		return v
	}
	return color.RGBA{R: 0xff, B: 0xff, A: 0xff}
}

func (c Color) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// Parse resolves a palette tag by name. Spec files reference colors as
// lowercase names.
func Parse(name string) (Color, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for c, n := range names {
		if n == want {
			return c, nil
		}
	}
	return Unset, fmt.Errorf("palette: unknown color %q", name)
}
