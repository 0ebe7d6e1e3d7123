package sim

import "github.com/jakecoffman/cp"

// InputSource is everything the simulation reads from the player. The host
// samples real devices into this shape once per frame; tests hand in
// stubs. Edge-triggered values reset on the host's side, so FireJustPressed
// is read at most once per Step.
type InputSource interface {
	// Move returns the movement intent, already normalized. Zero means
	// no input.
	Move() cp.Vector
	// Pointer returns the aim position in world coordinates.
	Pointer() cp.Vector
	// FireJustPressed reports a fire press that happened this frame.
	FireJustPressed() bool
	// KeyDown reports whether the named key is currently held.
	KeyDown(name string) bool
}
