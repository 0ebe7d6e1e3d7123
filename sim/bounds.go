package sim

import "github.com/milk9111/topdown/geom"

// Bounds is the narrow read-only view entity updates get of the world.
type Bounds interface {
	PlayBounds() geom.Rect
}
