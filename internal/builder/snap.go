package builder

import "math"

// DefaultGridSize is the canvas grid step in layout pixels.
const DefaultGridSize = 10

// Grid quantizes coordinates to a grid step.
type Grid struct {
	Size    float64
	Enabled bool
}

// Snap rounds v to the nearest grid multiple when snapping is enabled,
// otherwise returns v unchanged. Idempotent for any grid size > 0.
func (g Grid) Snap(v float64) float64 {
	if !g.Enabled || g.Size <= 0 {
		return v
	}
	return math.Round(v/g.Size) * g.Size
}
