package layout

import "math"

// Constraints bound a node's size during measurement. Max values may be
// +Inf for unbounded axes.
type Constraints struct {
	MinWidth, MaxWidth   float64
	MinHeight, MaxHeight float64
}

// Tight returns constraints that force an exact size.
func Tight(width, height float64) Constraints {
	return Constraints{
		MinWidth: width, MaxWidth: width,
		MinHeight: height, MaxHeight: height,
	}
}

// Loose returns constraints from zero up to the given size.
func Loose(width, height float64) Constraints {
	return Constraints{MaxWidth: width, MaxHeight: height}
}

// Unbounded returns constraints with no upper bound on either axis.
func Unbounded() Constraints {
	return Constraints{MaxWidth: math.Inf(1), MaxHeight: math.Inf(1)}
}

// BoundedWidth reports whether the width has a finite upper bound.
func (c Constraints) BoundedWidth() bool {
	return !math.IsInf(c.MaxWidth, 1)
}

// BoundedHeight reports whether the height has a finite upper bound.
func (c Constraints) BoundedHeight() bool {
	return !math.IsInf(c.MaxHeight, 1)
}

// ConstrainWidth clamps w into [MinWidth, MaxWidth].
func (c Constraints) ConstrainWidth(w float64) float64 {
	return clamp(w, c.MinWidth, c.MaxWidth)
}

// ConstrainHeight clamps h into [MinHeight, MaxHeight].
func (c Constraints) ConstrainHeight(h float64) float64 {
	return clamp(h, c.MinHeight, c.MaxHeight)
}

// Constrain clamps a size on both axes.
func (c Constraints) Constrain(s Size) Size {
	return Size{
		Width:  c.ConstrainWidth(s.Width),
		Height: c.ConstrainHeight(s.Height),
	}
}

// availableWidth returns the finite width to resolve percentages and
// fills against, or the fallback when unbounded.
func (c Constraints) availableWidth(fallback float64) float64 {
	if c.BoundedWidth() {
		return c.MaxWidth
	}
	return fallback
}

// availableHeight is availableWidth for the vertical axis.
func (c Constraints) availableHeight(fallback float64) float64 {
	if c.BoundedHeight() {
		return c.MaxHeight
	}
	return fallback
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins (matches CSS behavior).
func clamp(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}
