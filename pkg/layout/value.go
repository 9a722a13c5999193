package layout

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size determined by content/flex
	UnitPx                  // Absolute pixels
	UnitPercent             // Percentage of parent's content size
)

// unitCount marks the end of the valid Unit range. Ordinals at or above
// this (e.g. from a hand-built Style) degrade to auto with a trace warning.
const unitCount = UnitPercent + 1

// Value represents a dimension that can be pixels, a percentage, or auto.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value that should be computed from content or flex.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Px returns a Value representing an absolute number of pixels.
func Px(n float64) Value {
	return Value{Amount: n, Unit: UnitPx}
}

// Percent returns a Value representing a percentage of available space.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve computes the concrete value given the parent's content size.
// For UnitAuto (and unrecognized units), returns the fallback value.
func (v Value) Resolve(parent, fallback float64) float64 {
	switch v.Unit {
	case UnitPx:
		return v.Amount
	case UnitPercent:
		return parent * v.Amount / 100.0
	default:
		return fallback
	}
}

// IsAuto returns true if this value should be computed from content or flex.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// valid reports whether the unit ordinal is in the known range.
func (v Value) valid() bool {
	return v.Unit < unitCount
}
