// Package text provides the measurement capability layout strategies
// depend on: mapping a string at a font size, optionally under a wrap
// width, to a display size.
//
// Heuristic is the default used by the layout engine; Face wraps a real
// font.Face for embedders that shape text; Fixed pins every dimension
// for deterministic tests.
package text

// Measurer maps text to a display size. maxWidth above zero requests
// wrapping; zero or below means a single unwrapped line.
type Measurer interface {
	Measure(text string, fontSize, maxWidth float64) (width, height float64)
}

// Fixed is a deterministic measurer for tests: every rune is CharWidth
// wide and every line LineHeight tall, regardless of font size.
type Fixed struct {
	CharWidth  float64
	LineHeight float64
}

// Measure implements Measurer. Wrapping splits on rune count only.
func (f Fixed) Measure(s string, _ float64, maxWidth float64) (float64, float64) {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0, f.LineHeight
	}
	if maxWidth <= 0 || f.CharWidth <= 0 {
		return float64(len(runes)) * f.CharWidth, f.LineHeight
	}

	perLine := int(maxWidth / f.CharWidth)
	if perLine < 1 {
		perLine = 1
	}
	lines := (len(runes) + perLine - 1) / perLine
	longest := perLine
	if len(runes) < perLine {
		longest = len(runes)
	}
	return float64(longest) * f.CharWidth, float64(lines) * f.LineHeight
}
