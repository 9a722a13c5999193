package text

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/mattn/go-runewidth"
)

// Default proportions for the heuristic measurer. A glyph cell is about
// half the font size wide; a line is 1.2 times the font size tall.
const (
	DefaultCharWidthRatio  = 0.5
	DefaultLineHeightRatio = 1.2
)

// Heuristic estimates text size without a real font: each display cell
// is CharWidthRatio times the font size wide, each line LineHeightRatio
// times the font size tall. Display cells come from go-runewidth, so
// wide CJK runes count double. With a wrap width, text breaks greedily
// at UAX #29 word boundaries.
type Heuristic struct {
	CharWidthRatio  float64
	LineHeightRatio float64
}

// NewHeuristic returns a Heuristic with the default ratios.
func NewHeuristic() *Heuristic {
	return &Heuristic{
		CharWidthRatio:  DefaultCharWidthRatio,
		LineHeightRatio: DefaultLineHeightRatio,
	}
}

// Measure implements Measurer.
func (h *Heuristic) Measure(s string, fontSize, maxWidth float64) (float64, float64) {
	cw := h.charWidth(fontSize)
	lh := h.lineHeight(fontSize)

	if s == "" {
		return 0, lh
	}
	if maxWidth <= 0 || cw <= 0 {
		return float64(runewidth.StringWidth(s)) * cw, lh
	}

	maxCells := int(maxWidth / cw)
	if maxCells < 1 {
		maxCells = 1
	}
	lines := wrapCells(s, maxCells)

	longest := 0
	for _, cells := range lines {
		if cells > longest {
			longest = cells
		}
	}
	return float64(longest) * cw, float64(len(lines)) * lh
}

func (h *Heuristic) charWidth(fontSize float64) float64 {
	r := h.CharWidthRatio
	if r <= 0 {
		r = DefaultCharWidthRatio
	}
	return r * fontSize
}

func (h *Heuristic) lineHeight(fontSize float64) float64 {
	r := h.LineHeightRatio
	if r <= 0 {
		r = DefaultLineHeightRatio
	}
	return r * fontSize
}

// wrapCells greedily packs word segments into lines of at most maxCells
// display cells, returning the cell count of each line. Explicit
// newlines always break; a segment wider than a whole line occupies its
// own line and overflows.
func wrapCells(s string, maxCells int) []int {
	var lines []int
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, wrapParagraph(para, maxCells)...)
	}
	if len(lines) == 0 {
		lines = []int{0}
	}
	return lines
}

func wrapParagraph(para string, maxCells int) []int {
	if para == "" {
		return []int{0}
	}

	var lines []int
	line := 0
	pending := 0 // whitespace cells not yet committed to the line
	tokens := words.FromString(para)
	for tokens.Next() {
		tok := tokens.Value()
		cells := runewidth.StringWidth(tok)

		// Whitespace never forces a wrap and never widens a line it
		// ends; it hangs past the edge and is dropped on wrap.
		if strings.TrimSpace(tok) == "" {
			pending += cells
			continue
		}

		if line > 0 && line+pending+cells > maxCells {
			lines = append(lines, line)
			line, pending = 0, 0
		}
		line += pending + cells
		pending = 0
	}
	return append(lines, line)
}
