package text

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Face measures with a real font.Face. The face carries its own size,
// so the fontSize argument is ignored; embedders that vary sizes should
// install one engine per face or scale upstream.
type Face struct {
	face   font.Face
	lineH  float64
	spaceW float64
}

// NewFace wraps a font.Face as a Measurer.
func NewFace(f font.Face) *Face {
	m := f.Metrics()
	adv, _ := f.GlyphAdvance(' ')
	return &Face{
		face:   f,
		lineH:  fixedToFloat(m.Height),
		spaceW: fixedToFloat(adv),
	}
}

// Measure implements Measurer.
func (f *Face) Measure(s string, _ float64, maxWidth float64) (float64, float64) {
	if s == "" {
		return 0, f.lineH
	}
	if maxWidth <= 0 {
		widest := 0.0
		n := 0
		for _, line := range strings.Split(s, "\n") {
			w := fixedToFloat(font.MeasureString(f.face, line))
			if w > widest {
				widest = w
			}
			n++
		}
		return widest, float64(n) * f.lineH
	}

	widest := 0.0
	n := 0
	for _, para := range strings.Split(s, "\n") {
		for _, w := range f.wrapParagraph(para, maxWidth) {
			if w > widest {
				widest = w
			}
			n++
		}
	}
	return widest, float64(n) * f.lineH
}

// wrapParagraph greedily packs word segments into lines no wider than
// maxWidth, returning each line's advance.
func (f *Face) wrapParagraph(para string, maxWidth float64) []float64 {
	if para == "" {
		return []float64{0}
	}

	var lines []float64
	line := 0.0
	pending := 0.0 // hanging whitespace advance, dropped on wrap
	tokens := words.FromString(para)
	for tokens.Next() {
		tok := tokens.Value()
		w := fixedToFloat(font.MeasureString(f.face, tok))

		if strings.TrimSpace(tok) == "" {
			pending += w
			continue
		}

		if line > 0 && line+pending+w > maxWidth {
			lines = append(lines, line)
			line, pending = 0, 0
		}
		line += pending + w
		pending = 0
	}
	return append(lines, line)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
