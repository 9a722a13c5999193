package text

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestHeuristicSingleLine(t *testing.T) {
	type tc struct {
		text     string
		fontSize float64
		wantW    float64
		wantH    float64
	}

	tests := map[string]tc{
		"empty":        {text: "", fontSize: 16, wantW: 0, wantH: 19.2},
		"ascii":        {text: "hello", fontSize: 16, wantW: 40, wantH: 19.2},
		"larger font":  {text: "hi", fontSize: 20, wantW: 20, wantH: 24},
		"wide runes":   {text: "世界", fontSize: 16, wantW: 32, wantH: 19.2},
		"mixed widths": {text: "a世", fontSize: 16, wantW: 24, wantH: 19.2},
	}

	h := NewHeuristic()
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w, lh := h.Measure(tt.text, tt.fontSize, 0)
			if !approx(w, tt.wantW) {
				t.Errorf("width = %v, want %v", w, tt.wantW)
			}
			if !approx(lh, tt.wantH) {
				t.Errorf("height = %v, want %v", lh, tt.wantH)
			}
		})
	}
}

func TestHeuristicWrapping(t *testing.T) {
	h := NewHeuristic()

	// Char width is 8 at font size 16; 32 units fit 4 cells.
	w, hgt := h.Measure("aaa bbb ccc", 16, 32)
	if !approx(hgt, 3*19.2) {
		t.Errorf("height = %v, want three lines (%v)", hgt, 3*19.2)
	}
	if w > 32+1e-9 {
		t.Errorf("width = %v, want at most the wrap width", w)
	}

	// A word wider than the line occupies its own overflowing line.
	w, _ = h.Measure("abcdefgh", 16, 32)
	if !approx(w, 64) {
		t.Errorf("overflow width = %v, want 64", w)
	}
}

func TestHeuristicWrapWidthExcludesHangingWhitespace(t *testing.T) {
	h := NewHeuristic()

	// Char width 8 at font size 16; 40 units fit 5 cells. The space
	// before the wrapped word hangs and must not count.
	w, hgt := h.Measure("aa bb cc", 16, 40)
	if w > 40+1e-9 {
		t.Errorf("width = %v, want at most the wrap width", w)
	}
	if !approx(hgt, 2*19.2) {
		t.Errorf("height = %v, want two lines (%v)", hgt, 2*19.2)
	}

	// Trailing spaces hang off the only line.
	w, hgt = h.Measure("aa   ", 16, 32)
	if !approx(w, 16) {
		t.Errorf("width = %v, want 16", w)
	}
	if !approx(hgt, 19.2) {
		t.Errorf("height = %v, want one line", hgt)
	}
}

func TestHeuristicExplicitNewlines(t *testing.T) {
	h := NewHeuristic()
	_, hgt := h.Measure("a\nb\nc", 16, 0)
	if !approx(hgt, 19.2) {
		// Without a wrap width the measurement is single-line only.
		t.Errorf("unwrapped height = %v, want one line", hgt)
	}

	_, hgt = h.Measure("a\nb\nc", 16, 1000)
	if !approx(hgt, 3*19.2) {
		t.Errorf("wrapped height = %v, want three lines", hgt)
	}
}

func TestFixedMeasurer(t *testing.T) {
	f := Fixed{CharWidth: 10, LineHeight: 20}

	w, h := f.Measure("abc", 99, 0)
	if !approx(w, 30) || !approx(h, 20) {
		t.Errorf("Measure = (%v, %v), want (30, 20)", w, h)
	}

	// 25 units fit two 10-wide cells per line.
	w, h = f.Measure("abcd", 99, 25)
	if !approx(w, 20) || !approx(h, 40) {
		t.Errorf("wrapped Measure = (%v, %v), want (20, 40)", w, h)
	}
}
