package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/frameplot/plot"
)

// Box drawing glyphs for rect outlines and lines
var (
	glyphH  = '─'
	glyphV  = '│'
	glyphTL = '┌'
	glyphTR = '┐'
	glyphBL = '└'
	glyphBR = '┘'
	glyphPt = '•'
)

// CellSurface implements plot.Surface on a tcell screen. One surface
// unit is one terminal cell; alpha is approximated by scaling the
// foreground toward the background, the terminal has no blending.
type CellSurface struct {
	screen tcell.Screen

	lineWidth int
}

// NewCellSurface wraps an initialized tcell screen
func NewCellSurface(screen tcell.Screen) *CellSurface {
	return &CellSurface{
		screen:    screen,
		lineWidth: 1,
	}
}

// SetLineWidth implements plot.Surface. Width beyond one cell thickens
// vertical lines to full blocks.
func (s *CellSurface) SetLineWidth(w int) {
	if w < 1 {
		w = 1
	}
	s.lineWidth = w
}

// Line implements plot.Surface for horizontal and vertical segments;
// other slopes step cell by cell with a point glyph
func (s *CellSurface) Line(x0, y0, x1, y1 int, c plot.Color) {
	style := styleFor(c)

	switch {
	case x0 == x1:
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		ch := glyphV
		if s.lineWidth > 1 {
			ch = '█'
		}
		for y := y0; y <= y1; y++ {
			s.screen.SetContent(x0, y, ch, nil, style)
		}
	case y0 == y1:
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		for x := x0; x <= x1; x++ {
			s.screen.SetContent(x, y0, glyphH, nil, style)
		}
	default:
		// Shallow DDA, good enough for debug widgets
		dx, dy := x1-x0, y1-y0
		steps := max(abs(dx), abs(dy))
		for i := 0; i <= steps; i++ {
			x := x0 + dx*i/steps
			y := y0 + dy*i/steps
			s.screen.SetContent(x, y, glyphPt, nil, style)
		}
	}
}

// Rect implements plot.Surface with box drawing characters
func (s *CellSurface) Rect(x, y, w, h int, c plot.Color) {
	if w < 2 || h < 2 {
		return
	}
	style := styleFor(c)

	s.screen.SetContent(x, y, glyphTL, nil, style)
	s.screen.SetContent(x+w-1, y, glyphTR, nil, style)
	s.screen.SetContent(x, y+h-1, glyphBL, nil, style)
	s.screen.SetContent(x+w-1, y+h-1, glyphBR, nil, style)
	for i := 1; i < w-1; i++ {
		s.screen.SetContent(x+i, y, glyphH, nil, style)
		s.screen.SetContent(x+i, y+h-1, glyphH, nil, style)
	}
	for i := 1; i < h-1; i++ {
		s.screen.SetContent(x, y+i, glyphV, nil, style)
		s.screen.SetContent(x+w-1, y+i, glyphV, nil, style)
	}
}

// CellFont implements plot.Font with one cell per rune
type CellFont struct {
	screen tcell.Screen
}

// NewCellFont wraps an initialized tcell screen
func NewCellFont(screen tcell.Screen) *CellFont {
	return &CellFont{screen: screen}
}

// Measure implements plot.Font
func (f *CellFont) Measure(text string) int {
	return len([]rune(text))
}

// Draw implements plot.Font
func (f *CellFont) Draw(text string, x, y int, c plot.Color) {
	style := styleFor(c)
	for i, r := range []rune(text) {
		f.screen.SetContent(x+i, y, r, nil, style)
	}
}

// styleFor maps an RGBA color to a tcell style, folding alpha into
// the channel intensity against a black background
func styleFor(c plot.Color) tcell.Style {
	r := int32(clamp01(c.R*c.A) * 255)
	g := int32(clamp01(c.G*c.A) * 255)
	b := int32(clamp01(c.B*c.A) * 255)
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(r, g, b))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
