package plot

// Color is an RGBA color with components in [0, 1]
type Color struct {
	R, G, B, A float64
}

// White returns an opaque-white color with the given alpha
func White(alpha float64) Color {
	return Color{R: 1, G: 1, B: 1, A: alpha}
}

// Surface is the minimal 2D drawing capability the plotter renders onto.
// Coordinates are in surface units (pixels, cells) with origin top-left
// and y growing downward.
type Surface interface {
	// SetLineWidth sets the stroke width for subsequent Line calls
	SetLineWidth(w int)

	// Line draws a segment from (x0, y0) to (x1, y1)
	Line(x0, y0, x1, y1 int, c Color)

	// Rect draws a rectangle outline with top-left (x, y)
	Rect(x, y, w, h int, c Color)
}

// Font measures and draws text on behalf of a Surface
type Font interface {
	// Measure returns the drawn width of text in surface units
	Measure(text string) int

	// Draw renders text with its left edge at (x, y)
	Draw(text string, x, y int, c Color)
}
