package plot

import (
	"fmt"
	"math"
	"strconv"
)

// gridTickSpacing is the vertical distance between tick marks and the
// bucket size used to pick the highlighted label row
const gridTickSpacing = 16

// Config holds the fixed construction parameters of a Plotter
type Config struct {
	Capacity      int     // rolling window width, in samples
	HeightLimit   int     // clamp ceiling, also the plot area height
	Scale         float64 // multiplier converting a raw sample to buffer units
	LabelInterval int     // vertical spacing between numeric labels
}

// Validate reports the first misconfiguration, or nil
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("plot: capacity must be positive, got %d", c.Capacity)
	}
	if c.HeightLimit <= 0 {
		return fmt.Errorf("plot: height limit must be positive, got %d", c.HeightLimit)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("plot: scale must be positive, got %g", c.Scale)
	}
	if c.LabelInterval <= 0 {
		return fmt.Errorf("plot: label interval must be positive, got %d", c.LabelInterval)
	}
	return nil
}

// Plotter maintains a fixed-size ring of recent sample magnitudes and
// renders them as a vertical-bar sparkline with gridlines and labels.
// Ingest is O(1), Render is O(capacity); neither allocates after New.
// Not safe for concurrent use, callers sharing it across goroutines
// must synchronize externally.
type Plotter struct {
	capacity      int
	height        int
	scale         float64
	labelInterval int

	points []int // ring, every entry in [0, height]
	index  int   // cursor of most recent sample, in [0, capacity)

	x, y int // top-left of the plot area in surface units
}

// New creates a Plotter, failing fast on misconfiguration
func New(cfg Config) (*Plotter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Plotter{
		capacity:      cfg.Capacity,
		height:        cfg.HeightLimit,
		scale:         cfg.Scale,
		labelInterval: cfg.LabelInterval,
		points:        make([]int, cfg.Capacity),
	}, nil
}

// SetPosition places the plot area's top-left corner
func (p *Plotter) SetPosition(x, y int) {
	p.x, p.y = x, y
}

// Width returns the plot area width (the sample capacity)
func (p *Plotter) Width() int {
	return p.capacity
}

// Height returns the plot area height (the clamp ceiling)
func (p *Plotter) Height() int {
	return p.height
}

// Ingest records one sample, overwriting the oldest entry once the
// window is full. Out-of-range input is clamped, never rejected: a
// pathological frame spike must not take the overlay down with it.
func (p *Plotter) Ingest(raw float64) {
	// The wrap must apply to the whole increment. The precedence
	// variant index+1%capacity walks off the end after the first lap.
	p.index = (p.index + 1) % p.capacity

	v := int(math.Round(raw * p.scale))
	if v < 0 {
		v = 0
	}
	if v > p.height {
		v = p.height
	}
	p.points[p.index] = v
}

// Current returns the most recently stored value in buffer units
func (p *Plotter) Current() int {
	return p.points[p.index]
}

// Snapshot copies the retained values in chronological order,
// oldest first. The last entry is the most recent sample.
func (p *Plotter) Snapshot() []int {
	out := make([]int, p.capacity)
	for i := 0; i < p.capacity; i++ {
		out[i] = p.points[(p.index+1+i)%p.capacity]
	}
	return out
}

// Render draws the sparkline, frame, gridline ticks and labels onto
// surface. It reads plotter state without mutating it, so calling it
// any number of times between ingests draws identical output.
func (p *Plotter) Render(surface Surface, font Font) {
	dim := White(0.2)

	// Bars, oldest to newest, anchored at the bottom edge
	surface.SetLineWidth(1)
	for i := 1; i < p.capacity; i++ {
		j := (p.index + i) % p.capacity
		x := p.x + i
		surface.Line(x, p.y+p.height-p.points[j], x, p.y+p.height, dim)
	}

	surface.Rect(p.x, p.y, p.capacity, p.height, dim)

	// Tick marks straddling the right edge
	for y := 0; y < p.height; y += gridTickSpacing {
		surface.Line(p.x+p.capacity-4, p.y+p.height-y, p.x+p.capacity+4, p.y+p.height-y, dim)
	}

	// Numeric labels, right-aligned past the right edge; the row the
	// live sample falls into shows the live value at higher opacity
	current := p.points[p.index]
	labelX := p.x + p.capacity + 2
	column := font.Measure(formatScaled(p.height, p.scale))
	for y := 0; y < p.height; y += p.labelInterval {
		var text string
		c := dim
		if current/gridTickSpacing == y/p.labelInterval {
			c = White(0.5)
			text = formatScaled(current, p.scale)
		} else {
			text = formatScaled(y, p.scale)
		}
		font.Draw(text, labelX+column-font.Measure(text), p.y+p.height-y-p.labelInterval, c)
	}
}

// formatScaled converts a buffer-unit value back to the raw metric
// domain with three decimals, matching the label precision of the
// debug HUD
func formatScaled(v int, scale float64) string {
	return strconv.FormatFloat(float64(v)/scale, 'f', 3, 64)
}
