package overlay

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/frameplot/plot"
	"github.com/lixenwraith/frameplot/status"
)

// layout constants, in surface units
const (
	marginX   = 2
	marginY   = 1
	plotGapY  = 4
	labelPadX = 12 // space reserved right of each plot for tick labels
)

// Overlay owns the debug widgets drawn over the world view: one
// rolling plot per tracked metric plus a card of registry counters.
// It ingests once per simulation tick and renders once per frame.
type Overlay struct {
	reg *status.Registry

	plots []namedPlot

	// Cached registry pointers, written every tick
	statFrameCount *atomic.Int64
	statFrameDelta *status.AtomicFloat

	cardPrefix string
	visible    bool
	width      int
}

type namedPlot struct {
	name    string
	plotter *plot.Plotter
}

// New creates an overlay backed by the given registry.
// The overlay starts hidden; the host toggles it from a hotkey.
func New(reg *status.Registry) *Overlay {
	return &Overlay{
		reg:            reg,
		statFrameCount: reg.Ints.Get("frame.count"),
		statFrameDelta: reg.Floats.Get("frame.delta"),
		cardPrefix:     "frame.",
	}
}

// AddPlot registers a named rolling plot, failing fast on a bad config
func (o *Overlay) AddPlot(name string, cfg plot.Config) error {
	p, err := plot.New(cfg)
	if err != nil {
		return fmt.Errorf("overlay: plot %q: %w", name, err)
	}
	o.plots = append(o.plots, namedPlot{name: name, plotter: p})
	return nil
}

// SetCardPrefix selects which registry keys the metrics card shows
func (o *Overlay) SetCardPrefix(prefix string) {
	o.cardPrefix = prefix
}

// Toggle flips overlay visibility
func (o *Overlay) Toggle() {
	o.visible = !o.visible
}

// IsVisible reports whether Render will draw anything
func (o *Overlay) IsVisible() bool {
	return o.visible
}

// Layout anchors the plots to the top-right corner of a surface of
// the given width, stacked vertically
func (o *Overlay) Layout(width int) {
	o.width = width
	y := marginY
	for _, np := range o.plots {
		np.plotter.SetPosition(width-np.plotter.Width()-labelPadX-marginX, y)
		y += np.plotter.Height() + plotGapY
	}
}

// Update ingests the tick's frame delta into every plot and refreshes
// the frame counters. Called once per simulation tick.
func (o *Overlay) Update(delta float64) {
	for _, np := range o.plots {
		np.plotter.Ingest(delta)
	}
	o.statFrameCount.Add(1)
	o.statFrameDelta.Set(delta)
}

// Render draws all plots and the metrics card. Pure read of overlay
// state, safe to call any number of times between updates.
func (o *Overlay) Render(surface plot.Surface, font plot.Font) {
	if !o.visible {
		return
	}

	y := marginY
	for _, np := range o.plots {
		np.plotter.Render(surface, font)
		font.Draw(np.name, o.width-np.plotter.Width()-labelPadX-marginX, y-1, plot.White(0.5))
		y += np.plotter.Height() + plotGapY
	}

	// Metrics card below the plots, left-aligned key, value after
	for _, e := range o.reg.Entries(o.cardPrefix) {
		font.Draw(e.Key+" "+e.Value, marginX, y, plot.White(0.2))
		y++
	}
}
