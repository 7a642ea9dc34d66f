package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/frameplot/plot"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init failed: %v", err)
	}
	screen.SetSize(40, 20)
	return screen
}

func runeAt(t *testing.T, screen tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	ch, _, _, _ := screen.GetContent(x, y)
	return ch
}

func TestVerticalLine(t *testing.T) {
	screen := newSimScreen(t)
	defer screen.Fini()
	s := NewCellSurface(screen)

	s.Line(3, 2, 3, 5, plot.White(0.2))
	for y := 2; y <= 5; y++ {
		if got := runeAt(t, screen, 3, y); got != '│' {
			t.Errorf("Expected '│' at (3,%d), got %q", y, got)
		}
	}
	if got := runeAt(t, screen, 3, 6); got == '│' {
		t.Error("Expected line to stop at y=5")
	}
}

func TestHorizontalLineReversedEndpoints(t *testing.T) {
	screen := newSimScreen(t)
	defer screen.Fini()
	s := NewCellSurface(screen)

	s.Line(8, 4, 2, 4, plot.White(1))
	for x := 2; x <= 8; x++ {
		if got := runeAt(t, screen, x, 4); got != '─' {
			t.Errorf("Expected '─' at (%d,4), got %q", x, got)
		}
	}
}

func TestRectOutline(t *testing.T) {
	screen := newSimScreen(t)
	defer screen.Fini()
	s := NewCellSurface(screen)

	s.Rect(1, 1, 5, 4, plot.White(0.5))

	if got := runeAt(t, screen, 1, 1); got != '┌' {
		t.Errorf("Expected '┌' top-left, got %q", got)
	}
	if got := runeAt(t, screen, 5, 1); got != '┐' {
		t.Errorf("Expected '┐' top-right, got %q", got)
	}
	if got := runeAt(t, screen, 1, 4); got != '└' {
		t.Errorf("Expected '└' bottom-left, got %q", got)
	}
	if got := runeAt(t, screen, 5, 4); got != '┘' {
		t.Errorf("Expected '┘' bottom-right, got %q", got)
	}
	if got := runeAt(t, screen, 3, 1); got != '─' {
		t.Errorf("Expected '─' on top edge, got %q", got)
	}
	if got := runeAt(t, screen, 1, 2); got != '│' {
		t.Errorf("Expected '│' on left edge, got %q", got)
	}
	// Interior untouched
	if got := runeAt(t, screen, 3, 2); got != ' ' {
		t.Errorf("Expected interior untouched, got %q", got)
	}
}

func TestDegenerateRectIgnored(t *testing.T) {
	screen := newSimScreen(t)
	defer screen.Fini()
	s := NewCellSurface(screen)

	s.Rect(1, 1, 1, 4, plot.White(0.5))
	s.Rect(1, 1, 4, 0, plot.White(0.5))
	if got := runeAt(t, screen, 1, 1); got != ' ' {
		t.Errorf("Expected degenerate rect skipped, got %q", got)
	}
}

func TestFontDrawAndMeasure(t *testing.T) {
	screen := newSimScreen(t)
	defer screen.Fini()
	f := NewCellFont(screen)

	if got := f.Measure("0.016"); got != 5 {
		t.Errorf("Expected width 5, got %d", got)
	}

	f.Draw("16ms", 10, 3, plot.White(0.5))
	for i, want := range "16ms" {
		if got := runeAt(t, screen, 10+i, 3); got != want {
			t.Errorf("Expected %q at column %d, got %q", want, 10+i, got)
		}
	}
}

func TestPlotterRendersOnCellSurface(t *testing.T) {
	screen := newSimScreen(t)
	defer screen.Fini()
	s := NewCellSurface(screen)
	f := NewCellFont(screen)

	p, err := plot.New(plot.Config{Capacity: 16, HeightLimit: 12, Scale: 100, LabelInterval: 4})
	if err != nil {
		t.Fatalf("plot.New failed: %v", err)
	}
	p.SetPosition(1, 1)
	for _, v := range []float64{0.02, 0.05, 0.11, 0.03} {
		p.Ingest(v)
	}

	p.Render(s, f)

	// Frame corners present
	if got := runeAt(t, screen, 1, 1); got != '┌' {
		t.Errorf("Expected plot frame, got %q", got)
	}
	if got := runeAt(t, screen, 16, 12); got != '┘' {
		t.Errorf("Expected plot frame, got %q", got)
	}
}
