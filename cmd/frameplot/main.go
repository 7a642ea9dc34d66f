package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/frameplot/audio"
	"github.com/lixenwraith/frameplot/config"
	"github.com/lixenwraith/frameplot/overlay"
	"github.com/lixenwraith/frameplot/render"
	"github.com/lixenwraith/frameplot/screen"
	"github.com/lixenwraith/frameplot/status"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "frameplot",
	Short: "Frame-time plotter demo",
	Long: `Runs a terminal demo level with a debug performance overlay.
F1 toggles the HUD, F3 the debug overlay, space pauses, q quits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		return run(cfg)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default ./frameplot.yaml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	term, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := term.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer term.Fini()
	term.HideCursor()

	reg := status.NewRegistry()
	w, h := term.Size()

	ov := overlay.New(reg)
	ov.SetCardPrefix(cfg.CardPrefix)
	if err := ov.AddPlot("frame ms", cfg.PlotConfig()); err != nil {
		return err
	}
	ov.Layout(w)

	channels := audio.NewManager()
	defer channels.Cleanup()
	if cfg.Audio.Enabled {
		if err := channels.Initialize(); err != nil {
			// Non-fatal, the demo runs without sound
			log.Printf("Audio initialization failed: %v", err)
		} else if tone, err := audio.Tone(float64(cfg.Audio.AmbientFreq)); err == nil {
			channels.Play(screen.ChannelAmbient, tone)
		}
	}

	sim := newDriftSim(w, h, reg)

	lvl := screen.New(sim, sim, ov, channels, reg)
	defer func() {
		if err := lvl.Close(); err != nil {
			log.Printf("Screen close failed: %v", err)
		}
	}()

	surface := render.NewCellSurface(term)
	font := render.NewCellFont(term)

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go func() {
		for {
			ev := term.PollEvent()
			if ev == nil {
				close(quit)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.TargetFPS))
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-quit:
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if lvl.HandleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				w, h := ev.Size()
				sim.Resize(w, h)
				ov.Layout(w)
				term.Sync()
			}
		case now := <-ticker.C:
			delta := now.Sub(last).Seconds()
			last = now

			lvl.Update(delta)

			term.Clear()
			lvl.Draw(surface, font)
			term.Show()
		}
	}
}
