package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/lixenwraith/frameplot/plot"
)

// Plot configures the rolling frame-time plot
type Plot struct {
	Capacity      int     `mapstructure:"capacity"`
	HeightLimit   int     `mapstructure:"height_limit"`
	Scale         float64 `mapstructure:"scale"`
	LabelInterval int     `mapstructure:"label_interval"`
}

// Audio configures the channel service
type Audio struct {
	Enabled     bool `mapstructure:"enabled"`
	AmbientFreq int  `mapstructure:"ambient_freq"`
}

// Config is the full demo configuration
type Config struct {
	TargetFPS  int    `mapstructure:"target_fps"`
	CardPrefix string `mapstructure:"card_prefix"`
	Plot       Plot   `mapstructure:"plot"`
	Audio      Audio  `mapstructure:"audio"`
}

// Default returns the built-in configuration: a 48-sample window,
// 16-cell plot height, millisecond scale
func Default() Config {
	return Config{
		TargetFPS:  60,
		CardPrefix: "frame.",
		Plot: Plot{
			Capacity:      48,
			HeightLimit:   16,
			Scale:         1000,
			LabelInterval: 16,
		},
		Audio: Audio{
			Enabled:     false,
			AmbientFreq: 110,
		},
	}
}

// PlotConfig converts the plot section for plot.New
func (c Config) PlotConfig() plot.Config {
	return plot.Config{
		Capacity:      c.Plot.Capacity,
		HeightLimit:   c.Plot.HeightLimit,
		Scale:         c.Plot.Scale,
		LabelInterval: c.Plot.LabelInterval,
	}
}

// Validate fails fast on misconfiguration, before the frame loop runs
func (c Config) Validate() error {
	if c.TargetFPS <= 0 {
		return fmt.Errorf("config: target_fps must be positive, got %d", c.TargetFPS)
	}
	if err := c.PlotConfig().Validate(); err != nil {
		return err
	}
	if c.Audio.Enabled && c.Audio.AmbientFreq <= 0 {
		return fmt.Errorf("config: ambient_freq must be positive, got %d", c.Audio.AmbientFreq)
	}
	return nil
}

// Load reads configuration from the given file, falling back to a
// frameplot.yaml in the working directory, then environment variables
// (FRAMEPLOT_*), then defaults. A missing explicit path is an error;
// a missing implicit file is not.
func Load(path string) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("target_fps", def.TargetFPS)
	v.SetDefault("card_prefix", def.CardPrefix)
	v.SetDefault("plot.capacity", def.Plot.Capacity)
	v.SetDefault("plot.height_limit", def.Plot.HeightLimit)
	v.SetDefault("plot.scale", def.Plot.Scale)
	v.SetDefault("plot.label_interval", def.Plot.LabelInterval)
	v.SetDefault("audio.enabled", def.Audio.Enabled)
	v.SetDefault("audio.ambient_freq", def.Audio.AmbientFreq)

	v.SetEnvPrefix("FRAMEPLOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		v.SetConfigName("frameplot")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
