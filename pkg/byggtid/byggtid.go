package byggtid

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds configuration for byggtid.
type Config struct {
	InDir  string `yaml:"in_dir"`
	OutDir string `yaml:"out_dir"`

	Colors struct {
		Background string `yaml:"background"` // timeline backdrop panel
		Bar        string `yaml:"bar"`        // full-length static bar
		Progress   string `yaml:"progress"`   // traveled line and marker
		Label      string `yaml:"label"`      // date text
	} `yaml:"colors"`

	Timeline struct {
		BarLengthRatio float64 `yaml:"bar_length_ratio"` // bar length as a fraction of image width
		BarYRatio      float64 `yaml:"bar_y_ratio"`      // bar vertical position as a fraction of image height
		MarkerRadius   float64 `yaml:"marker_radius"`    // progress dot radius in pixels
		LineWidth      float64 `yaml:"line_width"`       // static bar stroke width in pixels
		FontPercent    float64 `yaml:"font_percent"`     // label font size as a percentage of the image diagonal
	} `yaml:"timeline"`

	Output struct {
		Width   int `yaml:"width"`
		Height  int `yaml:"height"`
		Quality int `yaml:"quality"`
	} `yaml:"output"`

	Movie struct {
		Path      string  `yaml:"path"`
		FrameRate float64 `yaml:"frame_rate"`
	} `yaml:"movie"`

	KeepOriginals bool `yaml:"keep_originals"`
}

// DefaultConfig returns the configuration matching the reference overlay
// scale: a centered bar spanning 95% of the width near the bottom edge,
// QuadVGA output, and a 0.5 fps movie.
func DefaultConfig() *Config {
	c := &Config{}

	c.Colors.Background = "#000000"
	c.Colors.Bar = "#808080"
	c.Colors.Progress = "#ff0000"
	c.Colors.Label = "#ffffff"

	c.Timeline.BarLengthRatio = 0.95
	c.Timeline.BarYRatio = 0.98
	c.Timeline.MarkerRadius = 15
	c.Timeline.LineWidth = 10
	c.Timeline.FontPercent = 1.5

	c.Output.Width = 1280
	c.Output.Height = 960
	c.Output.Quality = 85

	c.Movie.Path = "movie.mp4"
	c.Movie.FrameRate = 0.5

	return c
}

// LoadConfig returns the defaults overlaid with values from a YAML file.
// An empty path returns the defaults unchanged.
func LoadConfig(path string) (*Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}

	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(bs, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return c, nil
}
