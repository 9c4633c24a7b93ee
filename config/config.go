package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/jakecoffman/cp"
	"gopkg.in/yaml.v3"
)

const (
	DefaultColumns           = 100
	DefaultRows              = 100
	DefaultCellSize          = 8
	DefaultMinZoom           = 0.1
	DefaultMaxZoom           = 5.0
	DefaultScrollSensitivity = 0.001
	DefaultWheelStep         = 100
)

var (
	ErrInvalidGrid  = errors.New("config: invalid grid")
	ErrInvalidZoom  = errors.New("config: invalid zoom bounds")
	ErrInvalidInput = errors.New("config: invalid input settings")
	ErrInvalidColor = errors.New("config: invalid color")
)

//go:embed gridview.yaml
var defaultYAML []byte

type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Zoom   ZoomConfig   `yaml:"zoom"`
	Input  InputConfig  `yaml:"input"`
	Colors ColorConfig  `yaml:"colors"`
	Window WindowConfig `yaml:"window"`
	HUD    bool         `yaml:"hud"`
}

type GridConfig struct {
	Columns  int     `yaml:"columns"`
	Rows     int     `yaml:"rows"`
	CellSize float64 `yaml:"cell_size"`
}

type ZoomConfig struct {
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Initial float64 `yaml:"initial"`
}

type InputConfig struct {
	ScrollSensitivity float64 `yaml:"scroll_sensitivity"`
	WheelStep         float64 `yaml:"wheel_step"`
}

// ColorConfig holds colour strings; see ParseColor for the accepted forms.
type ColorConfig struct {
	Selected   string `yaml:"selected"`
	Default    string `yaml:"default"`
	Background string `yaml:"background"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

func Default() *Config {
	return &Config{
		Grid: GridConfig{
			Columns:  DefaultColumns,
			Rows:     DefaultRows,
			CellSize: DefaultCellSize,
		},
		Zoom: ZoomConfig{
			Min:     DefaultMinZoom,
			Max:     DefaultMaxZoom,
			Initial: 1,
		},
		Input: InputConfig{
			ScrollSensitivity: DefaultScrollSensitivity,
			WheelStep:         DefaultWheelStep,
		},
		Colors: ColorConfig{
			Selected:   "#000",
			Default:    "#ccc",
			Background: "white",
		},
		Window: WindowConfig{
			Title:  "gridview",
			Width:  1280,
			Height: 720,
		},
		HUD: true,
	}
}

// Load reads the config at path, or the embedded default when path is empty.
// Values missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data := defaultYAML
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		data = b
	}
	return Parse(data)
}

// Parse decodes and validates YAML config data.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the config and clamps the initial zoom into its bounds.
func (c *Config) Validate() error {
	if c.Grid.Columns <= 0 || c.Grid.Rows <= 0 {
		return fmt.Errorf("%w: %dx%d cells", ErrInvalidGrid, c.Grid.Columns, c.Grid.Rows)
	}
	if c.Grid.CellSize <= 0 {
		return fmt.Errorf("%w: cell_size %v", ErrInvalidGrid, c.Grid.CellSize)
	}
	if c.Zoom.Min <= 0 || c.Zoom.Max < c.Zoom.Min {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidZoom, c.Zoom.Min, c.Zoom.Max)
	}
	c.Zoom.Initial = cp.Clamp(c.Zoom.Initial, c.Zoom.Min, c.Zoom.Max)
	if c.Input.ScrollSensitivity < 0 || c.Input.WheelStep <= 0 {
		return fmt.Errorf("%w: scroll_sensitivity %v, wheel_step %v", ErrInvalidInput, c.Input.ScrollSensitivity, c.Input.WheelStep)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// Marshal encodes the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
