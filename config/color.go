package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Palette is the parsed form of ColorConfig.
type Palette struct {
	Selected   color.RGBA
	Default    color.RGBA
	Background color.RGBA
}

func (c *Config) Palette() (Palette, error) {
	var p Palette
	var err error
	if p.Selected, err = ParseColor(c.Colors.Selected); err != nil {
		return Palette{}, fmt.Errorf("colors.selected: %w", err)
	}
	if p.Default, err = ParseColor(c.Colors.Default); err != nil {
		return Palette{}, fmt.Errorf("colors.default: %w", err)
	}
	if p.Background, err = ParseColor(c.Colors.Background); err != nil {
		return Palette{}, fmt.Errorf("colors.background: %w", err)
	}
	return p, nil
}

// ParseColor accepts "#rgb", "#rrggbb", "#rrggbbaa" or an SVG colour name
// such as "lightgrey".
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, fmt.Errorf("%w: empty", ErrInvalidColor)
	}
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return color.RGBA{}, fmt.Errorf("%w: unknown name %q", ErrInvalidColor, s)
		}
		return c, nil
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
