package plot

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Config controls plot appearance. Colors are hex strings ("#RRGGBB");
// an unparsable color falls back to the default.
type Config struct {
	Size            int     // canvas width and height in pixels
	ShadeColor      string  // fill for shaded quadrants
	ShadeOpacity    float64 // 0..1
	BackgroundColor string
	AxisColor       string
	PointColor      string // scatter markers
	TextColor       string
}

// Accepted canvas sizes. A canvas holds Size*Size RGBA pixels.
const (
	MinSize = 64
	MaxSize = 4096
)

// checkSize reports whether size is within MinSize..MaxSize.
func checkSize(size int) error {
	switch {
	case size < MinSize:
		return fmt.Errorf("plot size %d is below the minimum of %d", size, MinSize)
	case size > MaxSize:
		return fmt.Errorf("plot size %d is above the maximum of %d", size, MaxSize)
	}
	return nil
}

// DefaultConfig returns the default plot configuration.
func DefaultConfig() Config {
	return Config{
		Size:            400,
		ShadeColor:      "#E24A33",
		ShadeOpacity:    1.0,
		BackgroundColor: "#E5E5E5",
		AxisColor:       "#000000",
		PointColor:      "#348ABD",
		TextColor:       "#000000",
	}
}

// parseColor parses a hex color, returning fallback's color when hex is invalid.
func parseColor(hex, fallback string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		c, _ = colorful.Hex(fallback)
	}
	return c
}

func (c Config) shade() color.Color {
	return parseColor(c.ShadeColor, DefaultConfig().ShadeColor)
}

func (c Config) background() color.Color {
	return parseColor(c.BackgroundColor, DefaultConfig().BackgroundColor)
}

func (c Config) axis() color.Color {
	return parseColor(c.AxisColor, DefaultConfig().AxisColor)
}

func (c Config) point() color.Color {
	return parseColor(c.PointColor, DefaultConfig().PointColor)
}

func (c Config) text() color.Color {
	return parseColor(c.TextColor, DefaultConfig().TextColor)
}

func (c Config) opacity() float64 {
	switch {
	case c.ShadeOpacity <= 0:
		return DefaultConfig().ShadeOpacity
	case c.ShadeOpacity > 1:
		return 1
	}
	return c.ShadeOpacity
}
