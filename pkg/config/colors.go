package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor 解析 "#rrggbb" 形式的颜色
func ParseColor(hex string) (colorful.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("bad color %q: %w", hex, err)
	}
	return c, nil
}

// Palette 已解析的背景色与描边色
type Palette struct {
	Background colorful.Color
	Stroke     colorful.Color
}

// Palette 解析画布颜色（Validate 通过后不会失败）
func (c CanvasConfig) Palette() (Palette, error) {
	bg, err := ParseColor(c.Background)
	if err != nil {
		return Palette{}, err
	}
	stroke, err := ParseColor(c.Stroke)
	if err != nil {
		return Palette{}, err
	}
	return Palette{Background: bg, Stroke: stroke}, nil
}
