package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// colorScale переводит оттенок спрайта в ColorScale. Альфа не умножена на цвет:
// A делает спрайт прозрачнее, белый цвет оставляет его как есть.
func colorScale(c color.RGBA) ebiten.ColorScale {
	var cs ebiten.ColorScale
	cs.Scale(float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, 1)
	cs.ScaleAlpha(float32(c.A) / 0xff)
	return cs
}
