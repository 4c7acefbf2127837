// internal/graphics/graphics.go
// Package graphics описывает, что компонентам нужно от графического бэкенда,
// не завися от него. Реализация на Ebiten лежит в pkg/render.
package graphics

import (
	"image"
	"image/color"
)

// Texture: декодированные пиксели на стороне бэкенда.
type Texture interface {
	Size() (width, height int)
}

// Loader превращает пути к ассетам в текстуры и изображения в памяти.
type Loader interface {
	LoadTexture(path string) (Texture, error)
	LoadImage(path string) (image.Image, error)
}

// Surface: всё, у чего есть размер в пикселях, обычно окно.
type Surface interface {
	Size() (width, height int)
}

// Target принимает вызовы отрисовки одного кадра.
type Target interface {
	DrawSprite(s *Sprite)
	DrawRect(x, y, width, height float64, clr color.Color)
	DrawText(str string, x, y int, clr color.Color)
	// MeasureText возвращает ширину строки в пикселях текущим шрифтом.
	MeasureText(str string) int
}

// Rect: целочисленный прямоугольник в координатах текстуры.
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
