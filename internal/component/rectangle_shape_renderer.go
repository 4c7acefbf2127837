// internal/component/rectangle_shape_renderer.go
package component

import (
	"image/color"

	"nightmare-descent/internal/entity"
	"nightmare-descent/internal/graphics"
	"nightmare-descent/internal/types"
)

// SizeProvider реализуют рендереры, задающие размер владельца.
type SizeProvider interface {
	Size() types.Vector2
}

// RectangleShapeRenderer задает размер владельца и рисует залитый
// прямоугольник с центром в позиции владельца.
type RectangleShapeRenderer struct {
	entity.Base
	size    types.Vector2
	Color   color.RGBA
	Visible bool
}

func NewRectangleShapeRenderer(size types.Vector2, clr color.RGBA) *RectangleShapeRenderer {
	return &RectangleShapeRenderer{size: size, Color: clr, Visible: true}
}

func (r *RectangleShapeRenderer) Size() types.Vector2 {
	return r.size
}

func (r *RectangleShapeRenderer) SetSize(size types.Vector2) {
	r.size = size
}

func (r *RectangleShapeRenderer) Render(target graphics.Target) {
	owner := r.Owner()
	if !r.Visible || owner == nil {
		return
	}
	pos := owner.Position()
	target.DrawRect(pos.X-r.size.X/2, pos.Y-r.size.Y/2, r.size.X, r.size.Y, r.Color)
}
