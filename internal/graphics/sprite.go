// internal/graphics/sprite.go
package graphics

import (
	"image/color"

	"nightmare-descent/internal/types"
)

// Sprite is a textured quad: a source rectangle of a texture drawn at a
// position, transformed around an origin by a scale, tinted by Color.
type Sprite struct {
	texture  Texture
	rect     Rect
	Position types.Vector2
	Origin   types.Vector2
	Scale    types.Vector2
	Color    color.RGBA
}

// NewSprite returns an untextured sprite with unit scale and an opaque white tint.
func NewSprite() *Sprite {
	return &Sprite{
		Scale: types.Vector2{X: 1, Y: 1},
		Color: color.RGBA{255, 255, 255, 255},
	}
}

// SetTexture binds t. The source rectangle is reset to the whole texture only
// when none was set yet, so an animation frame survives a texture rebind.
func (s *Sprite) SetTexture(t Texture) {
	s.texture = t
	if s.rect.Empty() && t != nil {
		w, h := t.Size()
		s.rect = Rect{Width: w, Height: h}
	}
}

func (s *Sprite) Texture() Texture {
	return s.texture
}

func (s *Sprite) SetTextureRect(r Rect) {
	s.rect = r
}

func (s *Sprite) TextureRect() Rect {
	return s.rect
}

func (s *Sprite) Alpha() uint8 {
	return s.Color.A
}

func (s *Sprite) SetAlpha(a uint8) {
	s.Color.A = a
}
