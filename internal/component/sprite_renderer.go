// internal/component/sprite_renderer.go
package component

import (
	"nightmare-descent/internal/entity"
	"nightmare-descent/internal/graphics"
	"nightmare-descent/internal/types"
)

// SpriteRenderer рисует одну статичную текстуру в позиции владельца.
type SpriteRenderer struct {
	entity.Base
	loader       graphics.Loader
	sprite       *graphics.Sprite
	defaultScale types.Vector2
}

func NewSpriteRenderer(loader graphics.Loader) *SpriteRenderer {
	return &SpriteRenderer{
		loader:       loader,
		sprite:       graphics.NewSprite(),
		defaultScale: types.Vector2{X: 1, Y: 1},
	}
}

// SetTexture привязывает t и ставит origin в ее центр.
func (r *SpriteRenderer) SetTexture(t graphics.Texture) {
	r.sprite.SetTexture(t)
	if t == nil {
		return
	}
	w, h := t.Size()
	r.sprite.SetTextureRect(graphics.Rect{Width: w, Height: h})
	r.sprite.Origin = types.Vector2{X: float64(w) / 2, Y: float64(h) / 2}
}

// LoadTexture заменяет текстуру. При ошибке остается текущая.
func (r *SpriteRenderer) LoadTexture(path string) error {
	tex, err := loadTexture(r.loader, path)
	if err != nil {
		return err
	}
	r.SetTexture(tex)
	return nil
}

func (r *SpriteRenderer) Sprite() *graphics.Sprite {
	return r.sprite
}

func (r *SpriteRenderer) Texture() graphics.Texture {
	return r.sprite.Texture()
}

func (r *SpriteRenderer) SetDefaultScale(x, y float64) {
	r.defaultScale = types.Vector2{X: x, Y: y}
	r.sprite.Scale = r.defaultScale
}

func (r *SpriteRenderer) Update(deltaTime float64) {
	if owner := r.Owner(); owner != nil {
		r.sprite.Position = owner.Position()
	}
}

func (r *SpriteRenderer) Render(target graphics.Target) {
	if r.sprite.Texture() == nil {
		return
	}
	target.DrawSprite(r.sprite)
}

func (r *SpriteRenderer) Destroy() {
	r.sprite.SetTexture(nil)
}
