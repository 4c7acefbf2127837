// internal/component/background.go
package component

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"nightmare-descent/internal/graphics"
	"nightmare-descent/internal/types"
)

// Background: фон на весь экран. Рядом с текстурой хранится декодированное
// изображение, чтобы читать пиксели на CPU.
type Background struct {
	loader  graphics.Loader
	path    string
	texture graphics.Texture
	image   image.Image
	sprite  *graphics.Sprite
}

func NewBackground(loader graphics.Loader) *Background {
	return &Background{loader: loader, sprite: graphics.NewSprite()}
}

// SetPath загружает текстуру и изображение. Если хоть одно не загрузилось,
// ничего не меняется и возвращается ошибка.
func (b *Background) SetPath(path string) error {
	tex, err := loadTexture(b.loader, path)
	if err != nil {
		return err
	}
	img, err := b.loader.LoadImage(path)
	if err != nil {
		log.Printf("WARNING: failed to load background image %q: %v", path, err)
		return fmt.Errorf("load image %q: %w", path, err)
	}

	b.path = path
	b.texture = tex
	b.image = img
	b.sprite.SetTexture(tex)
	w, h := tex.Size()
	b.sprite.SetTextureRect(graphics.Rect{Width: w, Height: h})
	return nil
}

func (b *Background) Path() string {
	return b.path
}

func (b *Background) Texture() graphics.Texture {
	return b.texture
}

func (b *Background) Image() image.Image {
	return b.image
}

func (b *Background) Scale() types.Vector2 {
	return b.sprite.Scale
}

// SetSize растягивает фон ровно на surface. Пока у текстуры нулевой
// размер, масштаб не меняется.
func (b *Background) SetSize(surface graphics.Surface) {
	if b.texture == nil || surface == nil {
		return
	}
	tw, th := b.texture.Size()
	if tw <= 0 || th <= 0 {
		return
	}
	sw, sh := surface.Size()
	b.sprite.Scale = types.Vector2{
		X: float64(sw) / float64(tw),
		Y: float64(sh) / float64(th),
	}
}

// ColorAt возвращает цвет исходного изображения под экранной точкой (x, y).
func (b *Background) ColorAt(x, y float64) (color.Color, bool) {
	if b.image == nil || b.sprite.Scale.X == 0 || b.sprite.Scale.Y == 0 {
		return nil, false
	}
	bounds := b.image.Bounds()
	px := bounds.Min.X + int(x/b.sprite.Scale.X)
	py := bounds.Min.Y + int(y/b.sprite.Scale.Y)
	if x < 0 || y < 0 || !(image.Point{X: px, Y: py}).In(bounds) {
		return nil, false
	}
	return b.image.At(px, py), true
}

func (b *Background) Render(target graphics.Target) {
	if b.texture == nil {
		return
	}
	target.DrawSprite(b.sprite)
}
