package render

import "github.com/hajimehoshi/ebiten/v2"

// Texture оборачивает *ebiten.Image как graphics.Texture
type Texture struct {
	img *ebiten.Image
}

func NewTexture(img *ebiten.Image) *Texture {
	return &Texture{img: img}
}

func (t *Texture) Image() *ebiten.Image {
	return t.img
}

func (t *Texture) Size() (int, int) {
	if t.img == nil {
		return 0, 0
	}
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Deallocate освобождает видеопамять; после этого текстура не используется.
func (t *Texture) Deallocate() {
	if t.img != nil {
		t.img.Deallocate()
		t.img = nil
	}
}
