package render

import (
	"image"
	"image/color"
	"log"
	"os"

	"nightmare-descent/internal/graphics"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// ScreenTarget рисует спрайты, прямоугольники и текст движка на изображение Ebiten.
// Кадр привязывается через Bind перед отрисовкой.
type ScreenTarget struct {
	screen   *ebiten.Image
	fontFace font.Face
}

// NewScreenTarget создает цель отрисовки; без шрифта берется встроенный 7x13.
func NewScreenTarget(face font.Face) *ScreenTarget {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &ScreenTarget{fontFace: face}
}

// LoadFontFace загружает TTF шрифт. При любой ошибке пишет предупреждение
// и возвращает встроенный шрифт 7x13, чтобы игра запускалась без ассетов.
func LoadFontFace(path string, size float64) font.Face {
	fontData, err := os.ReadFile(path)
	if err != nil {
		log.Printf("WARNING: font %s not available, using built-in face: %v", path, err)
		return basicfont.Face7x13
	}
	tt, err := opentype.Parse(fontData)
	if err != nil {
		log.Printf("WARNING: failed to parse font %s: %v", path, err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("WARNING: failed to create font face %s: %v", path, err)
		return basicfont.Face7x13
	}
	return face
}

// Bind задает изображение, на которое рисуется текущий кадр.
func (t *ScreenTarget) Bind(screen *ebiten.Image) {
	t.screen = screen
}

func (t *ScreenTarget) Screen() *ebiten.Image {
	return t.screen
}

func (t *ScreenTarget) DrawSprite(s *graphics.Sprite) {
	if t.screen == nil || s == nil {
		return
	}
	tex, ok := s.Texture().(*Texture)
	if !ok || tex == nil || tex.Image() == nil {
		return
	}

	// Кадр анимации вырезается из атласа
	src := tex.Image()
	if r := s.TextureRect(); !r.Empty() {
		src = src.SubImage(image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)).(*ebiten.Image)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-s.Origin.X, -s.Origin.Y)
	op.GeoM.Scale(s.Scale.X, s.Scale.Y)
	op.GeoM.Translate(s.Position.X, s.Position.Y)
	op.ColorScale = colorScale(s.Color)
	op.Filter = ebiten.FilterNearest
	t.screen.DrawImage(src, op)
}

func (t *ScreenTarget) DrawRect(x, y, width, height float64, clr color.Color) {
	if t.screen == nil {
		return
	}
	vector.DrawFilledRect(t.screen, float32(x), float32(y), float32(width), float32(height), clr, false)
}

// MeasureText возвращает ширину строки в пикселях текущим шрифтом.
func (t *ScreenTarget) MeasureText(str string) int {
	return text.BoundString(t.fontFace, str).Dx()
}

func (t *ScreenTarget) DrawText(str string, x, y int, clr color.Color) {
	if t.screen == nil {
		return
	}
	text.Draw(t.screen, str, t.fontFace, x, y, clr)
}

// Fill заливает кадр цветом.
func (t *ScreenTarget) Fill(clr color.Color) {
	if t.screen != nil {
		t.screen.Fill(clr)
	}
}
