package component

import (
	"errors"
	"image"
	"image/color"
	"math"

	"nightmare-descent/internal/graphics"
)

type fakeTexture struct {
	path string
	w, h int
}

func (t *fakeTexture) Size() (int, int) { return t.w, t.h }

var errNotFound = errors.New("file not found")

// fakeLoader serves textures and images of fixed sizes keyed by path.
type fakeLoader struct {
	sizes        map[string][2]int
	brokenImages map[string]bool
	textureLoads map[string]int
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{
		sizes: map[string][2]int{
			"Assets/Idle.png": {800, 100},
			"Assets/Run.png":  {800, 120},
		},
		brokenImages: map[string]bool{},
		textureLoads: map[string]int{},
	}
}

func (l *fakeLoader) LoadTexture(path string) (graphics.Texture, error) {
	size, ok := l.sizes[path]
	if !ok {
		return nil, errNotFound
	}
	l.textureLoads[path]++
	return &fakeTexture{path: path, w: size[0], h: size[1]}, nil
}

func (l *fakeLoader) LoadImage(path string) (image.Image, error) {
	size, ok := l.sizes[path]
	if !ok || l.brokenImages[path] {
		return nil, errNotFound
	}
	img := image.NewRGBA(image.Rect(0, 0, size[0], size[1]))
	for x := 0; x < size[0]; x++ {
		for y := 0; y < size[1]; y++ {
			// left half red, right half blue
			if x < size[0]/2 {
				img.Set(x, y, color.RGBA{255, 0, 0, 255})
			} else {
				img.Set(x, y, color.RGBA{0, 0, 255, 255})
			}
		}
	}
	return img, nil
}

type fakeTarget struct {
	sprites []*graphics.Sprite
	rects   [][4]float64
	texts   []string
}

func (t *fakeTarget) DrawSprite(s *graphics.Sprite) { t.sprites = append(t.sprites, s) }

func (t *fakeTarget) DrawRect(x, y, w, h float64, c color.Color) {
	t.rects = append(t.rects, [4]float64{x, y, w, h})
}

func (t *fakeTarget) DrawText(str string, x, y int, c color.Color) { t.texts = append(t.texts, str) }

func (t *fakeTarget) MeasureText(str string) int { return 7 * len(str) }

type fakeSurface struct{ w, h int }

func (s fakeSurface) Size() (int, int) { return s.w, s.h }

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
