package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"log"

	"nightmare-descent/internal/graphics"
	"nightmare-descent/pkg/render"

	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// TextureManager загружает, кэширует и выгружает текстуры. Каждый файл
// читается один раз: GPU-текстура и декодированное изображение хранятся вместе.
type TextureManager struct {
	textures map[string]*render.Texture
	images   map[string]image.Image
}

// NewTextureManager создает новый экземпляр TextureManager.
func NewTextureManager() *TextureManager {
	return &TextureManager{
		textures: make(map[string]*render.Texture),
		images:   make(map[string]image.Image),
	}
}

func (m *TextureManager) load(path string) error {
	if _, ok := m.textures[path]; ok {
		return nil
	}
	img, decoded, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	m.textures[path] = render.NewTexture(img)
	m.images[path] = decoded
	log.Printf("Successfully loaded texture %s", path)
	return nil
}

// LoadTexture возвращает текстуру из кэша, при необходимости загружая файл.
func (m *TextureManager) LoadTexture(path string) (graphics.Texture, error) {
	if err := m.load(path); err != nil {
		return nil, err
	}
	return m.textures[path], nil
}

// LoadImage возвращает декодированное изображение для чтения пикселей.
func (m *TextureManager) LoadImage(path string) (image.Image, error) {
	if err := m.load(path); err != nil {
		return nil, err
	}
	return m.images[path], nil
}

// Len: количество загруженных файлов.
func (m *TextureManager) Len() int {
	return len(m.textures)
}

// Cleanup выгружает все загруженные текстуры.
func (m *TextureManager) Cleanup() {
	for path, tex := range m.textures {
		tex.Deallocate()
		delete(m.textures, path)
	}
	m.images = make(map[string]image.Image)
	log.Println("All textures unloaded.")
}

var _ graphics.Loader = (*TextureManager)(nil)
