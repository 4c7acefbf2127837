// internal/component/textures.go
package component

import (
	"errors"
	"fmt"
	"log"

	"nightmare-descent/internal/graphics"
)

var (
	ErrNoLoader  = errors.New("no asset loader configured")
	ErrEmptyPath = errors.New("asset path is empty")
)

// loadTexture загружает path через loader и пишет предупреждение при ошибке.
// При ошибке вызывающий оставляет свою прежнюю текстуру.
func loadTexture(loader graphics.Loader, path string) (graphics.Texture, error) {
	if loader == nil {
		return nil, ErrNoLoader
	}
	if path == "" {
		return nil, ErrEmptyPath
	}
	tex, err := loader.LoadTexture(path)
	if err != nil {
		log.Printf("WARNING: failed to load texture %q: %v", path, err)
		return nil, fmt.Errorf("load texture %q: %w", path, err)
	}
	return tex, nil
}
