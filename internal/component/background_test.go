package component

import (
	"errors"
	"image/color"
	"testing"

	"nightmare-descent/internal/types"
)

func TestBackgroundSetPath(t *testing.T) {
	loader := newFakeLoader()
	loader.sizes["bg.png"] = [2]int{400, 300}
	b := NewBackground(loader)

	if err := b.SetPath("bg.png"); err != nil {
		t.Fatalf("SetPath: %v", err)
	}
	if b.Path() != "bg.png" || b.Texture() == nil || b.Image() == nil {
		t.Errorf("Expected texture and image loaded for bg.png")
	}
}

func TestBackgroundSetPathFailureKeepsState(t *testing.T) {
	loader := newFakeLoader()
	loader.sizes["bg.png"] = [2]int{400, 300}
	loader.sizes["half.png"] = [2]int{10, 10}
	loader.brokenImages["half.png"] = true
	b := NewBackground(loader)
	if err := b.SetPath("bg.png"); err != nil {
		t.Fatalf("SetPath: %v", err)
	}
	tex, img := b.Texture(), b.Image()

	tests := []struct {
		name string
		path string
	}{
		{"Missing texture", "missing.png"},
		{"Broken image", "half.png"},
		{"Empty path", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := b.SetPath(tt.path); err == nil {
				t.Fatal("Expected an error")
			}
			if b.Path() != "bg.png" || b.Texture() != tex || b.Image() != img {
				t.Error("Expected previous background to stay in place")
			}
		})
	}
}

func TestBackgroundSetPathWithoutLoader(t *testing.T) {
	b := NewBackground(nil)
	if err := b.SetPath("bg.png"); !errors.Is(err, ErrNoLoader) {
		t.Errorf("Expected ErrNoLoader, got %v", err)
	}
}

func TestBackgroundSetSize(t *testing.T) {
	loader := newFakeLoader()
	loader.sizes["bg.png"] = [2]int{800, 450}
	loader.sizes["empty.png"] = [2]int{0, 0}
	b := NewBackground(loader)

	b.SetSize(fakeSurface{1600, 900})
	if b.Scale() != (types.Vector2{X: 1, Y: 1}) {
		t.Errorf("Expected no scaling without a texture, got %+v", b.Scale())
	}

	if err := b.SetPath("bg.png"); err != nil {
		t.Fatalf("SetPath: %v", err)
	}
	b.SetSize(fakeSurface{1600, 900})
	if b.Scale() != (types.Vector2{X: 2, Y: 2}) {
		t.Errorf("Expected scale 2x2, got %+v", b.Scale())
	}
	b.SetSize(fakeSurface{400, 900})
	if b.Scale() != (types.Vector2{X: 0.5, Y: 2}) {
		t.Errorf("Expected independent scale 0.5x2, got %+v", b.Scale())
	}

	if err := b.SetPath("empty.png"); err != nil {
		t.Fatalf("SetPath: %v", err)
	}
	b.SetSize(fakeSurface{1600, 900})
	if b.Scale() != (types.Vector2{X: 0.5, Y: 2}) {
		t.Errorf("Expected zero-extent texture to leave scale alone, got %+v", b.Scale())
	}
}

func TestBackgroundColorAt(t *testing.T) {
	loader := newFakeLoader()
	loader.sizes["bg.png"] = [2]int{100, 50}
	b := NewBackground(loader)
	if _, ok := b.ColorAt(0, 0); ok {
		t.Fatal("Expected no colour before loading")
	}
	if err := b.SetPath("bg.png"); err != nil {
		t.Fatalf("SetPath: %v", err)
	}
	b.SetSize(fakeSurface{200, 100})

	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	if c, ok := b.ColorAt(20, 20); !ok || color.RGBAModel.Convert(c) != red {
		t.Errorf("Expected red on the left, got %v %v", c, ok)
	}
	if c, ok := b.ColorAt(180, 20); !ok || color.RGBAModel.Convert(c) != blue {
		t.Errorf("Expected blue on the right, got %v %v", c, ok)
	}
	if _, ok := b.ColorAt(250, 20); ok {
		t.Error("Expected no colour outside the window")
	}
	if _, ok := b.ColorAt(-1, 20); ok {
		t.Error("Expected no colour at negative coordinates")
	}
}

func TestBackgroundRender(t *testing.T) {
	loader := newFakeLoader()
	loader.sizes["bg.png"] = [2]int{10, 10}
	b := NewBackground(loader)
	target := &fakeTarget{}

	b.Render(target)
	if len(target.sprites) != 0 {
		t.Fatal("Expected nothing drawn without a texture")
	}
	if err := b.SetPath("bg.png"); err != nil {
		t.Fatalf("SetPath: %v", err)
	}
	b.Render(target)
	if len(target.sprites) != 1 {
		t.Errorf("Expected one draw, got %d", len(target.sprites))
	}
}
