package graphics

import "testing"

type sizedTexture struct{ w, h int }

func (t sizedTexture) Size() (int, int) { return t.w, t.h }

func TestSpriteSetTexture(t *testing.T) {
	s := NewSprite()
	if s.Alpha() != 255 {
		t.Fatalf("Expected new sprite to be opaque, got alpha %d", s.Alpha())
	}
	if s.Scale.X != 1 || s.Scale.Y != 1 {
		t.Fatalf("Expected unit scale, got %+v", s.Scale)
	}

	s.SetTexture(sizedTexture{w: 64, h: 32})
	if got := s.TextureRect(); got != (Rect{Width: 64, Height: 32}) {
		t.Errorf("Expected full texture rect, got %+v", got)
	}

	frame := Rect{X: 16, Width: 16, Height: 32}
	s.SetTextureRect(frame)
	s.SetTexture(sizedTexture{w: 128, h: 32})
	if got := s.TextureRect(); got != frame {
		t.Errorf("Expected rebind to keep frame rect %+v, got %+v", frame, got)
	}
}

func TestRectEmpty(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want bool
	}{
		{"Zero", Rect{}, true},
		{"Zero width", Rect{Height: 4}, true},
		{"Negative height", Rect{Width: 4, Height: -1}, true},
		{"Filled", Rect{Width: 1, Height: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Empty(); got != tt.want {
				t.Errorf("Expected Empty() = %v, got %v", tt.want, got)
			}
		})
	}
}
