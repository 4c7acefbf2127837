// internal/component/square_collider.go
package component

import (
	"nightmare-descent/internal/entity"
	"nightmare-descent/internal/types"
)

// SquareCollider: прямоугольник по осям с центром в позиции владельца плюс Offset.
type SquareCollider struct {
	entity.Base
	Size   types.Vector2
	Offset types.Vector2
}

func NewSquareCollider(width, height float64) *SquareCollider {
	return &SquareCollider{Size: types.Vector2{X: width, Y: height}}
}

// Bounds returns the top-left and bottom-right corners in screen space.
func (c *SquareCollider) Bounds() (min, max types.Vector2) {
	center := c.Offset
	if owner := c.Owner(); owner != nil {
		center = center.Add(owner.Position())
	}
	half := c.Size.Scale(0.5)
	return center.Sub(half), center.Add(half)
}

// Intersects сообщает, пересекаются ли прямоугольники. Касание гранями
// не считается, коллайдер без владельца ни с чем не пересекается.
func (c *SquareCollider) Intersects(other *SquareCollider) bool {
	if other == nil || c.Owner() == nil || other.Owner() == nil {
		return false
	}
	aMin, aMax := c.Bounds()
	bMin, bMax := other.Bounds()
	return aMin.X < bMax.X && aMax.X > bMin.X &&
		aMin.Y < bMax.Y && aMax.Y > bMin.Y
}
