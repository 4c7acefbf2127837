// internal/component/chaser.go
package component

import (
	"math"

	"nightmare-descent/internal/entity"
)

// Chaser moves its owner straight toward a target at a fixed speed.
type Chaser struct {
	entity.Base
	Speed  float64
	target *entity.GameObject
}

func NewChaser(target *entity.GameObject, speed float64) *Chaser {
	return &Chaser{target: target, Speed: speed}
}

func (c *Chaser) SetTarget(target *entity.GameObject) {
	c.target = target
}

func (c *Chaser) Update(deltaTime float64) {
	owner := c.Owner()
	if owner == nil || c.target == nil || !c.target.Alive() {
		return
	}
	delta := c.target.Position().Sub(owner.Position())
	dist := delta.Len()
	if dist == 0 {
		return
	}
	step := math.Min(c.Speed*deltaTime, dist)
	owner.Move(delta.Normalize().Scale(step))

	if sprite, ok := entity.Get[*AnimatedSprite](owner); ok {
		sprite.SetState(Running)
		if delta.X < 0 {
			sprite.SetDirection(Left)
		} else if delta.X > 0 {
			sprite.SetDirection(Right)
		}
	}
}
