// internal/component/patrol.go
package component

import (
	"nightmare-descent/internal/entity"
	"nightmare-descent/internal/utils"
)

// Patrol водит владельца между MinX и MaxX с паузой Pause секунд на каждом
// конце. Управляет AnimatedSprite владельца: Running в движении, Idle
// на паузе, лицом по ходу.
type Patrol struct {
	entity.Base
	MinX, MaxX float64
	Speed      float64
	Pause      float64
	heading    MovementDirection
	resting    float64
}

func NewPatrol(minX, maxX, speed, pause float64) *Patrol {
	if maxX < minX {
		minX, maxX = maxX, minX
	}
	return &Patrol{MinX: minX, MaxX: maxX, Speed: speed, Pause: pause}
}

func (p *Patrol) Heading() MovementDirection {
	return p.heading
}

// Resting сообщает, стоит ли владелец на конце маршрута.
func (p *Patrol) Resting() bool {
	return p.resting > 0
}

func (p *Patrol) Update(deltaTime float64) {
	owner := p.Owner()
	if owner == nil {
		return
	}
	sprite, hasSprite := entity.Get[*AnimatedSprite](owner)

	if p.resting > 0 {
		p.resting -= deltaTime
		if hasSprite {
			sprite.SetState(Idle)
		}
		return
	}

	goal := p.MaxX
	if p.heading == Left {
		goal = p.MinX
	}
	pos := owner.Position()
	pos.X = utils.MoveTowards(pos.X, goal, p.Speed*deltaTime)
	owner.SetPosition(pos)

	if hasSprite {
		sprite.SetState(Running)
		sprite.SetDirection(p.heading)
	}

	if pos.X == goal {
		if p.heading == Right {
			p.heading = Left
		} else {
			p.heading = Right
		}
		p.resting = p.Pause
	}
}
