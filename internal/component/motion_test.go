package component

import (
	"testing"

	"nightmare-descent/internal/entity"
	"nightmare-descent/internal/types"
)

func TestPatrolWalksRestsAndTurns(t *testing.T) {
	obj := entity.NewGameObject(1, entity.TypePlayer)
	sprite := NewAnimatedSprite(newFakeLoader())
	p := NewPatrol(100, 0, 50, 1)
	obj.MustAddComponent(sprite)
	obj.MustAddComponent(p)

	if p.MinX != 0 || p.MaxX != 100 {
		t.Fatalf("Expected bounds to be ordered, got %v..%v", p.MinX, p.MaxX)
	}

	p.Update(1)
	if obj.Position().X != 50 || sprite.State() != Running || sprite.Direction() != Right {
		t.Fatalf("Expected running right at x=50, got x=%v state=%v", obj.Position().X, sprite.State())
	}

	p.Update(2)
	if obj.Position().X != 100 {
		t.Fatalf("Expected to stop at MaxX, got %v", obj.Position().X)
	}
	if !p.Resting() || p.Heading() != Left {
		t.Fatal("Expected a rest before turning left")
	}

	p.Update(0.5)
	if sprite.State() != Idle || obj.Position().X != 100 {
		t.Errorf("Expected idle in place while resting, got state=%v x=%v", sprite.State(), obj.Position().X)
	}
	p.Update(0.5)

	p.Update(1)
	if obj.Position().X != 50 || sprite.Direction() != Left {
		t.Errorf("Expected walking left at x=50, got x=%v dir=%v", obj.Position().X, sprite.Direction())
	}
}

func TestPatrolWithoutSprite(t *testing.T) {
	obj := entity.NewGameObject(1, entity.TypePlayer)
	p := NewPatrol(0, 10, 100, 0)
	obj.MustAddComponent(p)

	p.Update(1)
	if obj.Position().X != 10 {
		t.Errorf("Expected x=10, got %v", obj.Position().X)
	}
}

func TestChaserClosesDistance(t *testing.T) {
	target := entity.NewGameObject(1, entity.TypePlayer)
	target.SetPosition(types.Vector2{X: 30, Y: 40})

	enemy := entity.NewGameObject(2, entity.TypeEnemy)
	sprite := NewAnimatedSprite(newFakeLoader())
	c := NewChaser(target, 10)
	enemy.MustAddComponent(sprite)
	enemy.MustAddComponent(c)

	c.Update(1)
	pos := enemy.Position()
	if !almostEqual(pos.X, 6) || !almostEqual(pos.Y, 8) {
		t.Errorf("Expected (6, 8), got %+v", pos)
	}
	if sprite.State() != Running || sprite.Direction() != Right {
		t.Errorf("Expected running right, got %v %v", sprite.State(), sprite.Direction())
	}

	c.Update(100)
	pos = enemy.Position()
	if !almostEqual(pos.X, 30) || !almostEqual(pos.Y, 40) {
		t.Errorf("Expected to stop on the target, got %+v", pos)
	}

	target.SetPosition(types.Vector2{X: 0, Y: 40})
	c.Update(1)
	if sprite.Direction() != Left {
		t.Error("Expected to face left when the target is to the left")
	}
}

func TestChaserIdleWithoutTarget(t *testing.T) {
	enemy := entity.NewGameObject(2, entity.TypeEnemy)
	c := NewChaser(nil, 10)
	enemy.MustAddComponent(c)

	c.Update(1)
	if enemy.Position() != (types.Vector2{}) {
		t.Errorf("Expected no movement, got %+v", enemy.Position())
	}
}
